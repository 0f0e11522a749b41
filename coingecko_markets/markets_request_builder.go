package coingecko_markets

import (
	"strconv"
	"strings"

	cg "github.com/status-im/market-dashboard/coingecko_common"
)

const (
	// Complete path for markets API endpoint
	MARKETS_API_PATH = "/api/v3/coins/markets"
)

// MarketsRequestBuilder implements the Builder pattern for CoinGecko markets API requests
type MarketsRequestBuilder struct {
	*cg.CoingeckoRequestBuilder
}

// NewMarketRequestBuilder wraps a base builder pointing at the markets endpoint
// and applies the default market parameters
func NewMarketRequestBuilder(base *cg.CoingeckoRequestBuilder) *MarketsRequestBuilder {
	rb := &MarketsRequestBuilder{
		CoingeckoRequestBuilder: base,
	}

	rb.WithCurrency("usd")
	rb.WithOrder("market_cap_desc")
	rb.WithSparkline(false)

	return rb
}

// WithPage adds page parameter for pagination
func (rb *MarketsRequestBuilder) WithPage(page int) *MarketsRequestBuilder {
	rb.With("page", strconv.Itoa(page))
	return rb
}

// WithPerPage adds per_page parameter
func (rb *MarketsRequestBuilder) WithPerPage(perPage int) *MarketsRequestBuilder {
	rb.With("per_page", strconv.Itoa(perPage))
	return rb
}

// WithOrder adds ordering parameter
func (rb *MarketsRequestBuilder) WithOrder(order string) *MarketsRequestBuilder {
	if order != "" {
		rb.With("order", order)
	}
	return rb
}

// WithSparkline sets the sparkline parameter. It is always sent so the
// upstream never includes the 7d series.
func (rb *MarketsRequestBuilder) WithSparkline(enabled bool) *MarketsRequestBuilder {
	rb.With("sparkline", strconv.FormatBool(enabled))
	return rb
}

// WithPriceChangePercentage adds price_change_percentage parameter
func (rb *MarketsRequestBuilder) WithPriceChangePercentage(percentages []string) *MarketsRequestBuilder {
	if len(percentages) > 0 {
		rb.With("price_change_percentage", strings.Join(percentages, ","))
	}
	return rb
}
