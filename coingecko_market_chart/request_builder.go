package coingecko_market_chart

import (
	"fmt"
	"net/url"

	cg "github.com/status-im/market-dashboard/coingecko_common"
)

const (
	MARKET_CHART_API_PATH_TEMPLATE = "/api/v3/coins/%s/market_chart"
)

// MarketChartPath returns the market chart endpoint path for coinID
func MarketChartPath(coinID string) string {
	return fmt.Sprintf(MARKET_CHART_API_PATH_TEMPLATE, url.PathEscape(coinID))
}

type MarketChartRequestBuilder struct {
	builder *cg.CoingeckoRequestBuilder
}

// NewMarketChartRequestBuilder wraps a base builder pointing at the market
// chart endpoint of one coin
func NewMarketChartRequestBuilder(base *cg.CoingeckoRequestBuilder) *MarketChartRequestBuilder {
	rb := &MarketChartRequestBuilder{
		builder: base,
	}

	rb.builder.WithCurrency("usd")
	rb.WithDays("30")

	return rb
}

func (rb *MarketChartRequestBuilder) WithDays(days string) *MarketChartRequestBuilder {
	if days != "" {
		rb.builder.With("days", days)
	}
	return rb
}

func (rb *MarketChartRequestBuilder) WithCurrency(currency string) *MarketChartRequestBuilder {
	rb.builder.WithCurrency(currency)
	return rb
}

// Builder returns the underlying request builder
func (rb *MarketChartRequestBuilder) Builder() *cg.CoingeckoRequestBuilder {
	return rb.builder
}
