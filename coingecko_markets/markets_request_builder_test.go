package coingecko_markets

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cg "github.com/status-im/market-dashboard/coingecko_common"
)

func TestMarketsRequestBuilder(t *testing.T) {
	rb := NewMarketRequestBuilder(cg.NewCoingeckoRequestBuilder("https://api.example.com", MARKETS_API_PATH)).
		WithPage(3).
		WithPerPage(25).
		WithOrder("").
		WithPriceChangePercentage([]string{"1h", "24h"})

	parsed, err := url.Parse(rb.BuildURL())
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, MARKETS_API_PATH, parsed.Path)
	assert.Equal(t, "usd", query.Get("vs_currency"))
	assert.Equal(t, "market_cap_desc", query.Get("order"))
	assert.Equal(t, "3", query.Get("page"))
	assert.Equal(t, "25", query.Get("per_page"))
	assert.Equal(t, "false", query.Get("sparkline"))
	assert.Equal(t, "1h,24h", query.Get("price_change_percentage"))
}
