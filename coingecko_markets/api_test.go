package coingecko_markets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/interfaces"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *CoinGeckoClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.Default()
	cfg.CoinGecko.OverridePublicURL = server.URL
	return NewCoinGeckoClient(cfg, nil, zaptest.NewLogger(t))
}

func TestCoinGeckoClient_FetchPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, MARKETS_API_PATH, r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "brl", query.Get("vs_currency"))
		assert.Equal(t, "market_cap_desc", query.Get("order"))
		assert.Equal(t, "50", query.Get("per_page"))
		assert.Equal(t, "1", query.Get("page"))
		assert.Equal(t, "false", query.Get("sparkline"))
		assert.Equal(t, "1h,24h,7d", query.Get("price_change_percentage"))

		w.Write([]byte(`[{"id":"bitcoin"},{"id":"ethereum"}]`))
	})

	assert.False(t, client.Healthy())

	records, err := client.FetchPage(context.Background(), interfaces.MarketsParams{
		Currency: "brl", Order: "market_cap_desc", PerPage: 50, Page: 1,
	})
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.True(t, client.Healthy())
}

func TestCoinGeckoClient_FetchPage_NotAnArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":{"error_code":1}}`))
	})

	_, err := client.FetchPage(context.Background(), interfaces.MarketsParams{Currency: "usd", PerPage: 50, Page: 1})

	var decodeErr *cg.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestCoinGeckoClient_FetchPage_StatusError(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.FetchPage(context.Background(), interfaces.MarketsParams{Currency: "usd", PerPage: 50, Page: 1})

	var statusErr *cg.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, 1, calls)
	assert.False(t, client.Healthy())
}
