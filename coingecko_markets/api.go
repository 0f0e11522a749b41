package coingecko_markets

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/metrics"
)

//go:generate mockgen -destination=mocks/api_client.go . APIClient

// APIClient defines interface for API operations
type APIClient interface {
	// FetchPage fetches a single page of markets. Each element is one raw coin record.
	FetchPage(ctx context.Context, params interfaces.MarketsParams) ([]json.RawMessage, error)
	// Healthy reports whether at least one fetch succeeded
	Healthy() bool
}

// CoinGeckoClient implements APIClient for CoinGecko
type CoinGeckoClient struct {
	client                *cg.Client
	priceChangePercentage []string
	logger                *zap.Logger
}

// NewCoinGeckoClient creates a new CoinGecko markets client. limiter is shared
// with the other CoinGecko clients of the process and may be nil.
func NewCoinGeckoClient(cfg *config.Config, limiter *rate.Limiter, logger *zap.Logger) *CoinGeckoClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceMarkets)

	return &CoinGeckoClient{
		client:                cg.NewClient(cfg.CoinGecko, "CoinGecko-Markets", metricsWriter, limiter, logger),
		priceChangePercentage: cfg.CoingeckoMarkets.PriceChangePercentage,
		logger:                logger,
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *CoinGeckoClient) Healthy() bool {
	return c.client.Healthy()
}

// FetchPage fetches a single page of markets. The request is sent once;
// any failure is returned as-is.
func (c *CoinGeckoClient) FetchPage(ctx context.Context, params interfaces.MarketsParams) ([]json.RawMessage, error) {
	rb := NewMarketRequestBuilder(c.client.NewRequest(MARKETS_API_PATH)).
		WithOrder(params.Order).
		WithPerPage(params.PerPage).
		WithPage(params.Page).
		WithPriceChangePercentage(c.priceChangePercentage)
	rb.WithCurrency(params.Currency)

	body, duration, err := c.client.Fetch(ctx, rb.CoingeckoRequestBuilder)
	if err != nil {
		return nil, err
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		c.logger.Warn("error parsing markets response", zap.Error(err))
		return nil, &cg.DecodeError{Err: err}
	}

	c.logger.Info("fetched markets page",
		zap.String("currency", params.Currency),
		zap.Int("page", params.Page),
		zap.Int("items", len(records)),
		zap.Duration("duration", duration))

	return records, nil
}
