package coingecko_market_chart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/metrics"
)

type APIClient interface {
	FetchMarketChart(ctx context.Context, params interfaces.ChartParams) ([]interfaces.PricePoint, error)
	Healthy() bool
}

type CoinGeckoClient struct {
	client *cg.Client
	logger *zap.Logger
}

func NewCoinGeckoClient(cfg *config.Config, limiter *rate.Limiter, logger *zap.Logger) *CoinGeckoClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceMarketChart)

	return &CoinGeckoClient{
		client: cg.NewClient(cfg.CoinGecko, "CoinGecko-MarketChart", metricsWriter, limiter, logger),
		logger: logger,
	}
}

func (c *CoinGeckoClient) Healthy() bool {
	return c.client.Healthy()
}

// FetchMarketChart fetches the price history of one coin. A payload without
// a prices array is a DecodeError.
func (c *CoinGeckoClient) FetchMarketChart(ctx context.Context, params interfaces.ChartParams) ([]interfaces.PricePoint, error) {
	rb := NewMarketChartRequestBuilder(c.client.NewRequest(MarketChartPath(params.ID))).
		WithCurrency(params.Currency).
		WithDays(params.Days)

	body, duration, err := c.client.Fetch(ctx, rb.Builder())
	if err != nil {
		return nil, err
	}

	var response marketChartResponse
	if err := json.Unmarshal(body, &response); err != nil {
		c.logger.Warn("error parsing market chart response", zap.String("coin", params.ID), zap.Error(err))
		return nil, &cg.DecodeError{Err: err}
	}

	if response.Prices == nil {
		c.logger.Warn("market chart response has no prices", zap.String("coin", params.ID))
		return nil, &cg.DecodeError{Err: errors.New("response has no prices")}
	}

	points := toPricePoints(*response.Prices)
	if skipped := len(*response.Prices) - len(points); skipped > 0 {
		c.logger.Warn("skipped incomplete price points", zap.String("coin", params.ID), zap.Int("skipped", skipped))
	}

	c.logger.Info("fetched market chart",
		zap.String("coin", params.ID),
		zap.String("days", params.Days),
		zap.Int("points", len(points)),
		zap.Duration("duration", duration))

	return points, nil
}

// toPricePoints converts [ms_epoch, price] pairs in source order. Pairs with
// fewer than two elements or a null member are dropped.
func toPricePoints(raw [][]*float64) []interfaces.PricePoint {
	points := make([]interfaces.PricePoint, 0, len(raw))
	for _, pair := range raw {
		if len(pair) < 2 || pair[0] == nil || pair[1] == nil {
			continue
		}
		points = append(points, interfaces.PricePoint{
			Timestamp: time.UnixMilli(int64(*pair[0])).UTC(),
			Price:     *pair[1],
		})
	}
	return points
}
