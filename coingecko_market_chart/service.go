package coingecko_market_chart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/status-im/market-dashboard/cache"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/metrics"
)

const (
	// Cache key prefix for market chart data
	MARKET_CHART_CACHE_PREFIX = "market_chart"
)

// cachedChart is the value stored in the cache for one chart request
type cachedChart struct {
	FetchedAt time.Time               `json:"fetched_at"`
	Points    []interfaces.PricePoint `json:"points"`
}

// Service provides market chart data fetching functionality with caching
type Service struct {
	cache         cache.Cache
	config        *config.Config
	metricsWriter *metrics.MetricsWriter
	apiClient     APIClient
	logger        *zap.Logger
	now           func() time.Time
}

// NewService creates a new market chart service with the given cache and config
func NewService(cache cache.Cache, config *config.Config, limiter *rate.Limiter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("market_chart")

	return &Service{
		cache:         cache,
		config:        config,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceMarketChart),
		apiClient:     NewCoinGeckoClient(config, limiter, logger),
		logger:        logger,
		now:           time.Now,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.cache == nil {
		return fmt.Errorf("cache dependency not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient.Healthy()
}

// MarketChart returns the price history for params, cached per (id, currency, days).
// On failure the series is empty, stamped with the current time, and the error is returned.
func (s *Service) MarketChart(ctx context.Context, params interfaces.ChartParams) (interfaces.ChartSeries, error) {
	start := time.Now()
	defer s.metricsWriter.RecordFetchDuration(start)

	params = s.withDefaults(params)
	if err := validateParams(params); err != nil {
		return s.emptySeries(params), fmt.Errorf("invalid parameters: %w", err)
	}

	data, hit, err := s.cache.GetOrLoad(chartCacheKey(params), s.config.CoingeckoMarketChart.GetTTL(), func() ([]byte, error) {
		return s.load(ctx, params)
	})
	s.metricsWriter.RecordCacheLookup(hit)
	if err != nil {
		s.logger.Warn("market chart fetch failed",
			zap.String("coin", params.ID),
			zap.String("days", params.Days),
			zap.Error(err))
		return s.emptySeries(params), err
	}

	var cached cachedChart
	if err := json.Unmarshal(data, &cached); err != nil {
		return s.emptySeries(params), fmt.Errorf("failed to decode cached market chart: %w", err)
	}

	series := s.emptySeries(params)
	series.FetchedAt = cached.FetchedAt
	series.CacheStatus = interfaces.CacheStatusFromHit(hit)
	if cached.Points != nil {
		series.Points = cached.Points
	}
	return series, nil
}

func (s *Service) load(ctx context.Context, params interfaces.ChartParams) ([]byte, error) {
	points, err := s.apiClient.FetchMarketChart(ctx, params)
	if err != nil {
		return nil, err
	}
	return json.Marshal(cachedChart{
		FetchedAt: s.now(),
		Points:    points,
	})
}

func (s *Service) withDefaults(params interfaces.ChartParams) interfaces.ChartParams {
	params.Currency = interfaces.NormalizeCurrency(params.Currency)
	if params.Currency == "" {
		params.Currency = interfaces.CurrencyUSD
	}
	params.Days = NormalizeDays(params.Days)
	if params.Days == "" {
		params.Days = s.config.CoingeckoMarketChart.DefaultDays
	}
	return params
}

func (s *Service) emptySeries(params interfaces.ChartParams) interfaces.ChartSeries {
	return interfaces.ChartSeries{
		CoinID:      params.ID,
		Currency:    params.Currency,
		Days:        params.Days,
		Points:      []interfaces.PricePoint{},
		FetchedAt:   s.now(),
		CacheStatus: interfaces.CacheStatusMiss,
	}
}

func chartCacheKey(params interfaces.ChartParams) string {
	return fmt.Sprintf("%s:%s:%s:%s", MARKET_CHART_CACHE_PREFIX, params.ID, params.Currency, params.Days)
}
