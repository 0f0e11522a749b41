package coingecko_markets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/status-im/market-dashboard/cache"
	cfg "github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/metrics"
)

// cachedMarkets is the value stored in the cache for one markets request
type cachedMarkets struct {
	FetchedAt time.Time                `json:"fetched_at"`
	Entries   []interfaces.MarketEntry `json:"entries"`
}

// Service provides markets data fetching functionality with caching
type Service struct {
	cache         cache.Cache
	config        *cfg.Config
	metricsWriter *metrics.MetricsWriter
	apiClient     APIClient
	logger        *zap.Logger
	now           func() time.Time
}

// NewService creates a markets service. limiter may be nil.
func NewService(cache cache.Cache, config *cfg.Config, limiter *rate.Limiter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("markets")

	return &Service{
		cache:         cache,
		config:        config,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceMarkets),
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
func (s *Service) Stop() {
	// Cache will handle its own cleanup
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient.Healthy()
}

// Markets returns one page of markets for params, served from the cache when
// a fresh result exists. On failure it returns an empty snapshot stamped with
// the current time together with the error.
func (s *Service) Markets(ctx context.Context, params interfaces.MarketsParams) (interfaces.MarketsSnapshot, error) {
	start := time.Now()
	defer s.metricsWriter.RecordFetchDuration(start)

	params = s.withDefaults(params)
	if err := params.Validate(); err != nil {
		return s.emptySnapshot(), fmt.Errorf("invalid markets params: %w", err)
	}

	data, hit, err := s.cache.GetOrLoad(marketsCacheKey(params), s.config.CoingeckoMarkets.GetTTL(), func() ([]byte, error) {
		return s.load(ctx, params)
	})
	s.metricsWriter.RecordCacheLookup(hit)
	if err != nil {
		s.logger.Warn("markets fetch failed",
			zap.String("currency", params.Currency),
			zap.Int("page", params.Page),
			zap.Error(err))
		return s.emptySnapshot(), err
	}

	var cached cachedMarkets
	if err := json.Unmarshal(data, &cached); err != nil {
		return s.emptySnapshot(), fmt.Errorf("failed to decode cached markets: %w", err)
	}
	if cached.Entries == nil {
		cached.Entries = []interfaces.MarketEntry{}
	}

	return interfaces.MarketsSnapshot{
		Entries:     cached.Entries,
		FetchedAt:   cached.FetchedAt,
		CacheStatus: interfaces.CacheStatusFromHit(hit),
	}, nil
}

// load fetches one page upstream and encodes it for the cache
func (s *Service) load(ctx context.Context, params interfaces.MarketsParams) ([]byte, error) {
	records, err := s.apiClient.FetchPage(ctx, params)
	if err != nil {
		return nil, err
	}

	entries := decodeEntries(records, s.logger)
	if skipped := len(records) - len(entries); skipped > 0 {
		s.logger.Warn("dropped malformed market records", zap.Int("skipped", skipped))
	}

	return json.Marshal(cachedMarkets{
		FetchedAt: s.now(),
		Entries:   entries,
	})
}

// withDefaults fills unset params from config
func (s *Service) withDefaults(params interfaces.MarketsParams) interfaces.MarketsParams {
	params.Currency = interfaces.NormalizeCurrency(params.Currency)
	if params.Currency == "" {
		params.Currency = interfaces.CurrencyUSD
	}
	if params.Order == "" {
		params.Order = s.config.CoingeckoMarkets.Order
	}
	if params.PerPage == 0 {
		params.PerPage = s.config.CoingeckoMarkets.PerPage
	}
	if params.Page == 0 {
		params.Page = 1
	}
	return params
}

func (s *Service) emptySnapshot() interfaces.MarketsSnapshot {
	return interfaces.MarketsSnapshot{
		Entries:     []interfaces.MarketEntry{},
		FetchedAt:   s.now(),
		CacheStatus: interfaces.CacheStatusMiss,
	}
}
