package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/api"
	"github.com/status-im/market-dashboard/cache"
	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/coingecko_market_chart"
	"github.com/status-im/market-dashboard/coingecko_markets"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/dashboard"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := NewRegistry(logger)

	cacheService := cache.NewService(cfg.Cache, logger)
	registry.Register(cacheService)

	// Both fetchers draw from one upstream request budget
	limiter := cg.NewRateLimiter(cfg.CoinGecko)

	marketsService := coingecko_markets.NewService(cacheService, cfg, limiter, logger)
	registry.Register(marketsService)

	marketChartService := coingecko_market_chart.NewService(cacheService, cfg, limiter, logger)
	registry.Register(marketChartService)

	dashboardService := dashboard.NewService(marketsService, marketChartService, cacheService, cfg, logger)

	server := api.New(cfg.Server, dashboardService, logger)
	registry.Register(server)

	return registry, nil
}
