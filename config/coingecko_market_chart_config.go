package config

import (
	"time"
)

// CoingeckoMarketChartFetcher defines configuration for the market chart fetcher
type CoingeckoMarketChartFetcher struct {
	// TTL is the cache TTL per (coin, currency, days)
	TTL time.Duration `yaml:"ttl"`

	// DefaultDays is used when a request carries no window
	DefaultDays string `yaml:"default_days"`
}

// GetDefaultMarketChartConfig returns default configuration for market chart service
func GetDefaultMarketChartConfig() CoingeckoMarketChartFetcher {
	return CoingeckoMarketChartFetcher{
		TTL:         10 * time.Minute,
		DefaultDays: "30",
	}
}

func (c *CoingeckoMarketChartFetcher) GetTTL() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}

	return 10 * time.Minute
}
