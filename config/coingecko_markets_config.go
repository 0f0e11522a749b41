package config

import (
	"fmt"
	"time"
)

// CoingeckoMarketsFetcher defines configuration for the markets fetcher
type CoingeckoMarketsFetcher struct {
	TTL                   time.Duration `yaml:"ttl"`                     // Cache TTL per (currency, order, per_page, page)
	PerPage               int           `yaml:"per_page"`                // Coins requested per render
	Order                 string        `yaml:"order"`                   // Upstream sort order
	PriceChangePercentage []string      `yaml:"price_change_percentage"` // Change windows requested in one call
}

// GetDefaultMarketsConfig returns default configuration for the markets fetcher
func GetDefaultMarketsConfig() CoingeckoMarketsFetcher {
	return CoingeckoMarketsFetcher{
		TTL:                   10 * time.Minute,
		PerPage:               50,
		Order:                 "market_cap_desc",
		PriceChangePercentage: []string{"1h", "24h", "7d"},
	}
}

// Validate validates the CoingeckoMarketsFetcher configuration
func (c *CoingeckoMarketsFetcher) Validate() error {
	if c.PerPage < 1 || c.PerPage > 250 {
		return fmt.Errorf("per_page must be between 1 and 250, got %d", c.PerPage)
	}
	return nil
}

func (c *CoingeckoMarketsFetcher) GetTTL() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}

	return 10 * time.Minute
}
