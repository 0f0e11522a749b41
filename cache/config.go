package cache

import "time"

// Config represents cache configuration
type Config struct {
	// GoCache configuration
	GoCache GoCacheConfig `yaml:"go_cache"`

	// StatsInterval is how often the item count is published as a metric.
	// If 0, stats are not sampled.
	StatsInterval time.Duration `yaml:"stats_interval"`
}

// GoCacheConfig configuration for in-memory go-cache
type GoCacheConfig struct {
	// DefaultExpiration is used when a caller passes ttl == 0
	DefaultExpiration time.Duration `yaml:"default_expiration"`

	// CleanupInterval interval for purging expired items
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// Enabled whether results are kept between calls at all
	Enabled bool `yaml:"enabled"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() Config {
	return Config{
		GoCache: GoCacheConfig{
			DefaultExpiration: 10 * time.Minute,
			CleanupInterval:   20 * time.Minute,
			Enabled:           true,
		},
		StatsInterval: 30 * time.Second,
	}
}
