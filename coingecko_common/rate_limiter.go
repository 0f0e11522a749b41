package coingecko_common

import (
	"golang.org/x/time/rate"

	"github.com/status-im/market-dashboard/config"
)

// Defaults in requests per minute, used when config is not provided
const (
	defaultRPM   = 30
	defaultBurst = 5
)

// NewRateLimiter builds the limiter shared by all CoinGecko clients of the process
func NewRateLimiter(cfg config.CoinGeckoConfig) *rate.Limiter {
	rpm := cfg.RateLimitPerMinute
	if rpm <= 0 {
		rpm = defaultRPM
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
}
