package config

import (
	"fmt"
	"time"
)

// CoinGeckoConfig holds settings shared by every CoinGecko client
type CoinGeckoConfig struct {
	// APIKey is optional; the public API is used without it
	APIKey string `yaml:"api_key"`

	// APIKeyType is "pro" or "demo"
	APIKeyType string `yaml:"api_key_type"`

	OverridePublicURL string `yaml:"override_public_url"`
	OverrideProURL    string `yaml:"override_pro_url"`

	// RateLimitPerMinute and Burst shape outgoing calls. Requests wait for a
	// token; they are never retried.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	Burst              int `yaml:"burst"`

	ConnectionTimeout time.Duration `yaml:"connection_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	UserAgent         string        `yaml:"user_agent"`
}

// GetDefaultCoinGeckoConfig returns defaults matching the public API limits
func GetDefaultCoinGeckoConfig() CoinGeckoConfig {
	return CoinGeckoConfig{
		RateLimitPerMinute: 30,
		Burst:              5,
		ConnectionTimeout:  10 * time.Second,
		RequestTimeout:     30 * time.Second,
		UserAgent:          "Mozilla/5.0 Market-Dashboard",
	}
}

// Validate validates the CoinGeckoConfig
func (c *CoinGeckoConfig) Validate() error {
	if c.APIKey != "" && c.APIKeyType != "pro" && c.APIKeyType != "demo" {
		return fmt.Errorf("api_key_type must be 'pro' or 'demo', got '%s'", c.APIKeyType)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute cannot be negative")
	}
	return nil
}
