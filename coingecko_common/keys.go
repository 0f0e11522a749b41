package coingecko_common

import (
	"strings"

	"github.com/status-im/market-dashboard/config"
)

// KeyType defines the API key type
type KeyType int

const (
	// NoKey means the public API is used without a key
	NoKey KeyType = iota
	// ProKey means using a Pro API key
	ProKey
	// DemoKey means using a demo API key
	DemoKey
)

func (k KeyType) String() string {
	switch k {
	case ProKey:
		return "pro"
	case DemoKey:
		return "demo"
	default:
		return "none"
	}
}

// ParseKeyType maps the configured key type to a KeyType.
// An empty key always yields NoKey.
func ParseKeyType(apiKey, keyType string) KeyType {
	if apiKey == "" {
		return NoKey
	}
	switch strings.ToLower(strings.TrimSpace(keyType)) {
	case "pro":
		return ProKey
	case "demo":
		return DemoKey
	default:
		return NoKey
	}
}

// GetApiBaseUrl returns the API base URL for the key type, honoring overrides
func GetApiBaseUrl(cfg config.CoinGeckoConfig, keyType KeyType) string {
	if keyType == ProKey {
		if cfg.OverrideProURL != "" {
			return cfg.OverrideProURL
		}
		return COINGECKO_PRO_URL
	}
	if cfg.OverridePublicURL != "" {
		return cfg.OverridePublicURL
	}
	return COINGECKO_PUBLIC_URL
}
