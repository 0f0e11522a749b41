package coingecko_common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/status-im/market-dashboard/config"
)

func TestParseKeyType(t *testing.T) {
	assert.Equal(t, NoKey, ParseKeyType("", "pro"))
	assert.Equal(t, ProKey, ParseKeyType("k", "pro"))
	assert.Equal(t, DemoKey, ParseKeyType("k", " Demo "))
	assert.Equal(t, NoKey, ParseKeyType("k", "other"))
}

func TestGetApiBaseUrl(t *testing.T) {
	cfg := config.GetDefaultCoinGeckoConfig()
	assert.Equal(t, COINGECKO_PUBLIC_URL, GetApiBaseUrl(cfg, NoKey))
	assert.Equal(t, COINGECKO_PUBLIC_URL, GetApiBaseUrl(cfg, DemoKey))
	assert.Equal(t, COINGECKO_PRO_URL, GetApiBaseUrl(cfg, ProKey))

	cfg.OverridePublicURL = "http://public.local"
	cfg.OverrideProURL = "http://pro.local"
	assert.Equal(t, "http://public.local", GetApiBaseUrl(cfg, NoKey))
	assert.Equal(t, "http://pro.local", GetApiBaseUrl(cfg, ProKey))
}

func TestKeyType_String(t *testing.T) {
	assert.Equal(t, "pro", ProKey.String())
	assert.Equal(t, "demo", DemoKey.String())
	assert.Equal(t, "none", NoKey.String())
}
