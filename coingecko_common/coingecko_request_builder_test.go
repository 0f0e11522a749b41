package coingecko_common

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoingeckoRequestBuilder_BuildURL(t *testing.T) {
	rb := NewCoingeckoRequestBuilder("https://api.example.com/", "/api/v3/coins/markets").
		WithCurrency("brl").
		With("page", "1").
		With("page", "2")

	parsed, err := url.Parse(rb.BuildURL())
	require.NoError(t, err)

	assert.Equal(t, "api.example.com", parsed.Host)
	assert.Equal(t, "/api/v3/coins/markets", parsed.Path)
	assert.Equal(t, "brl", parsed.Query().Get("vs_currency"))
	assert.Equal(t, []string{"2"}, parsed.Query()["page"])
}

func TestCoingeckoRequestBuilder_NoQuery(t *testing.T) {
	rb := NewCoingeckoRequestBuilder("https://api.example.com", "ping")
	assert.Equal(t, "https://api.example.com/ping", rb.BuildURL())
}

func TestCoingeckoRequestBuilder_ApiKey(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		keyType   KeyType
		wantParam string
	}{
		{"pro key", "pro-123", ProKey, "x_cg_pro_api_key"},
		{"demo key", "demo-123", DemoKey, "x_cg_demo_api_key"},
		{"no key type", "ignored", NoKey, ""},
		{"empty key", "", ProKey, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewCoingeckoRequestBuilder("https://api.example.com", "x").WithApiKey(tt.key, tt.keyType)
			parsed, err := url.Parse(rb.BuildURL())
			require.NoError(t, err)

			query := parsed.Query()
			if tt.wantParam == "" {
				assert.False(t, query.Has("x_cg_pro_api_key"))
				assert.False(t, query.Has("x_cg_demo_api_key"))
				return
			}
			assert.Equal(t, tt.key, query.Get(tt.wantParam))
		})
	}
}

func TestCoingeckoRequestBuilder_Build(t *testing.T) {
	rb := NewCoingeckoRequestBuilder("https://api.example.com", "x").
		WithUserAgent("test-agent").
		WithHeader("X-Test", "1")

	req, err := rb.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "test-agent", req.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "1", req.Header.Get("X-Test"))
}
