package coingecko_common

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/status-im/market-dashboard/config"
)

// Client is the base CoinGecko client embedded by the endpoint clients.
// It owns the key selection and the HTTP transport.
type Client struct {
	config          config.CoinGeckoConfig
	keyType         KeyType
	httpClient      *HTTPClient
	logger          *zap.Logger
	successfulFetch atomic.Bool
}

// NewClient creates a base client. limiter may be shared between clients.
func NewClient(cfg config.CoinGeckoConfig, logPrefix string, handler IHttpStatusHandler, limiter *rate.Limiter, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := ClientOptions{
		ConnectionTimeout: cfg.ConnectionTimeout,
		RequestTimeout:    cfg.RequestTimeout,
		LogPrefix:         logPrefix,
	}
	return &Client{
		config:     cfg,
		keyType:    ParseKeyType(cfg.APIKey, cfg.APIKeyType),
		httpClient: NewHTTPClient(opts, handler, limiter, logger),
		logger:     logger,
	}
}

// NewRequest returns a builder for apiPath with base URL, key and user agent applied
func (c *Client) NewRequest(apiPath string) *CoingeckoRequestBuilder {
	return NewCoingeckoRequestBuilder(GetApiBaseUrl(c.config, c.keyType), apiPath).
		WithApiKey(c.config.APIKey, c.keyType).
		WithUserAgent(c.config.UserAgent)
}

// Fetch executes the built request and returns the response body
func (c *Client) Fetch(ctx context.Context, rb *CoingeckoRequestBuilder) ([]byte, time.Duration, error) {
	req, err := rb.Build(ctx)
	if err != nil {
		return nil, 0, &RequestError{URL: rb.apiPath, Err: err}
	}

	body, duration, err := c.httpClient.ExecuteRequest(req)
	if err != nil {
		return nil, duration, err
	}

	c.successfulFetch.Store(true)
	return body, duration, nil
}

// Healthy reports whether at least one fetch succeeded
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

// KeyType returns the key type used for requests
func (c *Client) KeyType() KeyType {
	return c.keyType
}
