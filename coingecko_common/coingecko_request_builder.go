package coingecko_common

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	// Base URL for public API
	COINGECKO_PUBLIC_URL = "https://api.coingecko.com"
	// Base URL for Pro API
	COINGECKO_PRO_URL = "https://pro-api.coingecko.com"
)

// buildURL safely combines a base URL with a path
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// CoingeckoRequestBuilder implements the Builder pattern for CoinGecko API requests
type CoingeckoRequestBuilder struct {
	baseURL   string
	apiPath   string
	params    url.Values
	apiKey    string
	keyType   KeyType
	userAgent string
	headers   map[string]string
}

// NewCoingeckoRequestBuilder creates a new base request builder for CoinGecko endpoints
func NewCoingeckoRequestBuilder(baseURL, apiPath string) *CoingeckoRequestBuilder {
	rb := &CoingeckoRequestBuilder{
		baseURL:   baseURL,
		apiPath:   apiPath,
		params:    url.Values{},
		headers:   make(map[string]string),
		userAgent: "Mozilla/5.0 Market-Dashboard",
	}

	rb.headers["Accept"] = "application/json"

	return rb
}

// With sets a query parameter, replacing any previous value
func (rb *CoingeckoRequestBuilder) With(key, value string) *CoingeckoRequestBuilder {
	rb.params.Set(key, value)
	return rb
}

// WithCurrency adds vs_currency parameter
func (rb *CoingeckoRequestBuilder) WithCurrency(currency string) *CoingeckoRequestBuilder {
	if currency != "" {
		rb.params.Set("vs_currency", currency)
	}
	return rb
}

// WithApiKey sets the API key and its type
func (rb *CoingeckoRequestBuilder) WithApiKey(apiKey string, keyType KeyType) *CoingeckoRequestBuilder {
	if apiKey != "" && keyType != NoKey {
		rb.apiKey = apiKey
		rb.keyType = keyType
	}
	return rb
}

// WithHeader adds a custom HTTP header
func (rb *CoingeckoRequestBuilder) WithHeader(name, value string) *CoingeckoRequestBuilder {
	rb.headers[name] = value
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *CoingeckoRequestBuilder) WithUserAgent(userAgent string) *CoingeckoRequestBuilder {
	if userAgent != "" {
		rb.userAgent = userAgent
	}
	return rb
}

// BuildURL builds the complete URL for the request
func (rb *CoingeckoRequestBuilder) BuildURL() string {
	fullPath := buildURL(rb.baseURL, rb.apiPath)

	query := url.Values{}
	for key, values := range rb.params {
		for _, v := range values {
			query.Add(key, v)
		}
	}

	switch rb.keyType {
	case ProKey:
		query.Set("x_cg_pro_api_key", rb.apiKey)
	case DemoKey:
		query.Set("x_cg_demo_api_key", rb.apiKey)
	}

	if encoded := query.Encode(); encoded != "" {
		return fmt.Sprintf("%s?%s", fullPath, encoded)
	}
	return fullPath
}

// Build creates a GET request bound to ctx
func (rb *CoingeckoRequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)
	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
