package coingecko_common

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxErrorBodyLength caps how much of an error body ends up in StatusError
const maxErrorBodyLength = 512

// IHttpStatusHandler is an interface for handling HTTP request statuses
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
}

// ClientOptions configures the HTTP client
type ClientOptions struct {
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
	LogPrefix         string
}

// HTTPClient executes a request exactly once. The limiter, when set, delays
// the request until a token is available; failures are returned, not retried.
type HTTPClient struct {
	Client        *http.Client
	Opts          ClientOptions
	StatusHandler IHttpStatusHandler
	Limiter       *rate.Limiter
	logger        *zap.Logger
}

// NewHTTPClient creates a new HTTP client
func NewHTTPClient(opts ClientOptions, handler IHttpStatusHandler, limiter *rate.Limiter, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &HTTPClient{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
		Limiter:       limiter,
		logger:        logger,
	}
}

// ExecuteRequest sends req and returns the body of a 200 response
func (c *HTTPClient) ExecuteRequest(req *http.Request) ([]byte, time.Duration, error) {
	target := redactedURL(req)

	if c.Limiter != nil {
		if err := c.Limiter.Wait(req.Context()); err != nil {
			c.onRequest("error")
			return nil, 0, &RequestError{URL: target, Err: fmt.Errorf("rate limiter wait failed: %w", err)}
		}
	}

	requestStart := time.Now()
	resp, err := c.Client.Do(req)
	requestDuration := time.Since(requestStart)
	if err != nil {
		c.onRequest("error")
		c.logger.Warn("request failed",
			zap.String("prefix", c.Opts.LogPrefix),
			zap.String("url", target),
			zap.Duration("duration", requestDuration),
			zap.Error(err))
		return nil, requestDuration, &RequestError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			RetryAfter: resp.Header.Get("Retry-After"),
			Body:       string(body),
		}
		if statusErr.RateLimited() {
			c.onRequest("rate_limited")
		} else {
			c.onRequest("error")
		}
		c.logger.Warn("unexpected status",
			zap.String("prefix", c.Opts.LogPrefix),
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", requestDuration))
		return nil, requestDuration, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.onRequest("error")
		return nil, requestDuration, &RequestError{URL: target, Err: fmt.Errorf("error reading response: %w", err)}
	}

	c.onRequest("success")
	c.logger.Debug("request succeeded",
		zap.String("prefix", c.Opts.LogPrefix),
		zap.String("url", target),
		zap.Duration("duration", requestDuration),
		zap.Int("bytes", len(body)))

	return body, requestDuration, nil
}

func (c *HTTPClient) onRequest(status string) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(status)
	}
}

// redactedURL returns the request URL without API keys, safe to log
func redactedURL(req *http.Request) string {
	if req == nil || req.URL == nil {
		return ""
	}
	u := *req.URL
	query := u.Query()
	for _, key := range []string{"x_cg_pro_api_key", "x_cg_demo_api_key"} {
		if query.Has(key) {
			query.Set(key, "REDACTED")
		}
	}
	u.RawQuery = query.Encode()
	return u.String()
}
