package coingecko_common

import (
	"fmt"
	"net/http"
)

// RequestError is a transport-level failure: the request could not be sent
// or no response arrived (DNS, refused connection, timeout, cancelled context).
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError is a response with a non-2xx status
type StatusError struct {
	StatusCode int
	RetryAfter string
	Body       string
}

func (e *StatusError) Error() string {
	if e.StatusCode == http.StatusTooManyRequests {
		return fmt.Sprintf("rate limit exceeded (status %d), retry after %s", e.StatusCode, e.RetryAfter)
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// RateLimited reports whether the upstream throttled the request
func (e *StatusError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// DecodeError is a response body that does not have the expected shape
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
