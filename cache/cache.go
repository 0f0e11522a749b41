package cache

import "time"

// LoaderFunc produces the value for a key that is missing from the cache.
// A returned error is passed to the caller and nothing is stored.
type LoaderFunc func() ([]byte, error)

// Cache is the process-wide result cache shared by the fetchers.
//
//go:generate mockgen -destination=mocks/cache.go . Cache
type Cache interface {
	// GetOrLoad returns the cached value for key, or calls loader and stores
	// its result for ttl. The bool result reports whether the value came from
	// the cache. If ttl is 0 the cache's default expiration is used.
	GetOrLoad(key string, ttl time.Duration, loader LoaderFunc) ([]byte, bool, error)

	// Get returns the cached value for key if it is present and not expired
	Get(key string) ([]byte, bool)

	// Set stores value under key for ttl
	Set(key string, value []byte, ttl time.Duration)

	// Clear drops every cached value
	Clear()
}
