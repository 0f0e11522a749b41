package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// GoCache is a thin []byte-typed wrapper around go-cache
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a new GoCache instance
// defaultExpiration: expiration used for Set with timeout 0
// cleanupInterval: interval for purging expired items
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get returns the value for key. Values of a foreign type are reported as missing.
func (gc *GoCache) Get(key string) ([]byte, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	return data, ok
}

// Set stores value with the given timeout
// If timeout is 0, uses cache's default expiration
// If timeout is -1 (cache.NoExpiration), item never expires
func (gc *GoCache) Set(key string, value []byte, timeout time.Duration) {
	gc.cache.Set(key, value, timeout)
}

// Delete removes a single key
func (gc *GoCache) Delete(key string) {
	gc.cache.Delete(key)
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount returns the number of items in cache, including expired ones not yet purged
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}

// DeleteExpired manually triggers deletion of expired items
func (gc *GoCache) DeleteExpired() {
	gc.cache.DeleteExpired()
}
