package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoCache_Basic(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)

	value, found := cache.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("value1"), value)

	_, found = cache.Get("missing")
	assert.False(t, found)

	assert.Equal(t, 2, cache.ItemCount())
}

func TestGoCache_Delete(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)
	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)

	cache.Delete("key1")

	_, found := cache.Get("key1")
	assert.False(t, found)
	_, found = cache.Get("key2")
	assert.True(t, found)
}

func TestGoCache_Clear(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)
	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)

	cache.Clear()

	assert.Equal(t, 0, cache.ItemCount())
}

func TestGoCache_Expiration(t *testing.T) {
	cache := NewGoCache(50*time.Millisecond, time.Minute)

	cache.Set("default", []byte("a"), 0)
	cache.Set("custom", []byte("b"), time.Minute)

	time.Sleep(100 * time.Millisecond)

	_, found := cache.Get("default")
	assert.False(t, found)
	_, found = cache.Get("custom")
	assert.True(t, found)

	cache.DeleteExpired()
	assert.Equal(t, 1, cache.ItemCount())
}

func TestGoCache_ForeignValueTreatedAsMissing(t *testing.T) {
	cache := NewGoCache(time.Minute, time.Minute)
	cache.cache.Set("odd", "not bytes", 0)

	_, found := cache.Get("odd")
	assert.False(t, found)
}
