package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) *Service {
	config := DefaultCacheConfig()
	config.StatsInterval = 0
	return NewService(config, zaptest.NewLogger(t))
}

func TestService_GetOrLoad_CacheHit(t *testing.T) {
	service := newTestService(t)

	calls := 0
	loader := func() ([]byte, error) {
		calls++
		return []byte("loaded"), nil
	}

	// First call goes to the loader
	data, hit, err := service.GetOrLoad("key1", time.Minute, loader)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []byte("loaded"), data)

	// Second call is served from cache
	data, hit, err = service.GetOrLoad("key1", time.Minute, loader)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("loaded"), data)
	assert.Equal(t, 1, calls)

	stats := service.Stats()
	assert.Equal(t, 1, stats.GoCacheItems)
	assert.True(t, stats.Enabled)
}

func TestService_GetOrLoad_KeysAreIndependent(t *testing.T) {
	service := newTestService(t)

	_, _, err := service.GetOrLoad("a", time.Minute, func() ([]byte, error) { return []byte("A"), nil })
	require.NoError(t, err)

	data, hit, err := service.GetOrLoad("b", time.Minute, func() ([]byte, error) { return []byte("B"), nil })
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []byte("B"), data)
}

func TestService_GetOrLoad_LoaderErrorIsNotCached(t *testing.T) {
	service := newTestService(t)
	loadErr := errors.New("upstream down")

	data, hit, err := service.GetOrLoad("key1", time.Minute, func() ([]byte, error) {
		return nil, loadErr
	})
	assert.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "failed to load data")
	assert.Nil(t, data)
	assert.False(t, hit)

	// Next call must hit the loader again
	data, hit, err = service.GetOrLoad("key1", time.Minute, func() ([]byte, error) {
		return []byte("recovered"), nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []byte("recovered"), data)
}

func TestService_GetOrLoad_Expiration(t *testing.T) {
	service := newTestService(t)

	calls := 0
	loader := func() ([]byte, error) {
		calls++
		return []byte("v"), nil
	}

	_, _, err := service.GetOrLoad("short", 50*time.Millisecond, loader)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	_, hit, err := service.GetOrLoad("short", 50*time.Millisecond, loader)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, calls)
}

func TestService_Clear(t *testing.T) {
	service := newTestService(t)

	calls := 0
	loader := func() ([]byte, error) {
		calls++
		return []byte("v"), nil
	}

	_, _, err := service.GetOrLoad("key1", time.Minute, loader)
	require.NoError(t, err)
	_, _, err = service.GetOrLoad("key2", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, 2, service.Stats().GoCacheItems)

	service.Clear()
	assert.Equal(t, 0, service.Stats().GoCacheItems)

	_, hit, err := service.GetOrLoad("key1", time.Minute, loader)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 3, calls)
}

func TestService_Disabled(t *testing.T) {
	config := DefaultCacheConfig()
	config.GoCache.Enabled = false
	config.StatsInterval = 0
	service := NewService(config, nil)

	calls := 0
	loader := func() ([]byte, error) {
		calls++
		return []byte("v"), nil
	}

	for i := 0; i < 3; i++ {
		_, hit, err := service.GetOrLoad("key", time.Minute, loader)
		require.NoError(t, err)
		assert.False(t, hit)
	}
	assert.Equal(t, 3, calls)
	assert.False(t, service.Stats().Enabled)
}

func TestService_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	service := newTestService(t)

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	loader := func() ([]byte, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return []byte("shared"), nil
	}

	var wg sync.WaitGroup
	results := make([][]byte, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, _, err := service.GetOrLoad("same", time.Minute, loader)
			assert.NoError(t, err)
			results[i] = data
		}(i)
	}

	<-started
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, data := range results {
		assert.Equal(t, []byte("shared"), data)
	}
}

func TestService_StartStop(t *testing.T) {
	config := DefaultCacheConfig()
	config.StatsInterval = 10 * time.Millisecond
	service := NewService(config, zaptest.NewLogger(t))

	require.NoError(t, service.Start(context.Background()))
	service.Set("key", []byte("v"), 0)
	time.Sleep(30 * time.Millisecond)

	assert.NotPanics(t, func() {
		service.Stop()
	})
	_, found := service.Get("key")
	assert.False(t, found)
}
