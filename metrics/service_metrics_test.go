package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsWriter_RecordCacheLookup(t *testing.T) {
	mw := NewMetricsWriter("test-cache-lookup")

	mw.RecordCacheLookup(true)
	mw.RecordCacheLookup(false)
	mw.RecordCacheLookup(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("test-cache-lookup", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("test-cache-lookup", "miss")))
}

func TestMetricsWriter_OnRequest(t *testing.T) {
	mw := NewMetricsWriter("test-on-request")

	mw.OnRequest("success")
	mw.OnRequest("error")
	mw.OnRequest("success")

	assert.Equal(t, 2.0, testutil.ToFloat64(CoingeckoRequestsTotal.WithLabelValues("test-on-request", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(CoingeckoRequestsTotal.WithLabelValues("test-on-request", "error")))
	assert.Equal(t, "test-on-request", mw.GetServiceName())
}

func TestMetricsWriter_RecordFetchDuration(t *testing.T) {
	mw := NewMetricsWriter("test-duration")

	assert.NotPanics(t, func() {
		mw.RecordFetchDuration(time.Now().Add(-time.Second))
	})
}

func TestRecordCacheSize(t *testing.T) {
	RecordCacheSize(42)
	assert.Equal(t, 42.0, testutil.ToFloat64(CacheSizeGauge))
}
