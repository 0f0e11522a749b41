package metrics

import (
	"time"
)

// MetricsWriter records metrics on behalf of one fetcher service
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordCacheLookup counts a cache hit or miss
func (mw *MetricsWriter) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(mw.serviceName, result).Inc()
}

// RecordFetchDuration observes the time spent serving one fetch
func (mw *MetricsWriter) RecordFetchDuration(start time.Time) {
	FetchDurationHistogram.WithLabelValues(mw.serviceName).Observe(time.Since(start).Seconds())
}

// OnRequest implements coingecko_common.IHttpStatusHandler
func (mw *MetricsWriter) OnRequest(status string) {
	CoingeckoRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}
