package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "market_dashboard_"

// Service names used as the "service" label
const (
	ServiceMarkets     = "markets"
	ServiceMarketChart = "market_chart"
)

var (
	// Coingecko requests per service and outcome
	// Cardinality: ~8 (2 services × 4 statuses)
	CoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "coingecko_requests_total",
			Help: "Total number of HTTP requests to Coingecko API per service",
		},
		[]string{"service", "status"},
	)

	// Cache lookups per service, result is "hit" or "miss"
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cache_lookups_total",
			Help: "Number of fetcher cache lookups by result",
		},
		[]string{"service", "result"},
	)

	// Duration of a full fetch (cache lookup + upstream call on miss)
	FetchDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "fetch_duration_seconds",
			Help: "Time taken to serve a fetcher call",
		},
		[]string{"service"},
	)

	// Number of items held by the process-wide cache
	CacheSizeGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "cache_size",
			Help: "Number of items in the result cache",
		},
	)

	// Dashboard HTTP handler latency
	// Cardinality: ~6 routes × methods × status classes
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "http_request_duration_seconds",
			Help: "Latency of dashboard HTTP handlers",
		},
		[]string{"route", "method", "status"},
	)
)

// RecordCacheSize publishes the current cache item count
func RecordCacheSize(size int) {
	CacheSizeGauge.Set(float64(size))
}

// RecordHTTPRequest observes a served dashboard request
func RecordHTTPRequest(route, method, status string, seconds float64) {
	HTTPRequestDuration.WithLabelValues(route, method, status).Observe(seconds)
}
