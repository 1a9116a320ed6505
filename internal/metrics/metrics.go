// Package metrics defines the Prometheus instrumentation shared across the
// service. Collectors are registered on the default registry and exposed at
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts warehouse queries per dataset.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fantasy_queries_total",
			Help: "Total warehouse queries executed",
		},
		[]string{"dataset"},
	)

	// QueryErrorsTotal counts warehouse query failures per dataset.
	QueryErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fantasy_query_errors_total",
			Help: "Total warehouse query failures",
		},
		[]string{"dataset"},
	)

	// ResolveCacheHits counts player resolutions served from the TTL cache.
	ResolveCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fantasy_resolve_cache_hits_total",
			Help: "Player id resolutions served from cache",
		},
	)

	// ResolveCacheMisses counts player resolutions requiring a lookup.
	ResolveCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fantasy_resolve_cache_misses_total",
			Help: "Player id resolutions missing the cache",
		},
	)

	// ResolveBatches counts bulk lookup batches issued to the warehouse.
	ResolveBatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fantasy_resolve_batches_total",
			Help: "Player bulk-lookup batches issued",
		},
	)

	// UpstreamRequestsTotal counts Sleeper API calls per endpoint.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fantasy_upstream_requests_total",
			Help: "Total Sleeper API requests",
		},
		[]string{"endpoint", "status"},
	)

	// UpstreamLatency tracks Sleeper API request latency.
	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fantasy_upstream_latency_seconds",
			Help:    "Sleeper API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// HTTPDuration tracks API request handling time.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fantasy_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
