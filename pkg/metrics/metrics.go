// Package metrics provides Prometheus metrics for the jyoti computation
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every metric the service exposes. All metrics live on a
// dedicated registry so the default Go collectors stay out of the way.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Computation metrics.
	chartsComputed  prometheus.Counter
	matchesComputed prometheus.Counter
	computeErrors   *prometheus.CounterVec
	chartDuration   prometheus.Histogram
	matchDuration   prometheus.Histogram

	// Snapshot cache metrics.
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager, registering all metrics on the
// configured registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "jyoti",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.chartsComputed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "charts_computed_total",
		Help: "Total natal charts computed.",
	})
	m.matchesComputed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "matches_computed_total",
		Help: "Total compatibility reports computed.",
	})
	m.computeErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "compute_errors_total",
		Help: "Computation failures by component.",
	}, []string{"component"})
	m.chartDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "chart_duration_ms",
		Help:    "Natal chart computation latency in milliseconds.",
		Buckets: m.histogramBuckets,
	})
	m.matchDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "match_duration_ms",
		Help:    "Compatibility computation latency in milliseconds.",
		Buckets: m.histogramBuckets,
	})
	m.cacheHits = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_cache_hits_total",
		Help: "Snapshot cache hits.",
	})
	m.cacheMisses = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_cache_misses_total",
		Help: "Snapshot cache misses.",
	})
	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "http_requests_total",
		Help: "HTTP requests by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "http_request_duration_ms",
		Help:    "HTTP request latency in milliseconds.",
		Buckets: m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "system_memory_bytes",
		Help: "Allocated heap bytes.",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "system_goroutines",
		Help: "Current goroutine count.",
	})

	return m
}

// GetRegistry returns the registry the global manager records into.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordChartComputed counts a chart computation and its latency.
func RecordChartComputed(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.chartsComputed.Inc()
	globalManager.chartDuration.Observe(durationMs)
}

// RecordMatchComputed counts a compatibility computation and its latency.
func RecordMatchComputed(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.matchesComputed.Inc()
	globalManager.matchDuration.Observe(durationMs)
}

// RecordComputeError counts a computation failure for a component.
func RecordComputeError(component string) {
	if !globalManager.enabled {
		return
	}
	globalManager.computeErrors.WithLabelValues(component).Inc()
}

// RecordCacheHit counts a snapshot cache hit.
func RecordCacheHit() {
	if globalManager.enabled {
		globalManager.cacheHits.Inc()
	}
}

// RecordCacheMiss counts a snapshot cache miss.
func RecordCacheMiss() {
	if globalManager.enabled {
		globalManager.cacheMisses.Inc()
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration records one HTTP request's latency.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
	}
}

// UpdateSystemMemoryUsage sets the allocated heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}
