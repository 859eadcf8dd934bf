package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AnalyticsMetrics tracks cache effectiveness and query latency per metric.
type AnalyticsMetrics struct {
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewAnalyticsMetrics registers the analytics metrics on the provided registerer.
func NewAnalyticsMetrics(reg prometheus.Registerer) *AnalyticsMetrics {
	if reg == nil {
		return &AnalyticsMetrics{}
	}
	hits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_cache_hits",
		Help: "Analytics results served from the in-process cache.",
	}, []string{"metric"})
	misses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_cache_misses",
		Help: "Analytics results recomputed against the store.",
	}, []string{"metric"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analytics_compute_duration_seconds",
		Help:    "Wall time spent aggregating a metric from the store.",
		Buckets: prometheus.DefBuckets,
	}, []string{"metric"})
	reg.MustRegister(hits, misses, duration)
	return &AnalyticsMetrics{
		cacheHits:   hits,
		cacheMisses: misses,
		duration:    duration,
	}
}

// IncCacheHit increments the cache hit counter for the named metric.
func (a *AnalyticsMetrics) IncCacheHit(metric string) {
	if a == nil || a.cacheHits == nil {
		return
	}
	a.cacheHits.WithLabelValues(normalizeLabel(metric)).Inc()
}

// IncCacheMiss increments the cache miss counter for the named metric.
func (a *AnalyticsMetrics) IncCacheMiss(metric string) {
	if a == nil || a.cacheMisses == nil {
		return
	}
	a.cacheMisses.WithLabelValues(normalizeLabel(metric)).Inc()
}

// ObserveCompute records how long a metric took to aggregate.
func (a *AnalyticsMetrics) ObserveCompute(metric string, duration time.Duration) {
	if a == nil || a.duration == nil {
		return
	}
	a.duration.WithLabelValues(normalizeLabel(metric)).Observe(duration.Seconds())
}
