package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registered once at package level so that constructing several
// PrometheusMetrics values (tests, reloads) never double-registers.
var (
	nilResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nil_resolutions_total",
			Help: "Total number of successful neighborhood resolutions by match type",
		},
		[]string{"match_type"},
	)
	nilResolutionMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nil_resolution_misses_total",
			Help: "Total number of neighborhood resolutions that matched nothing",
		},
	)
	nilIndexRebuildsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nil_index_rebuilds_total",
			Help: "Total number of neighborhood index rebuilds",
		},
	)
	nilIndexEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nil_index_entries",
			Help: "Number of entries in the current neighborhood index",
		},
	)
)

// PrometheusMetrics records service metrics to the default registry
type PrometheusMetrics struct{}

// NewPrometheusMetrics creates a prometheus-backed metrics recorder
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{}
}

// RecordResolution counts one successful resolution by match type
func (m *PrometheusMetrics) RecordResolution(matchType string) {
	nilResolutionsTotal.WithLabelValues(matchType).Inc()
}

// RecordResolutionMiss counts one resolution that matched nothing
func (m *PrometheusMetrics) RecordResolutionMiss() {
	nilResolutionMissesTotal.Inc()
}

// RecordIndexRebuild counts one index rebuild and tracks its size
func (m *PrometheusMetrics) RecordIndexRebuild(entries int) {
	nilIndexRebuildsTotal.Inc()
	nilIndexEntries.Set(float64(entries))
}

// NoopMetrics discards all metrics, for tests
type NoopMetrics struct{}

func (NoopMetrics) RecordResolution(string) {}
func (NoopMetrics) RecordResolutionMiss()   {}
func (NoopMetrics) RecordIndexRebuild(int)  {}
