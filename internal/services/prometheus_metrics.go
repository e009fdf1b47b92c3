package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricRecommendationResolved = "recommendation.resolved"
	MetricRecommendationSkipped  = "recommendation.stage.skipped"
	MetricSourceFailed           = "recommendation.source.failed"
	MetricRecommendationDuration = "recommendation.resolve"
	MetricPrecomputeRefreshed    = "precompute.refreshed"
	MetricPrecomputeBatch        = "precompute.batch"
	MetricCircuitBreakerOpen     = "circuit_breaker.open"
	MetricCatalogSeeded          = "catalog.seeded"
	MetricArtifactAvailable      = "artifact.available"
	MetricAPIError               = "api.error"
	MetricAPIRecommendations     = "api.recommendations"
	MetricAPICompleteTheSet      = "api.complete_the_set"
)

type PrometheusMetrics struct {
	recommendationsTotal   *prometheus.CounterVec
	stagesSkipped          *prometheus.CounterVec
	sourceFailures         *prometheus.CounterVec
	recommendationDuration prometheus.Histogram
	precomputeTotal        *prometheus.CounterVec
	precomputeDuration     prometheus.Histogram
	circuitBreakerState    *prometheus.GaugeVec
	catalogRowsWritten     prometheus.Counter
	artifactAvailable      *prometheus.GaugeVec
	apiErrorsTotal         *prometheus.CounterVec
	apiDuration            *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the collectors with the default registry.
// Call it once per process.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the collectors with reg
func NewPrometheusMetricsWith(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		recommendationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_source_total",
				Help: "Total number of recommendation resolutions by winning source and stage",
			},
			[]string{"source", "stage"},
		),
		stagesSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_stage_skipped_total",
				Help: "Total number of cascade stages skipped before evaluation",
			},
			[]string{"stage", "reason"},
		),
		sourceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_source_failures_total",
				Help: "Total number of absorbed recommendation source failures",
			},
			[]string{"stage"},
		),
		recommendationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recommendation_duration_milliseconds",
				Help:    "Recommendation resolution duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		precomputeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_precompute_total",
				Help: "Total number of precomputed recommendation refreshes",
			},
			[]string{"status"},
		),
		precomputeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recommendation_precompute_batch_milliseconds",
				Help:    "Precompute batch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		catalogRowsWritten: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_rows_written_total",
				Help: "Total number of catalogue rows upserted",
			},
		),
		artifactAvailable: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "recommendation_artifact_available",
				Help: "Whether a model artifact is loaded (1) or unavailable (0)",
			},
			[]string{"artifact"},
		),
		apiErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API error responses by code",
			},
			[]string{"code", "status"},
		),
		apiDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "api_request_duration_milliseconds",
				Help:    "Recommendation endpoint latency in milliseconds",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"endpoint"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricRecommendationResolved:
		m.recommendationsTotal.WithLabelValues(tags["source"], tags["stage"]).Inc()
	case MetricRecommendationSkipped:
		m.stagesSkipped.WithLabelValues(tags["stage"], tags["reason"]).Inc()
	case MetricSourceFailed:
		m.sourceFailures.WithLabelValues(tags["stage"]).Inc()
	case MetricPrecomputeRefreshed:
		if status := tags["status"]; status != "" {
			m.precomputeTotal.WithLabelValues(status).Inc()
		}
	case MetricCircuitBreakerOpen:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(float64(StateOpen))
	case MetricAPIError:
		m.apiErrorsTotal.WithLabelValues(tags["code"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricRecommendationDuration:
		m.recommendationDuration.Observe(float64(duration.Milliseconds()))
	case MetricPrecomputeBatch:
		m.precomputeDuration.Observe(float64(duration.Milliseconds()))
	case MetricAPIRecommendations, MetricAPICompleteTheSet:
		m.apiDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricArtifactAvailable:
		if artifact := tags["artifact"]; artifact != "" {
			m.artifactAvailable.WithLabelValues(artifact).Set(value)
		}
	case MetricCatalogSeeded:
		m.catalogRowsWritten.Add(value)
	case MetricCircuitBreakerOpen:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
