// Package metrics provides Prometheus metrics for the presence engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names as constants for consistency.
const (
	MetricSamplesTotal       = "presence_samples_total"
	MetricTransitionsTotal   = "presence_transitions_total"
	MetricIntentsTotal       = "presence_notification_intents_total"
	MetricEvaluationDuration = "presence_evaluation_duration_seconds"
)

// Sample status constants for labeling.
const (
	SampleStatusProcessed = "processed"
	SampleStatusRejected  = "rejected"
	SampleStatusDegraded  = "degraded"
	SampleStatusFailed    = "failed"
)

// Intent outcome constants.
const (
	IntentEmitted       = "emitted"
	IntentSuppressed    = "suppressed"
	IntentPublishFailed = "publish_failed"
)

// Metrics contains Prometheus metrics for presence evaluation passes.
// All operations are thread-safe.
type Metrics struct {
	samplesTotal       *prometheus.CounterVec
	transitionsTotal   *prometheus.CounterVec
	intentsTotal       *prometheus.CounterVec
	evaluationDuration prometheus.Histogram
}

// NewMetrics creates and returns a new Metrics instance with all collectors initialized.
// The metrics are not registered; call Register to register them with a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		samplesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricSamplesTotal,
				Help: "Total number of location samples by provenance and status",
			},
			[]string{"source", "status"},
		),
		transitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricTransitionsTotal,
				Help: "Total number of zone boundary transitions by direction",
			},
			[]string{"direction"},
		),
		intentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricIntentsTotal,
				Help: "Total number of notification intents by outcome",
			},
			[]string{"outcome"},
		),
		evaluationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricEvaluationDuration,
				Help:    "Histogram of full evaluate-diff-persist-fanout pass duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
		),
	}
}

// Register registers all metrics with the given registry.
// Returns an error if registration fails.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.samplesTotal,
		m.transitionsTotal,
		m.intentsTotal,
		m.evaluationDuration,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// IncSamples increments the samples counter for the given provenance and status.
func (m *Metrics) IncSamples(source, status string) {
	m.samplesTotal.WithLabelValues(source, status).Inc()
}

// IncTransitions adds n transitions for the given direction.
func (m *Metrics) IncTransitions(direction string, n int) {
	if n <= 0 {
		return
	}
	m.transitionsTotal.WithLabelValues(direction).Add(float64(n))
}

// IncIntents increments the notification intent counter for the given outcome.
func (m *Metrics) IncIntents(outcome string) {
	m.intentsTotal.WithLabelValues(outcome).Inc()
}

// ObserveEvaluation records the duration of one evaluation pass in seconds.
func (m *Metrics) ObserveEvaluation(seconds float64) {
	m.evaluationDuration.Observe(seconds)
}
