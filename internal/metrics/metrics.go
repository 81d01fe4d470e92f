package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Selection outcomes
const (
	OutcomeStrict   = "strict"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
)

// Metrics holds the service collectors. A nil *Metrics is a valid no-op.
type Metrics struct {
	selections        *prometheus.CounterVec
	fallbacks         *prometheus.CounterVec
	quizzesGenerated  *prometheus.CounterVec
	questionsSelected prometheus.Histogram
	duration          *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		selections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quiz_selection_requests_total",
				Help: "Total number of question selections",
			},
			[]string{"outcome"}, // strict/fallback/empty/error
		),
		fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quiz_selection_fallbacks_total",
				Help: "Total number of fallback relaxations applied",
			},
			[]string{"step"},
		),
		quizzesGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quiz_generated_total",
				Help: "Total number of quizzes assembled",
			},
			[]string{"game_format"},
		),
		questionsSelected: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "quiz_selection_questions",
				Help:    "Number of questions returned per selection",
				Buckets: []float64{1, 5, 10, 20, 30, 50},
			},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quiz_selection_duration_seconds",
				Help:    "Time spent in selection operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *Metrics) ObserveSelection(outcome string, questions int) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(outcome).Inc()
	if questions > 0 {
		m.questionsSelected.Observe(float64(questions))
	}
}

func (m *Metrics) ObserveFallback(step string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(step).Inc()
}

func (m *Metrics) ObserveQuizGenerated(gameFormat string) {
	if m == nil {
		return
	}
	m.quizzesGenerated.WithLabelValues(gameFormat).Inc()
}

// Track returns a func that records the elapsed time for operation
func (m *Metrics) Track(operation string) func() {
	if m == nil {
		return func() {}
	}
	timer := prometheus.NewTimer(m.duration.WithLabelValues(operation))
	return func() { timer.ObserveDuration() }
}

// FallbackCount exposes the counter for a step, for tests and diagnostics
func (m *Metrics) FallbackCount(step string) prometheus.Counter {
	return m.fallbacks.WithLabelValues(step)
}

func (m *Metrics) QuizzesGeneratedCount(gameFormat string) prometheus.Counter {
	return m.quizzesGenerated.WithLabelValues(gameFormat)
}

func (m *Metrics) SelectionCount(outcome string) prometheus.Counter {
	return m.selections.WithLabelValues(outcome)
}
