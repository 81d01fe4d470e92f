package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersByLabel(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveFallback("domain_only")
	m.ObserveFallback("domain_only")
	m.ObserveFallback("drop_source")
	m.ObserveQuizGenerated("hangman")
	m.ObserveSelection(OutcomeStrict, 10)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FallbackCount("domain_only")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FallbackCount("drop_source")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuizzesGeneratedCount("hangman")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SelectionCount(OutcomeStrict)))
}

func TestMetrics_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveSelection(OutcomeFallback, 3)
	m.Track("select")()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "quiz_selection_requests_total")
	assert.Contains(t, names, "quiz_selection_duration_seconds")
	assert.Contains(t, names, "quiz_selection_questions")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveFallback("unconstrained")
		m.ObserveQuizGenerated("word_ladder")
		m.ObserveSelection(OutcomeEmpty, 0)
		m.Track("preview")()
	})
}
