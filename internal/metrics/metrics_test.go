package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("GET", "/api/recipes", 200, 25*time.Millisecond)
	m.ObserveRequest("GET", "/api/recipes", 200, 10*time.Millisecond)
	m.ObserveRequest("GET", "", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/recipes", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unknown", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestIncGeneration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncGeneration("gemini", OutcomeSuccess)
	m.IncGeneration("gemini", OutcomeFailure)
	m.IncGeneration("gemini", OutcomeFailure)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("gemini", OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.generations.WithLabelValues("gemini", OutcomeFailure)))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.IncGeneration("gemini", OutcomeSuccess)
	})

	empty := New(nil)
	assert.NotPanics(t, func() {
		empty.IncGeneration("deepseek", OutcomeInvalid)
	})
}
