package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_Options(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewManager(WithNamespace("test"), WithRegistry(registry), WithDurationBuckets([]float64{1, 2}))

	assert.Same(t, registry, m.Registry())
	assert.Equal(t, "test", m.namespace)
	assert.Equal(t, []float64{1, 2}, m.buckets)

	// Empty values keep defaults.
	d := NewManager(WithNamespace(""), WithDurationBuckets(nil), WithRegistry(nil))
	assert.Equal(t, "player_enricher", d.namespace)
	assert.NotNil(t, d.Registry())
}

func TestManager_Records(t *testing.T) {
	m := NewManager()

	m.ObserveRun("inner", OutcomeSuccess, 2*time.Second)
	m.ObserveRun("inner", OutcomeSuccess, time.Second)
	m.SetMasterRows("inner", 42)
	m.RecordSource("superflex", 300, 250, 1)
	m.SourceSkipped("redraft")
	m.ChunkWritten(true)
	m.ChunkWritten(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runs.WithLabelValues("inner", OutcomeSuccess)))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.masterRows.WithLabelValues("inner")))
	assert.Equal(t, 250.0, testutil.ToFloat64(m.sourceMatch.WithLabelValues("superflex")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sourceCollis.WithLabelValues("superflex")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sourceSkips.WithLabelValues("redraft")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sinkChunks.WithLabelValues(OutcomeFailure)))
}

func TestManager_NilIsNoop(t *testing.T) {
	var m *Manager
	assert.NotPanics(t, func() {
		m.ObserveRun("left", OutcomeFailure, time.Second)
		m.SetMasterRows("left", 1)
		m.RecordSource("s", 1, 1, 0)
		m.SourceSkipped("s")
		m.ChunkWritten(true)
	})
	assert.Nil(t, m.Registry())
}

func TestManager_Handler(t *testing.T) {
	m := NewManager()
	m.RecordSource("superflex", 10, 7, 0)

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `player_enricher_source_matched_players{source="superflex"} 7`)
}
