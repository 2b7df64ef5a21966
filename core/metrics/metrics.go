package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomePartial = "partial"
	OutcomeFailure = "failure"
)

// Manager owns the pipeline metrics and the registry they live in.
// A nil *Manager is valid and records nothing.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	runs         *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	masterRows   *prometheus.GaugeVec
	sourceRows   *prometheus.GaugeVec
	sourceMatch  *prometheus.GaugeVec
	sourceCollis *prometheus.GaugeVec
	sourceSkips  *prometheus.CounterVec
	sinkChunks   *prometheus.CounterVec
}

// NewManager creates a manager with its own registry unless one is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "player_enricher",
		buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.runs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "pipeline",
		Name:      "runs_total",
		Help:      "Pipeline runs by join mode and outcome",
	}, []string{"mode", "outcome"})

	m.runDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "pipeline",
		Name:      "run_duration_seconds",
		Help:      "Wall time of a pipeline run",
		Buckets:   m.buckets,
	}, []string{"mode"})

	m.masterRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "pipeline",
		Name:      "master_rows",
		Help:      "Master records produced by the last run",
	}, []string{"mode"})

	m.sourceRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "source",
		Name:      "rows",
		Help:      "Rows read from a ranking source after de-duplication",
	}, []string{"source"})

	m.sourceMatch = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "source",
		Name:      "matched_players",
		Help:      "Registry players that received at least one value from a source",
	}, []string{"source"})

	m.sourceCollis = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "source",
		Name:      "name_collisions",
		Help:      "Source names shared by more than one registry player",
	}, []string{"source"})

	m.sourceSkips = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "source",
		Name:      "skipped_total",
		Help:      "Sources skipped because they were absent or had no recognizable schema",
	}, []string{"source"})

	m.sinkChunks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "sink",
		Name:      "chunks_total",
		Help:      "Sink write chunks by outcome",
	}, []string{"outcome"})
}

// Registry returns the registry holding the metrics.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveRun records one finished run.
func (m *Manager) ObserveRun(mode, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(mode, outcome).Inc()
	m.runDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// SetMasterRows records the size of the master relation.
func (m *Manager) SetMasterRows(mode string, n int) {
	if m == nil {
		return
	}
	m.masterRows.WithLabelValues(mode).Set(float64(n))
}

// RecordSource records what one source contributed.
func (m *Manager) RecordSource(source string, rows, matched, collisions int) {
	if m == nil {
		return
	}
	m.sourceRows.WithLabelValues(source).Set(float64(rows))
	m.sourceMatch.WithLabelValues(source).Set(float64(matched))
	m.sourceCollis.WithLabelValues(source).Set(float64(collisions))
}

// SourceSkipped counts a skipped source.
func (m *Manager) SourceSkipped(source string) {
	if m == nil {
		return
	}
	m.sourceSkips.WithLabelValues(source).Inc()
}

// ChunkWritten counts a sink chunk.
func (m *Manager) ChunkWritten(ok bool) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if !ok {
		outcome = OutcomeFailure
	}
	m.sinkChunks.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Manager) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
