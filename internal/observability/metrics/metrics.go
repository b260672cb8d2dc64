package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// PipelineMetrics tracks inflation pipeline runs for the /metrics endpoint.
type PipelineMetrics struct {
	Registry *prometheus.Registry

	runsTotal      *prometheus.CounterVec
	runDuration    prometheus.Histogram
	entriesUpdated prometheus.Counter
}

func New() *PipelineMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &PipelineMetrics{
		Registry: registry,
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "priceguide_pipeline_runs_total",
			Help: "Inflation pipeline runs by mode and result.",
		}, []string{"mode", "result"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "priceguide_pipeline_run_duration_seconds",
			Help:    "Duration of inflation pipeline runs.",
			Buckets: prometheus.DefBuckets,
		}),
		entriesUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "priceguide_pipeline_entries_updated_total",
			Help: "Catalog entries written by live inflation runs.",
		}),
	}
	registry.MustRegister(m.runsTotal, m.runDuration, m.entriesUpdated)
	return m
}

func (m *PipelineMetrics) ObserveRun(dryRun bool, success bool, seconds float64) {
	if m == nil {
		return
	}
	mode := "live"
	if dryRun {
		mode = "dry_run"
	}
	result := "success"
	if !success {
		result = "error"
	}
	m.runsTotal.WithLabelValues(mode, result).Inc()
	m.runDuration.Observe(seconds)
}

func (m *PipelineMetrics) AddEntriesUpdated(n int) {
	if m == nil {
		return
	}
	m.entriesUpdated.Add(float64(n))
}

var Module = fx.Module("observability.metrics",
	fx.Provide(New),
)
