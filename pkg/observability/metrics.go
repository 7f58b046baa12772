package observability

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/espalier/pkg/demo"
)

// Metrics holds the Prometheus collectors for the gallery.
type Metrics struct {
	runs     *prometheus.CounterVec
	lines    *prometheus.CounterVec
	duration *prometheus.HistogramVec

	mu     sync.Mutex
	starts map[string]time.Time
}

// NewMetrics creates the gallery collectors. Register them with a registry
// (or prometheus.MustRegister) before serving /metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_demo_runs_total",
				Help: "Total number of demo runs",
			},
			[]string{"demo", "status"},
		),
		lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_demo_output_lines_total",
				Help: "Total narration lines emitted by demos",
			},
			[]string{"demo"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "espalier_demo_duration_seconds",
				Help: "Duration of demo runs",
			},
			[]string{"demo"},
		),
		starts: make(map[string]time.Time),
	}
}

// Collectors returns every collector for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.runs, m.lines, m.duration}
}

// MustRegister registers the collectors with the given registerer.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.Collectors()...)
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() demo.LifecycleHooks {
	return demo.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *demo.RunEvent) {
			m.mu.Lock()
			m.starts[e.RunID] = e.Timestamp
			m.mu.Unlock()
		},
		OnStep: func(ctx context.Context, e *demo.StepEvent) {
			m.lines.WithLabelValues(e.Demo).Inc()
		},
		OnRunEnd: func(ctx context.Context, e *demo.RunEvent) {
			status := "success"
			if e.Err != nil {
				status = "error"
			}
			m.runs.WithLabelValues(e.Demo, status).Inc()

			m.mu.Lock()
			start, ok := m.starts[e.RunID]
			delete(m.starts, e.RunID)
			m.mu.Unlock()

			if ok {
				m.duration.WithLabelValues(e.Demo).Observe(e.Timestamp.Sub(start).Seconds())
			}
		},
	}
}
