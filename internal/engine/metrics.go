package engine

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/roach88/docreduce/internal/document"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	applied  *prometheus.CounterVec
	rejected *prometheus.CounterVec
	replays  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docreduce",
			Name:      "actions_applied_total",
			Help:      "Actions applied and persisted, by document type and kind.",
		}, []string{"type", "kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docreduce",
			Name:      "actions_rejected_total",
			Help:      "Actions rejected before persistence, by document type, kind and error code.",
		}, []string{"type", "kind", "code"}),
		replays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docreduce",
			Name:      "replays_total",
			Help:      "Documents rehydrated from the operation log, by document type.",
		}, []string{"type"}),
	}
	if reg != nil {
		reg.MustRegister(m.applied, m.rejected, m.replays)
	}
	return m
}

func (m *Metrics) observeApplied(docType string, kind document.Kind) {
	m.applied.WithLabelValues(docType, string(kind)).Inc()
}

func (m *Metrics) observeRejected(docType string, kind document.Kind, code string) {
	m.rejected.WithLabelValues(docType, string(kind), code).Inc()
}

func (m *Metrics) observeReplay(docType string) {
	m.replays.WithLabelValues(docType).Inc()
}
