package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts dispatches and tracks collection sizes.
type Metrics struct {
	dispatched     *prometheus.CounterVec
	rejected       *prometheus.CounterVec
	collectionSize *prometheus.GaugeVec
}

// NewMetrics registers the store collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		dispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lifeos",
			Subsystem: "store",
			Name:      "actions_dispatched_total",
			Help:      "Total actions applied to the store",
		}, []string{"type"}),
		// Labels: type, reason (not_found, already_exists, invalid_reference, invalid_payload, unknown_action)
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lifeos",
			Subsystem: "store",
			Name:      "actions_rejected_total",
			Help:      "Total actions rejected by the store",
		}, []string{"type", "reason"}),
		collectionSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "lifeos",
			Subsystem: "store",
			Name:      "collection_size",
			Help:      "Number of entities per collection",
		}, []string{"collection"}),
	}
}

func (m *Metrics) observeDispatch(actionType ActionType, state State) {
	if m == nil {
		return
	}
	m.dispatched.WithLabelValues(string(actionType)).Inc()
	m.observeState(state)
}

func (m *Metrics) observeRejection(actionType ActionType, reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(string(actionType), reason).Inc()
}

func (m *Metrics) observeState(state State) {
	if m == nil {
		return
	}
	for collection, size := range state.Sizes() {
		m.collectionSize.WithLabelValues(collection).Set(float64(size))
	}
}
