package formatter

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts formatted messages by the rung that produced them.
type Metrics struct {
	results *prometheus.CounterVec
}

// NewMetrics creates formatter metrics and registers them on reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "formatter_results_total",
			Help:      "Formatted error messages by resolution source.",
		}, []string{"source"}),
	}
	if reg != nil {
		if err := reg.Register(m.results); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Results exposes the underlying counter, mainly for tests.
func (m *Metrics) Results() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.results
}

func (m *Metrics) observe(src Source) {
	if m == nil {
		return
	}
	m.results.WithLabelValues(string(src)).Inc()
}
