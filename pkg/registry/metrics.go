package registry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records catalog load outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	loads    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors under namespace and registers them with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_loads_total",
				Help:      "Total catalog load attempts by locale and result.",
			},
			[]string{"locale", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "catalog_load_duration_seconds",
				Help:      "Catalog fetch and validation latency in seconds.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"locale"},
		),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.loads, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Loads exposes the load counter, mostly for tests.
func (m *Metrics) Loads() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.loads
}

func (m *Metrics) observe(locale, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(locale, result).Inc()
	m.duration.WithLabelValues(locale).Observe(d.Seconds())
}
