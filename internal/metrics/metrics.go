// Package metrics exposes bind and render activity as Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vk/phisynth/internal/engine"
)

const namespace = "phisynth"

// Metrics implements studio.Observer.
type Metrics struct {
	binds        prometheus.Counter
	bindDuration prometheus.Histogram
	samples      prometheus.Counter
	slots        prometheus.Gauge
	unresolved   prometheus.Gauge
	cycles       prometheus.Gauge
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		binds: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "binds_total",
			Help:      "Total number of binds.",
		}),
		bindDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bind_duration_seconds",
			Help:      "Time taken to bind the patch.",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		samples: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_rendered_total",
			Help:      "Total number of output samples rendered.",
		}),
		slots: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backing_slots",
			Help:      "Backing store size after the last bind.",
		}),
		unresolved: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unresolved_links",
			Help:      "References left unbound by the last bind because their target is missing.",
		}),
		cycles: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cyclic_links",
			Help:      "References left unbound by the last bind because their chain loops.",
		}),
	}
}

func (m *Metrics) ObserveBind(r *engine.Report, elapsed time.Duration) {
	m.binds.Inc()
	m.bindDuration.Observe(elapsed.Seconds())
	m.slots.Set(float64(r.Slots))
	m.unresolved.Set(float64(len(r.Unresolved)))
	m.cycles.Set(float64(len(r.Cycles)))
}

func (m *Metrics) ObserveRender(samples int) {
	m.samples.Add(float64(samples))
}

// Handler serves the collectors of g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
