package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Tracking write kinds.
const (
	KindImpression = "impression"
	KindClick      = "click"
)

// Metrics holds the Prometheus collectors of the ad service. All methods
// are safe to call on a nil *Metrics.
type Metrics struct {
	Selections     *prometheus.CounterVec
	TrackingWrites *prometheus.CounterVec
	OpenSessions   prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New creates and registers the collectors on a fresh registry.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	return NewWithRegistry(namespace, reg, reg)
}

// NewWithRegistry registers the collectors on reg and serves them from g.
func NewWithRegistry(namespace string, reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Selections: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "selections_total",
				Help:      "Advertisement selections by outcome",
			},
			[]string{"outcome"},
		),
		TrackingWrites: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tracking_writes_total",
				Help:      "Impression and click write-backs by result",
			},
			[]string{"kind", "result"},
		),
		OpenSessions: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "reel_sessions_open",
				Help:      "Reel viewing sessions currently open",
			},
		),
		gatherer: g,
	}
}

// ObserveSelection counts one selection.
func (m *Metrics) ObserveSelection(shown bool) {
	if m == nil {
		return
	}
	outcome := "empty"
	if shown {
		outcome = "shown"
	}
	m.Selections.WithLabelValues(outcome).Inc()
}

// ObserveTracking counts one tracking write.
func (m *Metrics) ObserveTracking(kind string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.TrackingWrites.WithLabelValues(kind, result).Inc()
}

// SessionOpened and SessionClosed track the open sessions gauge.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.OpenSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.OpenSessions.Dec()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
