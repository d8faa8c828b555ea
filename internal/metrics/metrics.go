// Package metrics exposes the console's Prometheus metrics. A Metrics
// value implements the recorder interfaces of the gateway, blob, notify and
// collection packages.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "landkeeper"

type Metrics struct {
	registry *prometheus.Registry

	GatewayCallDuration *prometheus.HistogramVec
	GatewayCallErrors   *prometheus.CounterVec

	SavesTotal   *prometheus.CounterVec
	DeletesTotal *prometheus.CounterVec

	NoticesPushed       *prometheus.CounterVec
	NoticesDeduplicated *prometheus.CounterVec

	BlobRemoveFailures *prometheus.CounterVec
	SweepRemoved       *prometheus.CounterVec

	IntakeTotal    *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
}

// New creates the metrics on a fresh registry that also carries the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return NewWithRegistry(reg)
}

func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		GatewayCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_call_duration_seconds",
				Help:      "Table gateway call duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 10},
			},
			[]string{"op", "table"},
		),
		GatewayCallErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gateway_call_errors_total",
				Help:      "Failed table gateway calls",
			},
			[]string{"op", "table"},
		),
		SavesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "saves_total",
				Help:      "Entity saves by collection and result",
			},
			[]string{"collection", "result"},
		),
		DeletesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deletes_total",
				Help:      "Entity deletes by collection and result",
			},
			[]string{"collection", "result"},
		),
		NoticesPushed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notices_pushed_total",
				Help:      "Notices added to a bell",
			},
			[]string{"kind"},
		),
		NoticesDeduplicated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notices_deduplicated_total",
				Help:      "Notices dropped by the dedupe window",
			},
			[]string{"kind"},
		),
		BlobRemoveFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "blob_remove_failures_total",
				Help:      "Objects a best-effort removal failed to delete",
			},
			[]string{"bucket"},
		),
		SweepRemoved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sweep_removed_total",
				Help:      "Orphaned objects removed by the sweep",
			},
			[]string{"bucket"},
		),
		IntakeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "intake_submissions_total",
				Help:      "Public submissions by form and result",
			},
			[]string{"form", "result"},
		),
		ActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_sessions",
				Help:      "Open admin workspaces",
			},
		),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) ObserveGatewayCall(op, table string, d time.Duration, err error) {
	m.GatewayCallDuration.WithLabelValues(op, table).Observe(d.Seconds())
	if err != nil {
		m.GatewayCallErrors.WithLabelValues(op, table).Inc()
	}
}

func (m *Metrics) SaveFinished(collection string, err error) {
	m.SavesTotal.WithLabelValues(collection, result(err)).Inc()
}

func (m *Metrics) DeleteFinished(collection string, err error) {
	m.DeletesTotal.WithLabelValues(collection, result(err)).Inc()
}

func (m *Metrics) NoticePushed(kind string) { m.NoticesPushed.WithLabelValues(kind).Inc() }

func (m *Metrics) NoticeDeduplicated(kind string) { m.NoticesDeduplicated.WithLabelValues(kind).Inc() }

func (m *Metrics) BlobRemoveFailed(bucket string, n int) {
	m.BlobRemoveFailures.WithLabelValues(bucket).Add(float64(n))
}

func (m *Metrics) SweepRemovedObjects(bucket string, n int) {
	m.SweepRemoved.WithLabelValues(bucket).Add(float64(n))
}

func (m *Metrics) IntakeSubmitted(form string, err error) {
	m.IntakeTotal.WithLabelValues(form, result(err)).Inc()
}

func (m *Metrics) SessionOpened() { m.ActiveSessions.Inc() }

func (m *Metrics) SessionClosed() { m.ActiveSessions.Dec() }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
