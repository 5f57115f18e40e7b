// Package metrics exposes Prometheus counters and gauges for the proxy's
// dispatch loop, registered against an explicit registry via
// promauto against an explicit registry; adapted to a single flat package
// since the proxy has one dispatch loop to instrument, not per-backend
// metric sets.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every counter/gauge the dispatch loop updates. A nil
// *Metrics is safe to call methods on: every method no-ops, giving the
// same "zero overhead when disabled" shape as other optional subsystems.
type Metrics struct {
	registry *prometheus.Registry

	messagesTotal  *prometheus.CounterVec
	bytesTotal     *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	fdsQueued      prometheus.Counter
	fdsFlushed     prometheus.Counter
	liveObjects    *prometheus.GaugeVec
	clientsCurrent prometheus.Gauge
}

// New builds a Metrics instance registered against a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	return &Metrics{
		registry: reg,
		messagesTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "wlproxy_messages_total",
			Help: "Total messages dispatched, by direction (request/event).",
		}, []string{"direction"}),
		bytesTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "wlproxy_bytes_total",
			Help: "Total wire bytes framed, by direction.",
		}, []string{"direction"}),
		errorsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "wlproxy_errors_total",
			Help: "Total dispatch/codec errors, by error kind.",
		}, []string{"kind"}),
		fdsQueued: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "wlproxy_fds_queued_total",
			Help: "Total file descriptors queued for an outbound sendmsg.",
		}),
		fdsFlushed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "wlproxy_fds_flushed_total",
			Help: "Total file descriptors that left the process via sendmsg.",
		}),
		liveObjects: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "wlproxy_live_objects",
			Help: "Live objects currently tracked, by table (server/client).",
		}, []string{"table"}),
		clientsCurrent: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "wlproxy_clients_current",
			Help: "Number of currently connected downstream clients.",
		}),
	}
}

// Handler returns the net/http handler serving this instance's metrics in
// Prometheus text exposition format. Skips
// a router dependency for a single /metrics route.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveMessage records one dispatched message of the given direction
// ("request" or "event") and its wire size in bytes.
func (m *Metrics) ObserveMessage(direction string, bytes int) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(direction).Inc()
	m.bytesTotal.WithLabelValues(direction).Add(float64(bytes))
}

// ObserveError records a dispatch or codec error by its taxonomy kind
// e.g. "WrongObjectType", "NoClientObject".
func (m *Metrics) ObserveError(kind string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(kind).Inc()
}

// ObserveFdsQueued records n fds appended to an outbound queue.
func (m *Metrics) ObserveFdsQueued(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.fdsQueued.Add(float64(n))
}

// ObserveFdsFlushed records n fds that left the process on a completed
// sendmsg.
func (m *Metrics) ObserveFdsFlushed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.fdsFlushed.Add(float64(n))
}

// SetLiveObjects records the current size of one object table.
func (m *Metrics) SetLiveObjects(table string, n int) {
	if m == nil {
		return
	}
	m.liveObjects.WithLabelValues(table).Set(float64(n))
}

// SetClientsCurrent records the number of connected downstream clients.
func (m *Metrics) SetClientsCurrent(n int) {
	if m == nil {
		return
	}
	m.clientsCurrent.Set(float64(n))
}
