// Package metrics exposes Prometheus counters and histograms for the
// records API and the outbound connector.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns a registry separate from the global default one.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	recordOutcomes      *prometheus.CounterVec

	outboundRequests *prometheus.CounterVec
	outboundDuration *prometheus.HistogramVec
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "recordkeeper",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by operation and status",
	}, []string{"method", "operation", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by operation",
		Buckets:   m.buckets,
	}, []string{"method", "operation"})

	m.recordOutcomes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "records",
		Name:      "outcomes_total",
		Help:      "Record service results by action and kind",
	}, []string{"action", "kind"})

	m.outboundRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "connector",
		Name:      "requests_total",
		Help:      "Outbound requests by method and outcome",
	}, []string{"method", "outcome"})

	m.outboundDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "connector",
		Name:      "request_duration_seconds",
		Help:      "Outbound request latency",
		Buckets:   m.buckets,
	}, []string{"method"})
}

// ObserveHTTP records one served request. operation is the route
// pattern, not the raw path, to keep cardinality bounded.
func (m *Manager) ObserveHTTP(method, operation string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, operation, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, operation).Observe(d.Seconds())
}

// ObserveRecord counts one record service result.
func (m *Manager) ObserveRecord(action, kind string) {
	m.recordOutcomes.WithLabelValues(action, kind).Inc()
}

// ObserveOutbound records one connector call.
func (m *Manager) ObserveOutbound(method, outcome string, d time.Duration) {
	m.outboundRequests.WithLabelValues(method, outcome).Inc()
	m.outboundDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the manager's registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
