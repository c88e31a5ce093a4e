// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application collectors.
type Metrics struct {
	CacheRequestsTotal       *prometheus.CounterVec
	CacheProducerErrorsTotal *prometheus.CounterVec
	HTTPRequestsTotal        *prometheus.CounterVec
	HTTPRequestDuration      *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CacheRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blog_cache_requests_total",
				Help: "Read-through cache lookups by key namespace and result (hit or miss).",
			},
			[]string{"namespace", "result"},
		),
		CacheProducerErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blog_cache_producer_errors_total",
				Help: "Failed producer calls on cache misses.",
			},
			[]string{"namespace"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blog_http_requests_total",
				Help: "HTTP requests by method, route pattern and status code.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blog_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route pattern.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	reg.MustRegister(
		m.CacheRequestsTotal,
		m.CacheProducerErrorsTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// Hit records a cache hit.
func (m *Metrics) Hit(namespace string) {
	m.CacheRequestsTotal.WithLabelValues(namespace, "hit").Inc()
}

// Miss records a cache miss.
func (m *Metrics) Miss(namespace string) {
	m.CacheRequestsTotal.WithLabelValues(namespace, "miss").Inc()
}

// ProducerError records a failed producer call.
func (m *Metrics) ProducerError(namespace string) {
	m.CacheProducerErrorsTotal.WithLabelValues(namespace).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the collectors gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
