// Package metrics holds the Prometheus collectors exported by the library
// server on /metrics.
package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, route, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "library_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// RequestTotal counts HTTP requests by method, route, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// AuthEventsTotal counts identity events (register, login, resolve) by outcome.
	AuthEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_auth_events_total",
			Help: "Total number of identity events by outcome",
		},
		[]string{"event", "outcome"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default Prometheus registry.
// Calling it more than once is safe.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, AuthEventsTotal)
	})
}

// RecordRequest records duration and count for a finished HTTP request.
// route should be the matched route pattern, not the raw path, to keep
// label cardinality bounded.
func RecordRequest(method, route string, statusCode int, durationSeconds float64) {
	if route == "" {
		route = "unmatched"
	}
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, route, status).Inc()
}

// RecordAuthEvent increments the identity event counter.
func RecordAuthEvent(event, outcome string) {
	AuthEventsTotal.WithLabelValues(event, outcome).Inc()
}
