package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all Prometheus metrics for the dashboard process.
type Registry struct {
	// Dashboard HTTP surface
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Calls to the remote backend API
	BackendCallsTotal   *prometheus.CounterVec
	BackendCallDuration *prometheus.HistogramVec

	// Sessions
	SessionsActive prometheus.Gauge
	LoginsTotal    *prometheus.CounterVec
}

// NewRegistry initializes and returns a new Registry with all metrics
// registered on the default gatherer.
func NewRegistry() *Registry {
	return &Registry{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_http_requests_total",
				Help: "Total HTTP requests served by route, method, and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"route", "method"},
		),
		BackendCallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_backend_calls_total",
				Help: "Total calls made to the remote dashboard API",
			},
			[]string{"method", "path", "status_code"},
		),
		BackendCallDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_backend_call_duration_seconds",
				Help:    "Remote API call latency distribution in seconds",
				Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_sessions_active",
				Help: "Operator sessions currently live on this instance",
			},
		),
		LoginsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_logins_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// ObserveBackendCall records one remote API call. Wired into the shared
// client as its Observer.
func (r *Registry) ObserveBackendCall(method, path string, status int, duration time.Duration) {
	code := statusLabel(status)
	r.BackendCallsTotal.WithLabelValues(method, path, code).Inc()
	r.BackendCallDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status == 0:
		return "transport_error"
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return "other"
	}
}
