// Package prometheus registers and exposes the engine's operational metrics.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "exitready"

// Default histogram buckets.
var (
	DefaultHTTPDurationBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultAnalysisDurationBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30}
	DefaultGatewayDurationBuckets  = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}
)

// AppMetrics holds all application metrics.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Analysis engine
	AnalysesTotal      *prometheus.CounterVec // labels: source, outcome
	AnalysisDuration   *prometheus.HistogramVec
	ValidationFailures prometheus.Counter

	// Rate limiting
	RateLimitRejections *prometheus.CounterVec // label: backend

	// External scoring gateway
	GatewayRequestsTotal *prometheus.CounterVec // label: state
	GatewayDuration      prometheus.Histogram
	GatewayFallbacks     prometheus.Counter

	// Eventing
	EventsPublished *prometheus.CounterVec // label: status
}

// NewAppMetrics registers every metric with reg and returns the handle
// struct.  Passing a fresh registry keeps tests isolated from each other.
func NewAppMetrics(reg prometheus.Registerer) *AppMetrics {
	m := &AppMetrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   DefaultHTTPDurationBuckets,
		}, []string{"method", "path"}),

		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Completed analyses by scoring source and outcome.",
		}, []string{"source", "outcome"}),
		AnalysisDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "End-to-end analysis latency by scoring source.",
			Buckets:   DefaultAnalysisDurationBuckets,
		}, []string{"source"}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Profiles rejected by validation.",
		}),

		RateLimitRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejections_total",
			Help:      "Requests rejected by the rate limiter, by backend.",
		}, []string{"backend"}),

		GatewayRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_requests_total",
			Help:      "External scoring gateway requests by terminal state.",
		}, []string{"state"}),
		GatewayDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_request_duration_seconds",
			Help:      "External scoring gateway round-trip latency.",
			Buckets:   DefaultGatewayDurationBuckets,
		}),
		GatewayFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_fallbacks_total",
			Help:      "Analyses that fell back to local scoring after a gateway failure.",
		}),

		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Analysis-completed events published to the broker, by status.",
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AnalysesTotal,
		m.AnalysisDuration,
		m.ValidationFailures,
		m.RateLimitRejections,
		m.GatewayRequestsTotal,
		m.GatewayDuration,
		m.GatewayFallbacks,
		m.EventsPublished,
	)
	return m
}

// NewDefaultAppMetrics registers against the global default registry.
func NewDefaultAppMetrics() *AppMetrics {
	return NewAppMetrics(prometheus.DefaultRegisterer)
}
