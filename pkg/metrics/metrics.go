package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry is served on /metrics. Go runtime and process collectors are registered on it.
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	// Buckets span fast renders up to the 30s outbound timeout
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Zendesk client metrics
	ZendeskRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zendesk_client_request_duration_seconds",
			Help:    "Zendesk API request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"status"},
	)

	ZendeskRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zendesk_client_request_total",
			Help: "Total number of Zendesk API requests",
		},
		[]string{"status"},
	)

	// Business Metrics
	FeedbackSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submissions_total",
			Help: "Total number of feedback form submissions by outcome",
		},
		[]string{"status"}, // "success", "invalid", "api_error", "transport_error"
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
