package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	MessagesCreated   *prometheus.CounterVec
	MessagesDeleted   prometheus.Counter
	MessagesMarked    prometheus.Counter
	AuthRejections    *prometheus.CounterVec
	BookingEvents     *prometheus.CounterVec
	EventPublishFails prometheus.Counter

	// Validation Metrics
	ValidationErrors *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messaging_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "messaging_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "messaging_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		MessagesCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messaging_messages_created_total",
				Help: "Total number of messages stored",
			},
			[]string{"source"},
		),
		MessagesDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "messaging_messages_deleted_total",
				Help: "Total number of messages deleted",
			},
		),
		MessagesMarked: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "messaging_messages_marked_read_total",
				Help: "Total number of messages marked as read",
			},
		),
		AuthRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messaging_auth_rejections_total",
				Help: "Total number of mutations rejected by the auth service",
			},
			[]string{"operation"},
		),
		BookingEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messaging_booking_events_total",
				Help: "Total number of booking events consumed",
			},
			[]string{"status"},
		),
		EventPublishFails: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "messaging_event_publish_failures_total",
				Help: "Total number of message events that could not be published",
			},
		),
		ValidationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messaging_validation_errors_total",
				Help: "Total number of validation errors",
			},
			[]string{"field", "tag"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordMessageCreated(source string) {
	m.MessagesCreated.WithLabelValues(source).Inc()
}

func (m *Metrics) RecordMessageDeleted() {
	m.MessagesDeleted.Inc()
}

func (m *Metrics) RecordMessageMarkedRead() {
	m.MessagesMarked.Inc()
}

func (m *Metrics) RecordAuthRejection(operation string) {
	m.AuthRejections.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordBookingEvent(status string) {
	m.BookingEvents.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordPublishFailure() {
	m.EventPublishFails.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}
