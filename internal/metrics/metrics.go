// Package metrics provides Prometheus observability for the enrollment and
// confirmation pipelines.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Enrollment and confirmation outcome labels.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidInput       = "invalid_input"
	OutcomePersistenceFailed  = "persistence_failed"
	OutcomeNotificationFailed = "notification_failed"
	OutcomeUnknownToken       = "unknown_token"
	OutcomeStoreFailed        = "store_failed"
)

// Metrics tracks enrollment/confirmation counts and email send latency.
type Metrics struct {
	Enrollments       *prometheus.CounterVec
	Confirmations     *prometheus.CounterVec
	EmailSendDuration prometheus.Histogram
}

// New registers all newsletter metrics with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh
// prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Enrollments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsletter_enrollments_total",
			Help: "Enrollment attempts by outcome",
		}, []string{"outcome"}),
		Confirmations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsletter_confirmations_total",
			Help: "Confirmation attempts by outcome",
		}, []string{"outcome"}),
		EmailSendDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsletter_email_send_duration_seconds",
			Help:    "Duration of confirmation email API calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// ObserveEnrollment records one enrollment attempt with the given outcome.
func (m *Metrics) ObserveEnrollment(outcome string) {
	m.Enrollments.WithLabelValues(outcome).Inc()
}

// ObserveConfirmation records one confirmation attempt with the given outcome.
func (m *Metrics) ObserveConfirmation(outcome string) {
	m.Confirmations.WithLabelValues(outcome).Inc()
}

// ObserveEmailSend records the duration of an email API call.
// Call with time.Now() captured at the start of the call.
func (m *Metrics) ObserveEmailSend(start time.Time) {
	m.EmailSendDuration.Observe(time.Since(start).Seconds())
}
