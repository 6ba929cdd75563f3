package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metagym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metagym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metagym_gym_registrations_total",
			Help: "Total number of gym registration attempts by terminal outcome",
		},
		[]string{"outcome"},
	)

	RegistrationCompensationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metagym_gym_registration_compensations_total",
			Help: "Total number of compensating gym deletes by result",
		},
		[]string{"result"},
	)

	PostCommitTaskFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metagym_registration_post_commit_failures_total",
			Help: "Failures of best-effort post-commit registration tasks",
		},
		[]string{"task"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metagym_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "metagym_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRegistration(outcome string) {
	RegistrationsTotal.WithLabelValues(outcome).Inc()
}

func RecordCompensation(result string) {
	RegistrationCompensationsTotal.WithLabelValues(result).Inc()
}

func RecordPostCommitFailure(task string) {
	PostCommitTaskFailuresTotal.WithLabelValues(task).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
