package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/gyms", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/gyms", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordRegistration(t *testing.T) {
	RegistrationsTotal.Reset()

	RecordRegistration("succeeded")
	RecordRegistration("succeeded")
	RecordRegistration("failed")

	succeeded := testutil.ToFloat64(RegistrationsTotal.WithLabelValues("succeeded"))
	failed := testutil.ToFloat64(RegistrationsTotal.WithLabelValues("failed"))

	assert.Equal(t, float64(2), succeeded)
	assert.Equal(t, float64(1), failed)
}

func TestRecordCompensation(t *testing.T) {
	RegistrationCompensationsTotal.Reset()

	RecordCompensation("ok")
	RecordCompensation("failed")

	assert.Equal(t, float64(1), testutil.ToFloat64(RegistrationCompensationsTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(RegistrationCompensationsTotal.WithLabelValues("failed")))
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("welcome", "queued")

	count := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("welcome", "queued"))
	assert.Equal(t, float64(1), count)
}
