package email

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(rdb *redis.Client) *Service {
	return &Service{
		redis:    rdb,
		from:     "noreply@metagym.com",
		fromName: "Meta Gym",
		smtpHost: "smtp.test.com",
		smtpPort: "587",
		smtpUser: "test@example.com",
		smtpPass: "password",
	}
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush("emails", `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.Send(ctx, "user@example.com", "User", "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// captureQueuedPayload expects one LPUSH on the emails queue and returns a
// pointer holding the pushed job payload once the command runs. The command
// arguments arrive as ["lpush", "emails", payload], so the payload is the
// last element, not the first.
func captureQueuedPayload(mock redismock.ClientMock) *string {
	captured := new(string)
	mock.CustomMatch(func(expected, actual []interface{}) error {
		switch v := actual[len(actual)-1].(type) {
		case []byte:
			*captured = string(v)
		case string:
			*captured = v
		}
		return nil
	}).ExpectLPush("emails", `.*`).SetVal(1)
	return captured
}

func TestSendWelcomeEmail(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	captured := captureQueuedPayload(mock)

	svc := newTestService(db)

	err := svc.SendWelcomeEmail(ctx, "admin@example.com", "Iron Temple", "Xy7!pQ2#mL9z", "https://app.metagym.com/login")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	var job EmailJob
	require.NoError(t, json.Unmarshal([]byte(*captured), &job))
	assert.Equal(t, "admin@example.com", job.To)
	assert.Equal(t, "welcome", job.Type)
	assert.True(t, strings.Contains(job.Body, "Iron Temple"))
	assert.True(t, strings.Contains(job.Body, "Xy7!pQ2#mL9z"))
	assert.True(t, strings.Contains(job.Body, "https://app.metagym.com/login"))
}

func TestSendPasswordReset(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	captured := captureQueuedPayload(mock)

	svc := newTestService(db)

	err := svc.SendPasswordReset(ctx, "user@example.com", "https://app.metagym.com/reset?token=abc")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	var job EmailJob
	require.NoError(t, json.Unmarshal([]byte(*captured), &job))
	assert.Equal(t, "user@example.com", job.To)
	assert.Equal(t, "password_reset", job.Type)
	assert.True(t, strings.Contains(job.Body, "https://app.metagym.com/reset?token=abc"))
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen("emails").SetVal(5)

	svc := newTestService(db)

	length := svc.QueueLength(ctx)
	assert.Equal(t, int64(5), length)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLengthZero(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen("emails").SetVal(0)

	svc := newTestService(db)

	length := svc.QueueLength(ctx)
	assert.Equal(t, int64(0), length)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush("emails", `.*`).SetErr(assert.AnError)

	svc := newTestService(db)

	err := svc.Send(ctx, "user@example.com", "User", "Hello", "Test body")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
