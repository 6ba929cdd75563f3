package audit

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

const StatusCompleted = "completed"

// RegistrationRequest is an audit row recording a finished gym registration.
// Writing it is best-effort: the registration is already functionally
// complete by the time this row is attempted.
type RegistrationRequest struct {
	ID        int       `db:"id" json:"id"`
	GymName   string    `db:"gym_name" json:"gym_name"`
	Email     string    `db:"email" json:"email"`
	TenantID  int       `db:"tenant_id" json:"tenant_id"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Repository interface {
	RecordRegistration(ctx context.Context, gymName, email string, tenantID int) error
	ListRegistrations(ctx context.Context, tenantID int) ([]RegistrationRequest, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RecordRegistration(ctx context.Context, gymName, email string, tenantID int) error {
	query := `
		INSERT INTO registration_requests (gym_name, email, tenant_id, status)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, gymName, email, tenantID, StatusCompleted)
	return err
}

func (r *repository) ListRegistrations(ctx context.Context, tenantID int) ([]RegistrationRequest, error) {
	query := `
		SELECT id, gym_name, email, tenant_id, status, created_at
		FROM registration_requests
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`

	var requests []RegistrationRequest
	err := r.db.SelectContext(ctx, &requests, query, tenantID)
	if err != nil {
		return nil, err
	}

	return requests, nil
}
