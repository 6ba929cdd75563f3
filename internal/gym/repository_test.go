package gym

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dbx := sqlx.NewDb(db, "sqlmock")
	return NewRepository(dbx), mock, func() { db.Close() }
}

func gymRows(t *testing.T, gyms ...Gym) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "tenant_id", "name", "slug", "address", "email", "theme", "logo_url", "schedule", "created_at"})
	for _, g := range gyms {
		scheduleJSON, err := json.Marshal(g.Schedule)
		require.NoError(t, err)
		rows.AddRow(g.ID, g.TenantID, g.Name, g.Slug, g.Address, g.Email, string(g.Theme), g.LogoURL, scheduleJSON, g.CreatedAt)
	}
	return rows
}

func TestRepository_Create(t *testing.T) {
	repo, mock, cleanup := newTestRepo(t)
	defer cleanup()

	schedule := DefaultSchedule()
	mock.ExpectQuery(`INSERT INTO gyms.*`).
		WithArgs(1, "Fit Center", "FIT01", "123 Main St, Springfield", "a@b.com", "blue", "", sqlmock.AnyArg()).
		WillReturnRows(gymRows(t, Gym{
			ID: 10, TenantID: 1, Name: "Fit Center", Slug: "FIT01",
			Address: "123 Main St, Springfield", Email: "a@b.com",
			Theme: ThemeBlue, Schedule: schedule, CreatedAt: time.Now(),
		}))

	gym, err := repo.Create(context.Background(), CreateGymParams{
		TenantID: 1,
		Name:     "Fit Center",
		Slug:     "FIT01",
		Address:  "123 Main St, Springfield",
		Email:    "a@b.com",
		Theme:    ThemeBlue,
		Schedule: schedule,
	})

	require.NoError(t, err)
	assert.Equal(t, 10, gym.ID)
	assert.Equal(t, "FIT01", gym.Slug)
	assert.Len(t, gym.Schedule, 7)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateSlug(t *testing.T) {
	repo, mock, cleanup := newTestRepo(t)
	defer cleanup()

	mock.ExpectQuery(`INSERT INTO gyms.*`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "gyms_slug_key"})

	gym, err := repo.Create(context.Background(), CreateGymParams{
		TenantID: 1, Name: "Fit Center", Slug: "FIT01", Theme: ThemeBlue,
	})

	assert.Nil(t, gym)
	assert.ErrorIs(t, err, ErrDuplicateCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := newTestRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM gyms WHERE id = \$1`).
		WithArgs(10).
		WillReturnRows(gymRows(t, Gym{ID: 10, TenantID: 1, Name: "Fit Center", Slug: "FIT01", Theme: ThemeBlue, Schedule: DefaultSchedule()}))

	gym, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Fit Center", gym.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := newTestRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM gyms WHERE id = \$1`).
		WithArgs(999).
		WillReturnRows(gymRows(t))

	gym, err := repo.GetByID(context.Background(), 999)
	assert.Nil(t, gym)
	assert.ErrorIs(t, err, ErrGymNotFound)
}

func TestRepository_GetBySlug(t *testing.T) {
	repo, mock, cleanup := newTestRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM gyms WHERE slug = \$1`).
		WithArgs("FIT01").
		WillReturnRows(gymRows(t, Gym{ID: 10, Slug: "FIT01", Theme: ThemeBlue, Schedule: DefaultSchedule()}))

	gym, err := repo.GetBySlug(context.Background(), "FIT01")
	require.NoError(t, err)
	assert.Equal(t, 10, gym.ID)
}

func TestRepository_List(t *testing.T) {
	repo, mock, cleanup := newTestRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM gyms WHERE tenant_id = \$1`).
		WithArgs(1).
		WillReturnRows(gymRows(t,
			Gym{ID: 1, TenantID: 1, Name: "Alpha Gym", Slug: "ALPHA", Theme: ThemeBlue, Schedule: DefaultSchedule()},
			Gym{ID: 2, TenantID: 1, Name: "Beta Gym", Slug: "BETA", Theme: ThemeRed, Schedule: DefaultSchedule()},
		))

	gyms, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, gyms, 2)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, cleanup := newTestRepo(t)
	defer cleanup()

	mock.ExpectExec(`DELETE FROM gyms WHERE id = \$1`).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 10)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock, cleanup := newTestRepo(t)
	defer cleanup()

	mock.ExpectExec(`DELETE FROM gyms WHERE id = \$1`).
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrGymNotFound)
}
