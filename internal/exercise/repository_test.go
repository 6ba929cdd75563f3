package exercise

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func exerciseColumns() []string {
	return []string{"id", "tenant_id", "name", "main_muscle", "category_id", "created_at"}
}

func TestCreateExercise(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO exercises`).
		WithArgs(1, "Bench Press", "chest", nil).
		WillReturnRows(sqlmock.NewRows(exerciseColumns()).
			AddRow(1, 1, "Bench Press", "chest", nil, time.Now()))

	ex, err := repo.Create(ctx, 1, CreateExerciseRequest{Name: "Bench Press", MainMuscle: "chest"})
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", ex.Name)
	assert.Equal(t, "chest", ex.MainMuscle)
	assert.Nil(t, ex.CategoryID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExerciseNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM exercises`).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows(exerciseColumns()))

	_, err := repo.GetByID(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListExercises(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	catID := 3
	mock.ExpectQuery(`SELECT (.+) FROM exercises`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(exerciseColumns()).
			AddRow(1, 1, "Bench Press", "chest", nil, time.Now()).
			AddRow(2, 1, "Squat", "legs", catID, time.Now()))

	exercises, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "Squat", exercises[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateExercise(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	name := "Incline Bench Press"
	mock.ExpectQuery(`UPDATE exercises`).
		WithArgs(1, 1, &name, nil, nil).
		WillReturnRows(sqlmock.NewRows(exerciseColumns()).
			AddRow(1, 1, "Incline Bench Press", "chest", nil, time.Now()))

	ex, err := repo.Update(ctx, 1, 1, UpdateExerciseRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Incline Bench Press", ex.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExercise(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM exercises`).
		WithArgs(1, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, 1, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExerciseNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM exercises`).
		WithArgs(99, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
