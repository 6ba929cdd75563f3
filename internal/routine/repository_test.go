package routine

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

func routineColumns() []string {
	return []string{"id", "tenant_id", "name", "description", "level", "created_at"}
}

func routineExerciseColumns() []string {
	return []string{"routine_id", "exercise_id", "exercise_name", "main_muscle", "sets", "reps", "position"}
}

func TestCreateRoutine(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO routines`).
		WithArgs(1, "Push Day", "Chest and triceps", "beginner").
		WillReturnRows(sqlmock.NewRows(routineColumns()).
			AddRow(1, 1, "Push Day", "Chest and triceps", "beginner", time.Now()))
	mock.ExpectExec(`INSERT INTO routine_exercises`).
		WithArgs(1, 10, 3, 12, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO routine_exercises`).
		WithArgs(1, 11, 4, 8, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT (.+) FROM routines`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows(routineColumns()).
			AddRow(1, 1, "Push Day", "Chest and triceps", "beginner", time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM routine_exercises`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(routineExerciseColumns()).
			AddRow(1, 10, "Bench Press", "chest", 3, 12, 1).
			AddRow(1, 11, "Dips", "triceps", 4, 8, 2))

	rt, err := repo.Create(ctx, 1, CreateRoutineRequest{
		Name:        "Push Day",
		Description: "Chest and triceps",
		Level:       "beginner",
		Exercises: []ExerciseSlot{
			{ExerciseID: 10, Sets: 3, Reps: 12},
			{ExerciseID: 11, Sets: 4, Reps: 8},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Push Day", rt.Name)
	require.Len(t, rt.Exercises, 2)
	assert.Equal(t, 1, rt.Exercises[0].Position)
	assert.Equal(t, "Dips", rt.Exercises[1].ExerciseName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRoutineRollsBackOnSlotFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO routines`).
		WithArgs(1, "Push Day", "", "beginner").
		WillReturnRows(sqlmock.NewRows(routineColumns()).
			AddRow(1, 1, "Push Day", "", "beginner", time.Now()))
	mock.ExpectExec(`INSERT INTO routine_exercises`).
		WithArgs(1, 10, 3, 12, 1).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := repo.Create(ctx, 1, CreateRoutineRequest{
		Name:      "Push Day",
		Level:     "beginner",
		Exercises: []ExerciseSlot{{ExerciseID: 10, Sets: 3, Reps: 12}},
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoutineNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM routines`).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows(routineColumns()))

	_, err := repo.GetByID(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrRoutineNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRoutines(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM routines`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(routineColumns()).
			AddRow(1, 1, "Push Day", "", "beginner", time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM routine_exercises`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(routineExerciseColumns()).
			AddRow(1, 10, "Bench Press", "chest", 3, 12, 1))

	routines, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, routines, 1)
	assert.Len(t, routines[0].Exercises, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoutineReplacesSlots(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	level := "advanced"
	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE routines`).
		WithArgs(1, 1, nil, nil, &level).
		WillReturnRows(sqlmock.NewRows(routineColumns()).
			AddRow(1, 1, "Push Day", "", "advanced", time.Now()))
	mock.ExpectExec(`DELETE FROM routine_exercises`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO routine_exercises`).
		WithArgs(1, 12, 5, 5, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT (.+) FROM routines`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows(routineColumns()).
			AddRow(1, 1, "Push Day", "", "advanced", time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM routine_exercises`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(routineExerciseColumns()).
			AddRow(1, 12, "Overhead Press", "shoulders", 5, 5, 1))

	rt, err := repo.Update(ctx, 1, 1, UpdateRoutineRequest{
		Level:     &level,
		Exercises: []ExerciseSlot{{ExerciseID: 12, Sets: 5, Reps: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "advanced", rt.Level)
	require.Len(t, rt.Exercises, 1)
	assert.Equal(t, "Overhead Press", rt.Exercises[0].ExerciseName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoutineNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM routines`).
		WithArgs(99, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrRoutineNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
