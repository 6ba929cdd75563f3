package routine

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrRoutineNotFound = errors.New("routine not found")

type Repository interface {
	Create(ctx context.Context, tenantID int, req CreateRoutineRequest) (*RoutineWithExercises, error)
	GetByID(ctx context.Context, tenantID, id int) (*RoutineWithExercises, error)
	List(ctx context.Context, tenantID int) ([]RoutineWithExercises, error)
	Update(ctx context.Context, tenantID, id int, req UpdateRoutineRequest) (*RoutineWithExercises, error)
	Delete(ctx context.Context, tenantID, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tenantID int, req CreateRoutineRequest) (*RoutineWithExercises, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO routines (tenant_id, name, description, level)
		VALUES ($1, $2, $3, $4)
		RETURNING id, tenant_id, name, description, level, created_at
	`

	var rt Routine
	if err := tx.GetContext(ctx, &rt, query, tenantID, req.Name, req.Description, req.Level); err != nil {
		return nil, err
	}

	if err := insertExercises(ctx, tx, rt.ID, req.Exercises); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, tenantID, rt.ID)
}

func insertExercises(ctx context.Context, tx *sqlx.Tx, routineID int, slots []ExerciseSlot) error {
	query := `
		INSERT INTO routine_exercises (routine_id, exercise_id, sets, reps, position)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i, slot := range slots {
		if _, err := tx.ExecContext(ctx, query, routineID, slot.ExerciseID, slot.Sets, slot.Reps, i+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, tenantID, id int) (*RoutineWithExercises, error) {
	query := `
		SELECT id, tenant_id, name, description, level, created_at
		FROM routines
		WHERE id = $1 AND tenant_id = $2
	`

	var rt Routine
	err := r.db.GetContext(ctx, &rt, query, id, tenantID)
	if err == sql.ErrNoRows {
		return nil, ErrRoutineNotFound
	}
	if err != nil {
		return nil, err
	}

	exercises, err := r.exercisesFor(ctx, rt.ID)
	if err != nil {
		return nil, err
	}

	return &RoutineWithExercises{Routine: rt, Exercises: exercises}, nil
}

func (r *repository) exercisesFor(ctx context.Context, routineID int) ([]RoutineExercise, error) {
	query := `
		SELECT re.routine_id, re.exercise_id, e.name AS exercise_name, e.main_muscle,
		       re.sets, re.reps, re.position
		FROM routine_exercises re
		JOIN exercises e ON e.id = re.exercise_id
		WHERE re.routine_id = $1
		ORDER BY re.position
	`

	exercises := []RoutineExercise{}
	if err := r.db.SelectContext(ctx, &exercises, query, routineID); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *repository) List(ctx context.Context, tenantID int) ([]RoutineWithExercises, error) {
	query := `
		SELECT id, tenant_id, name, description, level, created_at
		FROM routines
		WHERE tenant_id = $1
		ORDER BY name
	`

	routines := []Routine{}
	if err := r.db.SelectContext(ctx, &routines, query, tenantID); err != nil {
		return nil, err
	}

	out := make([]RoutineWithExercises, 0, len(routines))
	for _, rt := range routines {
		exercises, err := r.exercisesFor(ctx, rt.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, RoutineWithExercises{Routine: rt, Exercises: exercises})
	}
	return out, nil
}

func (r *repository) Update(ctx context.Context, tenantID, id int, req UpdateRoutineRequest) (*RoutineWithExercises, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		UPDATE routines
		SET name = COALESCE($3, name),
		    description = COALESCE($4, description),
		    level = COALESCE($5, level)
		WHERE id = $1 AND tenant_id = $2
		RETURNING id, tenant_id, name, description, level, created_at
	`

	var rt Routine
	err = tx.GetContext(ctx, &rt, query, id, tenantID, req.Name, req.Description, req.Level)
	if err == sql.ErrNoRows {
		return nil, ErrRoutineNotFound
	}
	if err != nil {
		return nil, err
	}

	// A nil slice leaves the exercise slots alone; a non-nil slice replaces
	// them wholesale, empty included.
	if req.Exercises != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM routine_exercises WHERE routine_id = $1`, rt.ID); err != nil {
			return nil, err
		}
		if err := insertExercises(ctx, tx, rt.ID, req.Exercises); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, tenantID, rt.ID)
}

func (r *repository) Delete(ctx context.Context, tenantID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM routines WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRoutineNotFound
	}
	return nil
}
