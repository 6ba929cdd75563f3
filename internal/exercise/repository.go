package exercise

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repository interface {
	Create(ctx context.Context, tenantID int, req CreateExerciseRequest) (*Exercise, error)
	GetByID(ctx context.Context, tenantID, id int) (*Exercise, error)
	List(ctx context.Context, tenantID int) ([]Exercise, error)
	Update(ctx context.Context, tenantID, id int, req UpdateExerciseRequest) (*Exercise, error)
	Delete(ctx context.Context, tenantID, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tenantID int, req CreateExerciseRequest) (*Exercise, error) {
	query := `
		INSERT INTO exercises (tenant_id, name, main_muscle, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, tenant_id, name, main_muscle, category_id, created_at
	`

	var ex Exercise
	err := r.db.GetContext(ctx, &ex, query, tenantID, req.Name, req.MainMuscle, req.CategoryID)
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

func (r *repository) GetByID(ctx context.Context, tenantID, id int) (*Exercise, error) {
	query := `
		SELECT id, tenant_id, name, main_muscle, category_id, created_at
		FROM exercises
		WHERE id = $1 AND tenant_id = $2
	`

	var ex Exercise
	err := r.db.GetContext(ctx, &ex, query, id, tenantID)
	if err == sql.ErrNoRows {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

func (r *repository) List(ctx context.Context, tenantID int) ([]Exercise, error) {
	query := `
		SELECT id, tenant_id, name, main_muscle, category_id, created_at
		FROM exercises
		WHERE tenant_id = $1
		ORDER BY name
	`

	exercises := []Exercise{}
	err := r.db.SelectContext(ctx, &exercises, query, tenantID)
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *repository) Update(ctx context.Context, tenantID, id int, req UpdateExerciseRequest) (*Exercise, error) {
	query := `
		UPDATE exercises
		SET name = COALESCE($3, name),
		    main_muscle = COALESCE($4, main_muscle),
		    category_id = COALESCE($5, category_id)
		WHERE id = $1 AND tenant_id = $2
		RETURNING id, tenant_id, name, main_muscle, category_id, created_at
	`

	var ex Exercise
	err := r.db.GetContext(ctx, &ex, query, id, tenantID, req.Name, req.MainMuscle, req.CategoryID)
	if err == sql.ErrNoRows {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

func (r *repository) Delete(ctx context.Context, tenantID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrExerciseNotFound
	}
	return nil
}
