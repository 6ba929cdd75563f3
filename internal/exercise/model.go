package exercise

import "time"

// Exercise is a movement in the gym's catalog, grouped by the muscle it
// mainly targets and an optional category.
type Exercise struct {
	ID         int       `db:"id" json:"id"`
	TenantID   int       `db:"tenant_id" json:"tenant_id"`
	Name       string    `db:"name" json:"name"`
	MainMuscle string    `db:"main_muscle" json:"main_muscle"`
	CategoryID *int      `db:"category_id" json:"category_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type CreateExerciseRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	MainMuscle string `json:"main_muscle" binding:"required"`
	CategoryID *int   `json:"category_id"`
}

type UpdateExerciseRequest struct {
	Name       *string `json:"name"`
	MainMuscle *string `json:"main_muscle"`
	CategoryID *int    `json:"category_id"`
}
