package routine

import "time"

// Routine is an ordered workout plan built from catalog exercises.
type Routine struct {
	ID          int       `db:"id" json:"id"`
	TenantID    int       `db:"tenant_id" json:"tenant_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Level       string    `db:"level" json:"level"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// RoutineExercise is one exercise slot inside a routine. Position fixes the
// order the slots are performed in.
type RoutineExercise struct {
	RoutineID    int    `db:"routine_id" json:"routine_id"`
	ExerciseID   int    `db:"exercise_id" json:"exercise_id"`
	ExerciseName string `db:"exercise_name" json:"exercise_name"`
	MainMuscle   string `db:"main_muscle" json:"main_muscle"`
	Sets         int    `db:"sets" json:"sets"`
	Reps         int    `db:"reps" json:"reps"`
	Position     int    `db:"position" json:"position"`
}

// RoutineWithExercises is a routine together with its ordered exercise slots.
type RoutineWithExercises struct {
	Routine
	Exercises []RoutineExercise `json:"exercises"`
}

type ExerciseSlot struct {
	ExerciseID int `json:"exercise_id" binding:"required"`
	Sets       int `json:"sets" binding:"required,min=1"`
	Reps       int `json:"reps" binding:"required,min=1"`
}

type CreateRoutineRequest struct {
	Name        string         `json:"name" binding:"required,min=2,max=100"`
	Description string         `json:"description"`
	Level       string         `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	Exercises   []ExerciseSlot `json:"exercises"`
}

type UpdateRoutineRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Level       *string        `json:"level"`
	Exercises   []ExerciseSlot `json:"exercises"`
}
