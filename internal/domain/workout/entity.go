package workout

import (
	"database/sql"
	"time"
)

type Exercise struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	MuscleGroup string         `json:"muscle_group" db:"muscle_group"`
	Equipment   sql.NullString `json:"equipment,omitempty" db:"equipment"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}

type Workout struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description sql.NullString `json:"description,omitempty" db:"description"`
	MemberID    sql.NullInt64  `json:"member_id,omitempty" db:"member_id"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`

	Exercises []WorkoutExercise `json:"exercises,omitempty"`
}

// WorkoutExercise orders one exercise inside a workout plan.
type WorkoutExercise struct {
	ID         int64  `json:"id" db:"id"`
	WorkoutID  int64  `json:"workout_id" db:"workout_id"`
	ExerciseID int64  `json:"exercise_id" db:"exercise_id"`
	Position   int    `json:"position" db:"position"`
	Sets       int    `json:"sets" db:"sets"`
	Reps       string `json:"reps" db:"reps"`

	ExerciseName string `json:"exercise_name,omitempty" db:"exercise_name"`
}
