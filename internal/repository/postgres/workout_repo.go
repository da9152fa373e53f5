package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlife-service/internal/domain/workout"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkoutRepository struct {
	db *pgxpool.Pool
}

func NewWorkoutRepository(db *pgxpool.Pool) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create inserts a workout plan.
func (r *WorkoutRepository) Create(ctx context.Context, w *workout.Workout) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO workouts (name, description, member_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, w.Name, w.Description, w.MemberID).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

// FindByID retrieves a workout with its ordered exercises.
func (r *WorkoutRepository) FindByID(ctx context.Context, id int64) (*workout.Workout, error) {
	var w workout.Workout
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, member_id, created_at, updated_at
		FROM workouts WHERE id = $1
	`, id).Scan(&w.ID, &w.Name, &w.Description, &w.MemberID, &w.CreatedAt, &w.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find workout: %w", err)
	}

	exercises, err := r.listExercises(ctx, id)
	if err != nil {
		return nil, err
	}
	w.Exercises = exercises

	return &w, nil
}

// List retrieves all workouts, optionally for one member.
func (r *WorkoutRepository) List(ctx context.Context, memberID int64) ([]workout.Workout, error) {
	query := `SELECT id, name, description, member_id, created_at, updated_at FROM workouts`
	args := []interface{}{}
	if memberID != 0 {
		query += ` WHERE member_id = $1`
		args = append(args, memberID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	workouts := []workout.Workout{}
	for rows.Next() {
		var w workout.Workout
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.MemberID, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

// Update mutates the editable workout fields.
func (r *WorkoutRepository) Update(ctx context.Context, id int64, w *workout.Workout) error {
	result, err := r.db.Exec(ctx, `
		UPDATE workouts
		SET name = $1, description = $2, member_id = $3, updated_at = $4
		WHERE id = $5
	`, w.Name, w.Description, w.MemberID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes a workout and, via ON DELETE CASCADE, its exercise rows.
func (r *WorkoutRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// AttachExercise adds one exercise to a workout.
func (r *WorkoutRepository) AttachExercise(ctx context.Context, we *workout.WorkoutExercise) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO workout_exercises (workout_id, exercise_id, position, sets, reps)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, we.WorkoutID, we.ExerciseID, we.Position, we.Sets, we.Reps).Scan(&we.ID)
	if err != nil {
		return fmt.Errorf("failed to attach exercise: %w", err)
	}
	return nil
}

// DetachExercise removes one exercise row from a workout.
func (r *WorkoutRepository) DetachExercise(ctx context.Context, workoutID, workoutExerciseID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM workout_exercises WHERE id = $1 AND workout_id = $2`,
		workoutExerciseID, workoutID,
	)
	if err != nil {
		return fmt.Errorf("failed to detach exercise: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *WorkoutRepository) listExercises(ctx context.Context, workoutID int64) ([]workout.WorkoutExercise, error) {
	rows, err := r.db.Query(ctx, `
		SELECT we.id, we.workout_id, we.exercise_id, we.position, we.sets, we.reps, e.name
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = $1
		ORDER BY we.position
	`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout exercises: %w", err)
	}
	defer rows.Close()

	exercises := []workout.WorkoutExercise{}
	for rows.Next() {
		var we workout.WorkoutExercise
		if err := rows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Position, &we.Sets, &we.Reps, &we.ExerciseName); err != nil {
			return nil, fmt.Errorf("failed to scan workout exercise: %w", err)
		}
		exercises = append(exercises, we)
	}

	return exercises, rows.Err()
}
