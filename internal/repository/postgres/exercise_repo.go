package postgres

import (
	"context"
	"errors"
	"fmt"

	"fitlife-service/internal/domain/workout"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExerciseRepository struct {
	db *pgxpool.Pool
}

func NewExerciseRepository(db *pgxpool.Pool) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// Create inserts an exercise into the catalog.
func (r *ExerciseRepository) Create(ctx context.Context, e *workout.Exercise) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO exercises (name, muscle_group, equipment)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, e.Name, e.MuscleGroup, e.Equipment).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

// FindByID retrieves an exercise by ID.
func (r *ExerciseRepository) FindByID(ctx context.Context, id int64) (*workout.Exercise, error) {
	var e workout.Exercise
	err := r.db.QueryRow(ctx, `
		SELECT id, name, muscle_group, equipment, created_at
		FROM exercises WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.Equipment, &e.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find exercise: %w", err)
	}

	return &e, nil
}

// List retrieves the exercise catalog.
func (r *ExerciseRepository) List(ctx context.Context) ([]workout.Exercise, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, muscle_group, equipment, created_at
		FROM exercises ORDER BY muscle_group, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []workout.Exercise{}
	for rows.Next() {
		var e workout.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.Equipment, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}

	return exercises, rows.Err()
}

// Delete removes an exercise from the catalog.
func (r *ExerciseRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
