package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlife-service/internal/domain/schedule"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClassRepository struct {
	db *pgxpool.Pool
}

func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

const classColumns = `id, name, instructor, weekday, start_time, duration_minutes, max_participants, is_active, created_at, updated_at`

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *schedule.GymClass) error {
	query := `
		INSERT INTO classes (name, instructor, weekday, start_time, duration_minutes, max_participants, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		c.Name, c.Instructor, c.Weekday, c.StartTime,
		c.DurationMinutes, c.MaxParticipants, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}

	return nil
}

// FindByID retrieves a class by ID.
func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*schedule.GymClass, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`
	return r.scanClass(r.db.QueryRow(ctx, query, id))
}

// FindByIDForUpdate locks the class row for the duration of the reservation
// transaction so concurrent bookings for the last seat serialize.
func (r *ClassRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*schedule.GymClass, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1 FOR UPDATE`
	return r.scanClass(tx.QueryRow(ctx, query, id))
}

func (r *ClassRepository) scanClass(row pgx.Row) (*schedule.GymClass, error) {
	var c schedule.GymClass
	err := row.Scan(
		&c.ID, &c.Name, &c.Instructor, &c.Weekday, &c.StartTime,
		&c.DurationMinutes, &c.MaxParticipants, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan class: %w", err)
	}
	return &c, nil
}

// List retrieves all classes.
func (r *ClassRepository) List(ctx context.Context) ([]schedule.GymClass, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY weekday, start_time`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	defer rows.Close()

	classes := []schedule.GymClass{}
	for rows.Next() {
		var c schedule.GymClass
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Instructor, &c.Weekday, &c.StartTime,
			&c.DurationMinutes, &c.MaxParticipants, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, c)
	}

	return classes, rows.Err()
}

// Update mutates the editable class fields.
func (r *ClassRepository) Update(ctx context.Context, id int64, c *schedule.GymClass) error {
	query := `
		UPDATE classes
		SET name = $1, instructor = $2, weekday = $3, start_time = $4,
		    duration_minutes = $5, max_participants = $6, is_active = $7, updated_at = $8
		WHERE id = $9
	`

	result, err := r.db.Exec(ctx, query,
		c.Name, c.Instructor, c.Weekday, c.StartTime,
		c.DurationMinutes, c.MaxParticipants, c.IsActive, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
