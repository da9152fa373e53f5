package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlife-service/internal/domain/schedule"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CountForClassDateWithTx counts reservations for one class occurrence.
// Runs inside the booking transaction, after the class row is locked.
func (r *ReservationRepository) CountForClassDateWithTx(ctx context.Context, tx pgx.Tx, classID int64, date time.Time) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM reservations
		WHERE class_id = $1 AND reservation_date = $2
	`, classID, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}
	return count, nil
}

// ExistsWithTx reports whether the member already booked this occurrence.
func (r *ReservationRepository) ExistsWithTx(ctx context.Context, tx pgx.Tx, memberID, classID int64, date time.Time) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE member_id = $1 AND class_id = $2 AND reservation_date = $3
		)
	`, memberID, classID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reservation: %w", err)
	}
	return exists, nil
}

// CreateWithTx inserts the reservation. The unique constraint on
// (member_id, class_id, reservation_date) backstops the in-transaction
// duplicate check.
func (r *ReservationRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, res *schedule.Reservation) error {
	query := `
		INSERT INTO reservations (member_id, class_id, reservation_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query, res.MemberID, res.ClassID, res.ReservationDate).
		Scan(&res.ID, &res.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

// List retrieves reservations with optional class/date filters.
func (r *ReservationRepository) List(ctx context.Context, filters *schedule.ReservationListFilters) ([]schedule.Reservation, error) {
	query := `SELECT id, member_id, class_id, reservation_date, created_at FROM reservations WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filters != nil && filters.ClassID != 0 {
		query += fmt.Sprintf(" AND class_id = $%d", argPos)
		args = append(args, filters.ClassID)
		argPos++
	}
	if filters != nil && filters.Date != "" {
		query += fmt.Sprintf(" AND reservation_date = $%d", argPos)
		args = append(args, filters.Date)
		argPos++
	}

	query += " ORDER BY reservation_date DESC, id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	reservations := []schedule.Reservation{}
	for rows.Next() {
		var res schedule.Reservation
		if err := rows.Scan(&res.ID, &res.MemberID, &res.ClassID, &res.ReservationDate, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

// Delete cancels a booking.
func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
