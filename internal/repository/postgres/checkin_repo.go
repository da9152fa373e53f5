package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlife-service/internal/domain/checkin"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CheckinRepository struct {
	db *pgxpool.Pool
}

func NewCheckinRepository(db *pgxpool.Pool) *CheckinRepository {
	return &CheckinRepository{db: db}
}

const checkinJoin = `
	SELECT c.id, c.member_id, c.check_type, c.checked_at,
	       m.name, m.plan, m.status
	FROM checkins c
	JOIN members m ON m.id = c.member_id
`

// Create inserts a check-in and returns it with the joined member fields
// the front desk renders.
func (r *CheckinRepository) Create(ctx context.Context, c *checkin.Checkin) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO checkins (member_id, check_type)
		VALUES ($1, $2)
		RETURNING id, checked_at
	`, c.MemberID, c.CheckType).Scan(&c.ID, &c.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to create checkin: %w", err)
	}

	row := r.db.QueryRow(ctx, checkinJoin+` WHERE c.id = $1`, c.ID)
	return r.scanJoined(row, c)
}

func (r *CheckinRepository) scanJoined(row pgx.Row, c *checkin.Checkin) error {
	err := row.Scan(
		&c.ID, &c.MemberID, &c.CheckType, &c.CheckedAt,
		&c.MemberName, &c.MemberPlan, &c.MemberStatus,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to scan checkin: %w", err)
	}
	return nil
}

// ListByDate retrieves a day's check-ins, newest first.
func (r *CheckinRepository) ListByDate(ctx context.Context, date time.Time) ([]checkin.Checkin, error) {
	rows, err := r.db.Query(ctx,
		checkinJoin+` WHERE c.checked_at::date = $1::date ORDER BY c.checked_at DESC`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// ListByMember retrieves one member's check-in history.
func (r *CheckinRepository) ListByMember(ctx context.Context, memberID int64) ([]checkin.Checkin, error) {
	rows, err := r.db.Query(ctx,
		checkinJoin+` WHERE c.member_id = $1 ORDER BY c.checked_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list member checkins: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *CheckinRepository) collect(rows pgx.Rows) ([]checkin.Checkin, error) {
	checkins := []checkin.Checkin{}
	for rows.Next() {
		var c checkin.Checkin
		if err := rows.Scan(
			&c.ID, &c.MemberID, &c.CheckType, &c.CheckedAt,
			&c.MemberName, &c.MemberPlan, &c.MemberStatus,
		); err != nil {
			return nil, fmt.Errorf("failed to scan checkin: %w", err)
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}
