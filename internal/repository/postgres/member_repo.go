package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlife-service/internal/domain/member"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MemberRepository struct {
	db *pgxpool.Pool
}

func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{db: db}
}

const memberColumns = `id, name, email, phone, plan, plan_id, status, join_date, end_date, created_at, updated_at`

func scanMember(row pgx.Row) (*member.Member, error) {
	var m member.Member
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Plan, &m.PlanID,
		&m.Status, &m.JoinDate, &m.EndDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan member: %w", err)
	}
	return &m, nil
}

// Create inserts a new member row.
func (r *MemberRepository) Create(ctx context.Context, m *member.Member) error {
	query := `
		INSERT INTO members (name, email, phone, status, join_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		m.Name, m.Email, m.Phone, m.Status, m.JoinDate,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// FindByID retrieves a member by ID.
func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*member.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	return scanMember(r.db.QueryRow(ctx, query, id))
}

// List retrieves members with optional status/search filters, newest first.
func (r *MemberRepository) List(ctx context.Context, filters *member.MemberListFilters) ([]member.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filters != nil && filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, filters.Status)
		argPos++
	}
	if filters != nil && filters.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []member.Member{}
	for rows.Next() {
		var m member.Member
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Phone, &m.Plan, &m.PlanID,
			&m.Status, &m.JoinDate, &m.EndDate, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// Update mutates the editable member fields.
func (r *MemberRepository) Update(ctx context.Context, id int64, m *member.Member) error {
	query := `
		UPDATE members
		SET name = $1, email = $2, phone = $3, status = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.Exec(ctx, query, m.Name, m.Email, m.Phone, m.Status, time.Now(), id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// UpdateStatus flips a member's status (admin deactivate/block actions).
func (r *MemberRepository) UpdateStatus(ctx context.Context, id int64, status member.MemberStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE members SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update member status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// UpdateRenewalWithTx applies the membership renewal side effect inside the
// payment transaction: new plan reference, plan name snapshot and end date.
func (r *MemberRepository) UpdateRenewalWithTx(ctx context.Context, tx pgx.Tx, memberID, planID int64, planName string, endDate time.Time) error {
	result, err := tx.Exec(ctx, `
		UPDATE members
		SET plan_id = $1, plan = $2, end_date = $3, updated_at = $4
		WHERE id = $5
	`, planID, planName, endDate, time.Now(), memberID)

	if err != nil {
		return fmt.Errorf("failed to update member renewal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
