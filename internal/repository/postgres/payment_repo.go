package postgres

import (
	"context"
	"errors"
	"fmt"

	"fitlife-service/internal/domain/payment"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, reference, member_id, plan_id, plan_name, amount, method, status, payment_date, created_at`

// CreateWithTx inserts a payment row within the renewal transaction.
// The reference column carries a unique constraint; a collision surfaces as
// ErrDuplicateEntry so the caller can regenerate and retry.
func (r *PaymentRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, p *payment.Payment) error {
	query := `
		INSERT INTO payments (reference, member_id, plan_id, plan_name, amount, method, status, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query,
		p.Reference, p.MemberID, p.PlanID, p.PlanName,
		p.Amount, p.Method, p.Status, p.PaymentDate,
	).Scan(&p.ID, &p.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// FindByID retrieves a payment by ID.
func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*payment.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var p payment.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Reference, &p.MemberID, &p.PlanID, &p.PlanName,
		&p.Amount, &p.Method, &p.Status, &p.PaymentDate, &p.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	return &p, nil
}

// List retrieves payments with optional member/status filters, newest first.
func (r *PaymentRepository) List(ctx context.Context, filters *payment.PaymentListFilters) ([]payment.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filters != nil && filters.MemberID != 0 {
		query += fmt.Sprintf(" AND member_id = $%d", argPos)
		args = append(args, filters.MemberID)
		argPos++
	}
	if filters != nil && filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, filters.Status)
		argPos++
	}

	query += " ORDER BY payment_date DESC, id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := []payment.Payment{}
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(
			&p.ID, &p.Reference, &p.MemberID, &p.PlanID, &p.PlanName,
			&p.Amount, &p.Method, &p.Status, &p.PaymentDate, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// Update mutates an existing payment row. Membership fields are never
// touched here; renewal only fires through the creation path.
func (r *PaymentRepository) Update(ctx context.Context, id int64, p *payment.Payment) error {
	query := `
		UPDATE payments
		SET status = $1, amount = $2, payment_date = $3, method = $4
		WHERE id = $5
	`

	result, err := r.db.Exec(ctx, query, p.Status, p.Amount, p.PaymentDate, p.Method, id)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
