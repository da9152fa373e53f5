package postgres

import (
	"context"
	"fmt"

	"fitlife-service/internal/domain/member"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepository struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// CountMembers counts all members and the "Ativo" subset in one round trip.
// A member whose end_date has lapsed still counts as Ativo until an admin
// flips the status; no background job expires memberships.
func (r *DashboardRepository) CountMembers(ctx context.Context) (total, active int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1)
		FROM members
	`, member.StatusActive).Scan(&total, &active)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count members: %w", err)
	}
	return total, active, nil
}

// CountTodayCheckins counts today's check-ins.
func (r *DashboardRepository) CountTodayCheckins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM checkins WHERE checked_at::date = CURRENT_DATE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count today checkins: %w", err)
	}
	return count, nil
}

// MonthlyRevenue sums "Pago" payments with a payment date in the current
// calendar month.
func (r *DashboardRepository) MonthlyRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = 'Pago'
		  AND date_trunc('month', payment_date) = date_trunc('month', CURRENT_DATE)
	`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum monthly revenue: %w", err)
	}
	return total, nil
}
