package postgres

import (
	"context"
	"fmt"
	"time"

	"fitlife-service/internal/domain/settings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the single settings row (id = 1, seeded by migration).
func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var s settings.Settings
	err := r.db.QueryRow(ctx, `
		SELECT id, gym_name, currency, enable_mpesa, enable_emola, enable_card,
		       enable_netshop, enable_cash, receipt_footer, updated_at
		FROM settings WHERE id = 1
	`).Scan(
		&s.ID, &s.GymName, &s.Currency, &s.EnableMpesa, &s.EnableEmola,
		&s.EnableCard, &s.EnableNetShop, &s.EnableCash, &s.ReceiptFooter, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &s, nil
}

// Update writes the single settings row back.
func (r *SettingsRepository) Update(ctx context.Context, s *settings.Settings) error {
	_, err := r.db.Exec(ctx, `
		UPDATE settings
		SET gym_name = $1, currency = $2, enable_mpesa = $3, enable_emola = $4,
		    enable_card = $5, enable_netshop = $6, enable_cash = $7,
		    receipt_footer = $8, updated_at = $9
		WHERE id = 1
	`, s.GymName, s.Currency, s.EnableMpesa, s.EnableEmola,
		s.EnableCard, s.EnableNetShop, s.EnableCash, s.ReceiptFooter, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// GetNotifications returns the single notification-settings row.
func (r *SettingsRepository) GetNotifications(ctx context.Context) (*settings.NotificationSettings, error) {
	var n settings.NotificationSettings
	err := r.db.QueryRow(ctx, `
		SELECT id, notify_payments, notify_checkins, notify_expiring, expiry_days_ahead, updated_at
		FROM notification_settings WHERE id = 1
	`).Scan(&n.ID, &n.NotifyPayments, &n.NotifyCheckins, &n.NotifyExpiring, &n.ExpiryDaysAhead, &n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}
	return &n, nil
}

// UpdateNotifications writes the notification-settings row back.
func (r *SettingsRepository) UpdateNotifications(ctx context.Context, n *settings.NotificationSettings) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notification_settings
		SET notify_payments = $1, notify_checkins = $2, notify_expiring = $3,
		    expiry_days_ahead = $4, updated_at = $5
		WHERE id = 1
	`, n.NotifyPayments, n.NotifyCheckins, n.NotifyExpiring, n.ExpiryDaysAhead, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update notification settings: %w", err)
	}
	return nil
}
