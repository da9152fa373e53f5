package settings

import (
	"time"
)

// Settings is the single-row global configuration consumed by the
// payment-method toggles and receipt generation.
type Settings struct {
	ID            int64     `json:"id" db:"id"`
	GymName       string    `json:"gym_name" db:"gym_name"`
	Currency      string    `json:"currency" db:"currency"`
	EnableMpesa   bool      `json:"enable_mpesa" db:"enable_mpesa"`
	EnableEmola   bool      `json:"enable_emola" db:"enable_emola"`
	EnableCard    bool      `json:"enable_card" db:"enable_card"`
	EnableNetShop bool      `json:"enable_netshop" db:"enable_netshop"`
	EnableCash    bool      `json:"enable_cash" db:"enable_cash"`
	ReceiptFooter string    `json:"receipt_footer" db:"receipt_footer"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// NotificationSettings is the single-row notification configuration.
type NotificationSettings struct {
	ID              int64     `json:"id" db:"id"`
	NotifyPayments  bool      `json:"notify_payments" db:"notify_payments"`
	NotifyCheckins  bool      `json:"notify_checkins" db:"notify_checkins"`
	NotifyExpiring  bool      `json:"notify_expiring" db:"notify_expiring"`
	ExpiryDaysAhead int       `json:"expiry_days_ahead" db:"expiry_days_ahead"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
