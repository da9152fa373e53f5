package payment

import (
	"time"
)

type PaymentStatus string

const (
	StatusPaid      PaymentStatus = "Pago"
	StatusPending   PaymentStatus = "Pendente"
	StatusCancelled PaymentStatus = "Cancelado"
	StatusFailed    PaymentStatus = "Falhou"
)

type PaymentMethod string

const (
	MethodMpesa   PaymentMethod = "Mpesa"
	MethodEmola   PaymentMethod = "Emola"
	MethodCard    PaymentMethod = "Card"
	MethodNetShop PaymentMethod = "NetShop"
	MethodCash    PaymentMethod = "Cash"
)

// ValidStatus reports whether s is a recognized payment status.
func ValidStatus(s PaymentStatus) bool {
	switch s {
	case StatusPaid, StatusPending, StatusCancelled, StatusFailed:
		return true
	}
	return false
}

// ValidMethod reports whether m is a recognized payment method.
func ValidMethod(m PaymentMethod) bool {
	switch m {
	case MethodMpesa, MethodEmola, MethodCard, MethodNetShop, MethodCash:
		return true
	}
	return false
}

// Payment is one ledger entry recording money received against a member's
// plan. PlanName is the plan's name at the time of payment: renaming a plan
// later must not relabel historical payments, so the snapshot is deliberate.
// PlanID is kept alongside as the referential source of truth.
type Payment struct {
	ID          int64         `json:"id" db:"id"`
	Reference   string        `json:"reference" db:"reference"`
	MemberID    int64         `json:"member_id" db:"member_id"`
	PlanID      int64         `json:"plan_id" db:"plan_id"`
	PlanName    string        `json:"plan" db:"plan_name"`
	Amount      float64       `json:"amount" db:"amount"`
	Method      PaymentMethod `json:"method" db:"method"`
	Status      PaymentStatus `json:"status" db:"status"`
	PaymentDate time.Time     `json:"payment_date" db:"payment_date"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}
