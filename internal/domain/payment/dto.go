package payment

type CreatePaymentRequest struct {
	MemberID    int64   `json:"member_id" binding:"required"`
	PlanID      int64   `json:"plan_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"payment_date"` // YYYY-MM-DD, defaults to today (server side)
	Method      string  `json:"method" binding:"required"`
	Status      string  `json:"status" binding:"required"`
}

// UpdatePaymentRequest mutates an existing payment in place. Setting status
// through this path never re-triggers membership renewal, even to "Pago":
// renewal only fires at creation time.
type UpdatePaymentRequest struct {
	Status      *string  `json:"status"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	PaymentDate *string  `json:"payment_date"`
	Method      *string  `json:"method"`
}

type PaymentListFilters struct {
	MemberID int64  `form:"member_id"`
	Status   string `form:"status"`
}
