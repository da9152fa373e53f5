package settings

type UpdateSettingsRequest struct {
	GymName       *string `json:"gym_name"`
	Currency      *string `json:"currency"`
	EnableMpesa   *bool   `json:"enable_mpesa"`
	EnableEmola   *bool   `json:"enable_emola"`
	EnableCard    *bool   `json:"enable_card"`
	EnableNetShop *bool   `json:"enable_netshop"`
	EnableCash    *bool   `json:"enable_cash"`
	ReceiptFooter *string `json:"receipt_footer"`
}

type UpdateNotificationSettingsRequest struct {
	NotifyPayments  *bool `json:"notify_payments"`
	NotifyCheckins  *bool `json:"notify_checkins"`
	NotifyExpiring  *bool `json:"notify_expiring"`
	ExpiryDaysAhead *int  `json:"expiry_days_ahead" binding:"omitempty,min=1"`
}
