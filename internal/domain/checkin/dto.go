package checkin

type CreateCheckinRequest struct {
	MemberID  int64  `json:"member_id" binding:"required"`
	CheckType string `json:"check_type" binding:"required"`
}

type CheckinListFilters struct {
	Date string `form:"date"` // YYYY-MM-DD
}
