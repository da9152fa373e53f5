package schedule

type CreateClassRequest struct {
	Name            string `json:"name" binding:"required"`
	Instructor      string `json:"instructor" binding:"required"`
	Weekday         string `json:"weekday" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	MaxParticipants int    `json:"max_participants" binding:"required,min=1"`
}

type UpdateClassRequest struct {
	Name            *string `json:"name"`
	Instructor      *string `json:"instructor"`
	Weekday         *string `json:"weekday"`
	StartTime       *string `json:"start_time"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=1"`
	MaxParticipants *int    `json:"max_participants" binding:"omitempty,min=1"`
	IsActive        *bool   `json:"is_active"`
}

type CreateReservationRequest struct {
	MemberID        int64  `json:"member_id" binding:"required"`
	ClassID         int64  `json:"class_id" binding:"required"`
	ReservationDate string `json:"reservation_date" binding:"required"` // YYYY-MM-DD
}

type ReservationListFilters struct {
	ClassID int64  `form:"class_id"`
	Date    string `form:"date"`
}
