package schedule

import (
	"time"
)

// GymClass is a recurring class slot with a fixed seat capacity.
type GymClass struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Instructor      string    `json:"instructor" db:"instructor"`
	Weekday         string    `json:"weekday" db:"weekday"`
	StartTime       string    `json:"start_time" db:"start_time"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	MaxParticipants int       `json:"max_participants" db:"max_participants"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Reservation books one member into one class occurrence on one date.
// (member_id, class_id, reservation_date) is unique.
type Reservation struct {
	ID              int64     `json:"id" db:"id"`
	MemberID        int64     `json:"member_id" db:"member_id"`
	ClassID         int64     `json:"class_id" db:"class_id"`
	ReservationDate time.Time `json:"reservation_date" db:"reservation_date"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
