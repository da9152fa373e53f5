package member

import (
	"database/sql"
	"time"
)

type MemberStatus string

const (
	StatusActive   MemberStatus = "Ativo"
	StatusPending  MemberStatus = "Pendente"
	StatusInactive MemberStatus = "Inativo"
	StatusBlocked  MemberStatus = "Bloqueado"
)

// ValidStatus reports whether s is one of the recognized member statuses.
func ValidStatus(s MemberStatus) bool {
	switch s {
	case StatusActive, StatusPending, StatusInactive, StatusBlocked:
		return true
	}
	return false
}

type Member struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Phone sql.NullString `json:"phone,omitempty" db:"phone"`

	// Current plan. PlanID is the source of truth; Plan holds the plan name
	// as it was when the member last renewed (snapshot, not a live join).
	Plan   sql.NullString `json:"plan,omitempty" db:"plan"`
	PlanID sql.NullInt64  `json:"plan_id,omitempty" db:"plan_id"`

	Status   MemberStatus `json:"status" db:"status"`
	JoinDate time.Time    `json:"join_date" db:"join_date"`
	EndDate  sql.NullTime `json:"end_date,omitempty" db:"end_date"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
