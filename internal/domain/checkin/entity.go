package checkin

import (
	"database/sql"
	"time"
)

type CheckType string

const (
	TypeEntry CheckType = "entrada"
	TypeExit  CheckType = "saida"
)

// ValidCheckType reports whether t is a recognized check type.
func ValidCheckType(t CheckType) bool {
	return t == TypeEntry || t == TypeExit
}

type Checkin struct {
	ID        int64     `json:"id" db:"id"`
	MemberID  int64     `json:"member_id" db:"member_id"`
	CheckType CheckType `json:"check_type" db:"check_type"`
	CheckedAt time.Time `json:"checked_at" db:"checked_at"`

	// Joined member fields for the front-desk listing
	MemberName   string         `json:"member_name" db:"member_name"`
	MemberPlan   sql.NullString `json:"member_plan,omitempty" db:"member_plan"`
	MemberStatus string         `json:"member_status" db:"member_status"`
}
