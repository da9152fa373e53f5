package plan

import (
	"time"

	"github.com/lib/pq"
)

// Plan is a priced subscription tier. Prices are in MZN. Plans are soft
// disabled through IsActive so past payments and members keep their
// referential history.
type Plan struct {
	ID           int64          `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"`
	Description  string         `json:"description" db:"description"`
	Price        float64        `json:"price" db:"price"`
	DurationDays int            `json:"duration_days" db:"duration_days"`
	Features     pq.StringArray `json:"features" db:"features"`
	IsActive     bool           `json:"is_active" db:"is_active"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}
