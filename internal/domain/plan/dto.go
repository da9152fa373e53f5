package plan

type CreatePlanRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" binding:"min=0"`
	DurationDays int      `json:"duration_days" binding:"required,min=1"`
	Features     []string `json:"features"`
}

type UpdatePlanRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" binding:"omitempty,min=0"`
	DurationDays *int     `json:"duration_days" binding:"omitempty,min=1"`
	Features     []string `json:"features"`
}
