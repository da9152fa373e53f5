package member

type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	JoinDate string `json:"join_date"` // YYYY-MM-DD, defaults to today
}

type UpdateMemberRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

type MemberListFilters struct {
	Status string `form:"status"`
	Search string `form:"search"`
}
