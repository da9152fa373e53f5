package dashboard

// Stats is the back-office landing page summary.
type Stats struct {
	TotalMembers   int64   `json:"totalMembers"`
	ActiveMembers  int64   `json:"activeMembers"`
	TodayCheckins  int64   `json:"todayCheckins"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}
