package statistics

type DepartmentUserCount struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UserCount int64  `json:"user_count"`
}

type UserStatisticsResponse struct {
	TotalUsers          int64                 `json:"total_users"`
	ActiveUsers         int64                 `json:"active_users"`
	InactiveUsers       int64                 `json:"inactive_users"`
	OnLeaveUsers        int64                 `json:"on_leave_users"`
	DepartmentBreakdown []DepartmentUserCount `json:"department_breakdown"`
}

type DepartmentStatsResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TotalUsers    int64  `json:"total_users"`
	ActiveUsers   int64  `json:"active_users"`
	InactiveUsers int64  `json:"inactive_users"`
	OnLeaveUsers  int64  `json:"on_leave_users"`
}
