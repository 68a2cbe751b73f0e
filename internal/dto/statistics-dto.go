package dto

// StatisticsDTO is the dashboard summary: equipment fleet state plus
// open fault pressure.
type StatisticsDTO struct {
	Operational         int `json:"operational"`
	Maintenance         int `json:"maintenance"`
	OutOfService        int `json:"outOfService"`
	OpenReports         int `json:"openReports"`
	CriticalReports     int `json:"criticalReports"`
	HighPriorityReports int `json:"highPriorityReports"`
}
