package models

// MonthlyRevenue aggregates completed-appointment revenue for one month.
type MonthlyRevenue struct {
	Month        string  `json:"month"` // "2024-06"
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

// FinanceSummary is the professional's revenue view, derived from
// completed appointments times the consultation fee.
type FinanceSummary struct {
	ProfessionalID  string           `json:"professionalId"`
	ConsultationFee float64          `json:"consultationFee"`
	CompletedCount  int              `json:"completedCount"`
	TotalRevenue    float64          `json:"totalRevenue"`
	Monthly         []MonthlyRevenue `json:"monthly"`
}
