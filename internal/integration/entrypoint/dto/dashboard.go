package dto

import (
	"github.com/smartspend/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the composed dashboard summary.
type SummaryResponse struct {
	CurrentBalance string            `json:"current_balance"`
	BurnRate       string            `json:"burn_rate"`
	DaysLeft       string            `json:"days_left"`
	Next7Forecast  string            `json:"next7_forecast"`
	UpcomingBills  []BillResponse    `json:"upcoming_bills"`
	CategoryTotals map[string]string `json:"category_totals"`
	Cached         bool              `json:"cached"`
}

// ToSummaryResponse converts a composed summary to its DTO.
func ToSummaryResponse(summary *dashboard.Summary, cached bool) SummaryResponse {
	bills := make([]BillResponse, len(summary.UpcomingBills))
	for i, b := range summary.UpcomingBills {
		bills[i] = ToBillResponse(b)
	}

	totals := make(map[string]string, len(summary.CategoryTotals))
	for category, total := range summary.CategoryTotals {
		totals[category] = total.String()
	}

	return SummaryResponse{
		CurrentBalance: summary.CurrentBalance.String(),
		BurnRate:       summary.BurnRate.String(),
		DaysLeft:       summary.DaysLeft.String(),
		Next7Forecast:  summary.Next7Forecast.String(),
		UpcomingBills:  bills,
		CategoryTotals: totals,
		Cached:         cached,
	}
}
