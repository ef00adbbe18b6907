package dto

import (
	"time"

	"github.com/smartspend/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for recording an income
// source. Only the anchor field matching the pay frequency is meaningful.
type CreateIncomeRequest struct {
	Amount         float64 `json:"amount" binding:"gte=0"`
	PayFrequency   string  `json:"pay_frequency" binding:"required"`
	WeeklyDays     string  `json:"weekly_days"`
	BiweeklyAnchor string  `json:"biweekly_anchor"`
	MonthlyDate    string  `json:"monthly_date"`
	OtherNote      string  `json:"other_note"`
}

// IncomeResponse represents an income source in API responses.
type IncomeResponse struct {
	ID             string    `json:"id"`
	Amount         string    `json:"amount"`
	PayFrequency   string    `json:"pay_frequency"`
	WeeklyDays     string    `json:"weekly_days,omitempty"`
	BiweeklyAnchor string    `json:"biweekly_anchor,omitempty"`
	MonthlyDate    string    `json:"monthly_date,omitempty"`
	OtherNote      string    `json:"other_note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListIncomesResponse represents the response for income listing.
type ListIncomesResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:             income.ID.String(),
		Amount:         income.Amount.String(),
		PayFrequency:   string(income.PayFrequency),
		WeeklyDays:     income.WeeklyDays,
		BiweeklyAnchor: income.BiweeklyAnchor,
		MonthlyDate:    income.MonthlyDate,
		OtherNote:      income.OtherNote,
		CreatedAt:      income.CreatedAt,
	}
}
