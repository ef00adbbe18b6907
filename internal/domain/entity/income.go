package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayFrequency represents how often an income source pays out.
type PayFrequency string

const (
	PayFrequencyWeekly   PayFrequency = "weekly"
	PayFrequencyBiweekly PayFrequency = "biweekly"
	PayFrequencyMonthly  PayFrequency = "monthly"
	PayFrequencyOthers   PayFrequency = "others"
)

// ParsePayFrequency normalizes a pay frequency keyword, defaulting to "others".
func ParsePayFrequency(s string) PayFrequency {
	switch PayFrequency(s) {
	case PayFrequencyWeekly, PayFrequencyBiweekly, PayFrequencyMonthly:
		return PayFrequency(s)
	default:
		return PayFrequencyOthers
	}
}

// Income represents a recorded income source. Incomes are append-only and
// contribute positively to the running balance.
type Income struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Amount       decimal.Decimal
	PayFrequency PayFrequency
	// Frequency-specific anchors. Only the field matching PayFrequency is
	// meaningful; the rest stay empty.
	WeeklyDays     string // e.g. "friday"
	BiweeklyAnchor string // anchor date of the pay cycle
	MonthlyDate    string // day of month the payment lands
	OtherNote      string
	CreatedAt      time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(userID uuid.UUID, amount decimal.Decimal, frequency PayFrequency) *Income {
	return &Income{
		ID:           uuid.New(),
		UserID:       userID,
		Amount:       amount,
		PayFrequency: frequency,
		CreatedAt:    time.Now().UTC(),
	}
}
