package runway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	"github.com/smartspend/backend/internal/domain/valueobject"
)

// DefaultBurnWindowDays is the trailing window used when none is supplied.
const DefaultBurnWindowDays = 30

// BurnRateInput represents the input for estimating a user's burn rate.
type BurnRateInput struct {
	UserID     uuid.UUID
	WindowDays int // <= 0 means DefaultBurnWindowDays
}

// BurnRateUseCase estimates the average daily spend over a trailing window.
// The mean is taken over the distinct days that actually have expense
// activity, not over the window length, so sparse spenders are not diluted
// by zero-spend days. Expenses with unparsable dates are skipped.
type BurnRateUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewBurnRateUseCase creates a new BurnRateUseCase instance.
func NewBurnRateUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *BurnRateUseCase {
	return &BurnRateUseCase{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute estimates the burn rate for the given user, rounded to 2 decimals.
func (uc *BurnRateUseCase) Execute(ctx context.Context, input BurnRateInput) (decimal.Decimal, error) {
	window := input.WindowDays
	if window <= 0 {
		window = DefaultBurnWindowDays
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return decimal.Zero, err
	}

	today := dateOnly(uc.clock.Now().UTC())
	since := today.AddDate(0, 0, -window)

	return dailyMean(expenses, since, today), nil
}

// dailyMean groups expenses dated within [since, today] by calendar date and
// returns the mean of the per-day totals, rounded to 2 decimals. Zero when
// no day qualifies.
func dailyMean(expenses []*entity.Expense, since, today time.Time) decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		d, err := valueobject.ParseDate(expense.Date)
		if err != nil {
			// Malformed dates must not abort the aggregation.
			continue
		}
		d = dateOnly(d)
		if d.Before(since) || d.After(today) {
			continue
		}
		key := valueobject.FormatDate(d)
		totals[key] = totals[key].Add(expense.Amount)
	}

	if len(totals) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, dayTotal := range totals {
		sum = sum.Add(dayTotal)
	}
	return sum.Div(decimal.NewFromInt(int64(len(totals)))).Round(2)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
