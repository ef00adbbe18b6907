package runway

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
)

// ForecastWindowDays is the trailing window the moving-average forecast reads.
const ForecastWindowDays = 7

// ForecastInput represents the input for forecasting a user's near-term burn.
type ForecastInput struct {
	UserID uuid.UUID
}

// ForecastUseCase is a simple moving-average baseline: the mean daily spend
// over the last seven active days is reported as the expected daily burn for
// the next seven.
type ForecastUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewForecastUseCase creates a new ForecastUseCase instance.
func NewForecastUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *ForecastUseCase {
	return &ForecastUseCase{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute forecasts the daily burn for the coming week, rounded to 2 decimals.
func (uc *ForecastUseCase) Execute(ctx context.Context, input ForecastInput) (decimal.Decimal, error) {
	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return decimal.Zero, err
	}

	today := dateOnly(uc.clock.Now().UTC())
	since := today.AddDate(0, 0, -ForecastWindowDays)

	return dailyMean(expenses, since, today), nil
}
