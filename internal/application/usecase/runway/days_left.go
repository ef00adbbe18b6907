package runway

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RunwayCeilingDays is reported when the burn rate is zero or negative: the
// user is not burning money, so the runway is "effectively indefinite",
// capped at one year rather than infinite.
const RunwayCeilingDays = 365

// DaysLeftInput represents the input for projecting a user's runway.
type DaysLeftInput struct {
	UserID uuid.UUID
}

// DaysLeftUseCase projects how many days the balance lasts at the current
// burn rate. A negative balance with a positive burn rate legitimately
// yields a negative projection (already-depleted signal); it is not clamped.
type DaysLeftUseCase struct {
	balance  *BalanceUseCase
	burnRate *BurnRateUseCase
}

// NewDaysLeftUseCase creates a new DaysLeftUseCase instance.
func NewDaysLeftUseCase(balance *BalanceUseCase, burnRate *BurnRateUseCase) *DaysLeftUseCase {
	return &DaysLeftUseCase{
		balance:  balance,
		burnRate: burnRate,
	}
}

// Execute projects the days of runway left for the given user, rounded to 2
// decimals.
func (uc *DaysLeftUseCase) Execute(ctx context.Context, input DaysLeftInput) (decimal.Decimal, error) {
	burnRate, err := uc.burnRate.Execute(ctx, BurnRateInput{UserID: input.UserID})
	if err != nil {
		return decimal.Zero, err
	}

	if burnRate.Sign() <= 0 {
		return decimal.NewFromInt(RunwayCeilingDays), nil
	}

	balance, err := uc.balance.Execute(ctx, BalanceInput{UserID: input.UserID})
	if err != nil {
		return decimal.Zero, err
	}

	return balance.Div(burnRate).Round(2), nil
}
