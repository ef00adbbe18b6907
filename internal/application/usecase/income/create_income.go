// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// CreateIncomeInput represents the input for recording an income source.
type CreateIncomeInput struct {
	UserID       uuid.UUID
	Amount       decimal.Decimal
	PayFrequency string
	// Frequency-specific anchors; only the one matching the frequency is read
	// by consumers, but all are stored as given.
	WeeklyDays     string
	BiweeklyAnchor string
	MonthlyDate    string
	OtherNote      string
}

// CreateIncomeOutput represents the output of recording an income source.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.SummaryCache
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository, cache adapter.SummaryCache) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute records the income source.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if input.Amount.Sign() < 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	income := entity.NewIncome(input.UserID, input.Amount, entity.ParsePayFrequency(input.PayFrequency))
	income.WeeklyDays = input.WeeklyDays
	income.BiweeklyAnchor = input.BiweeklyAnchor
	income.MonthlyDate = input.MonthlyDate
	income.OtherNote = input.OtherNote

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("failed to invalidate summary cache", "user_id", input.UserID, "error", err)
	}

	return &CreateIncomeOutput{Income: income}, nil
}
