// Package runway contains the balance, burn-rate and runway-projection use cases.
package runway

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
)

// BalanceInput represents the input for computing a user's balance.
type BalanceInput struct {
	UserID uuid.UUID
}

// BalanceUseCase computes the running balance: sum of all income minus sum
// of all expenses. No windowing, no side effects; an empty record set yields
// zero.
type BalanceUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
}

// NewBalanceUseCase creates a new BalanceUseCase instance.
func NewBalanceUseCase(incomeRepo adapter.IncomeRepository, expenseRepo adapter.ExpenseRepository) *BalanceUseCase {
	return &BalanceUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute computes the balance for the given user.
func (uc *BalanceUseCase) Execute(ctx context.Context, input BalanceInput) (decimal.Decimal, error) {
	incomes, err := uc.incomeRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return decimal.Zero, err
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return decimal.Zero, err
	}

	incomeSum := decimal.Zero
	for _, income := range incomes {
		incomeSum = incomeSum.Add(income.Amount)
	}

	expenseSum := decimal.Zero
	for _, expense := range expenses {
		expenseSum = expenseSum.Add(expense.Amount)
	}

	return incomeSum.Sub(expenseSum), nil
}
