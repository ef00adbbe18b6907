package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
// Incomes are append-only from the engine's perspective.
type IncomeRepository interface {
	// Create creates a new income record.
	Create(ctx context.Context, income *entity.Income) error

	// FindByUser retrieves all income records for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)
}

// ExpenseRepository defines the interface for expense persistence operations.
// Expenses are append-only from the engine's perspective.
type ExpenseRepository interface {
	// Create creates a new expense record.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByUser retrieves all expense records for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)
}

// TransactionRepository defines the interface for transaction persistence
// operations. Transactions are display-layer join rows; the query pipeline
// resolves their weak references in memory.
type TransactionRepository interface {
	// Create creates a new transaction record.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByUser retrieves all transactions for a given user in store order
	// (newest first).
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)
}
