package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/valueobject"
)

// Transaction is a display-layer join row, not an independent ledger entry.
// It weakly references at most one Income or Expense by ID; its monetary
// amount is derived by following that reference at query time.
//
// CreatedAt is kept as a raw timestamp string: legacy rows may carry
// unparsable values, which the query pipeline substitutes with "now" rather
// than aborting.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	IncomeID  *uuid.UUID
	ExpenseID *uuid.UUID
	Merchant  string
	CreatedAt string // RFC 3339
}

// NewTransaction creates a new Transaction entity stamped at now.
func NewTransaction(userID uuid.UUID, incomeID, expenseID *uuid.UUID, merchant string, now time.Time) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		IncomeID:  incomeID,
		ExpenseID: expenseID,
		Merchant:  merchant,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

// TransactionView is a transaction materialized for display: the weak
// reference has been resolved and merchant, category, mood and amount
// filled in (with zero/empty defaults when the reference dangles).
type TransactionView struct {
	ID        uuid.UUID
	CreatedAt string
	Merchant  string
	Category  valueobject.Category // empty for income-linked or dangling rows
	Mood      string
	Amount    decimal.Decimal
}
