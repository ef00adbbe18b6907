package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/valueobject"
)

// Expense represents a recorded expense. Expenses are append-only and
// contribute negatively to the running balance.
//
// Date is the calendar date the money was spent (distinct from CreatedAt,
// the record timestamp) and is kept as a string in the wire date format:
// legacy rows may carry unparsable values, which aggregation paths must
// skip rather than fail on.
type Expense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Category  valueobject.Category
	Date      string // "2006-01-02"
	Time      string // "15:04"
	Merchant  string
	Mood      string
	CreatedAt time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	amount decimal.Decimal,
	category valueobject.Category,
	date string,
	timeOfDay string,
	merchant string,
	mood string,
) *Expense {
	return &Expense{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Category:  category,
		Date:      date,
		Time:      timeOfDay,
		Merchant:  merchant,
		Mood:      mood,
		CreatedAt: time.Now().UTC(),
	}
}

// IsRecurring reports whether this expense carries the recurring-need
// category that spawns a bill.
func (e *Expense) IsRecurring() bool {
	return e.Category == valueobject.CategoryNeedRecurrence
}
