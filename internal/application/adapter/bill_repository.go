package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// BillDueWindow selects bills by how their next due date relates to today.
type BillDueWindow string

const (
	BillDueToday   BillDueWindow = "today"
	BillDueNext7   BillDueWindow = "next7"
	BillDueOverdue BillDueWindow = "overdue"
)

// BillFilter defines filter options for listing bills.
type BillFilter struct {
	UserID   uuid.UUID
	Search   string // case-insensitive name prefix
	Status   string
	Cadence  string
	Category string
	Due      BillDueWindow // empty means no due-date constraint
	Today    string        // reference date for Due, wire date format
}

// BillSummary aggregates open bills for the list view.
type BillSummary struct {
	TotalThisMonth decimal.Decimal
	Next7          decimal.Decimal
	ActiveCount    int64
}

// BillRepository defines the interface for bill persistence operations.
type BillRepository interface {
	// Create creates a new bill.
	Create(ctx context.Context, bill *entity.Bill) error

	// FindByIDAndUser retrieves a bill by ID scoped to a user.
	// Returns domain ErrBillNotFound when the id does not resolve.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Bill, error)

	// FindByFilter retrieves bills matching the filter, ascending by next due date.
	FindByFilter(ctx context.Context, filter BillFilter) ([]*entity.Bill, error)

	// FindUpcoming retrieves open bills with next_due in [from, to], ascending
	// by due date, capped at limit.
	FindUpcoming(ctx context.Context, userID uuid.UUID, from, to string, limit int) ([]*entity.Bill, error)

	// GetSummary aggregates open bills for a user; next7Cutoff bounds the
	// Next7 amount, wire date format.
	GetSummary(ctx context.Context, userID uuid.UUID, next7Cutoff string) (*BillSummary, error)

	// Update persists mutable bill fields.
	Update(ctx context.Context, bill *entity.Bill) error

	// AdvanceDue advances next_due, stamps last_paid with paidOn and resets
	// status to upcoming, but only if the stored next_due still equals
	// prevNextDue. Returns false when another writer advanced the bill first;
	// the caller must not retry blindly.
	AdvanceDue(ctx context.Context, id, userID uuid.UUID, prevNextDue, nextDue, paidOn string) (bool, error)

	// Delete removes a bill scoped to a user. Returns domain ErrBillNotFound
	// when nothing was deleted.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
