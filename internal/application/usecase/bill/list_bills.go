// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	"github.com/smartspend/backend/internal/domain/valueobject"
)

// upcomingWindowDays bounds the "next7" due filter and the summary amount.
const upcomingWindowDays = 7

// ListBillsInput represents the filters of a bill listing.
type ListBillsInput struct {
	UserID   uuid.UUID
	Search   string // case-insensitive name prefix
	Status   string
	Cadence  string
	Category string
	Due      string // today / next7 / overdue; anything else is ignored
}

// ListBillsOutput represents the output of a bill listing: the matching
// bills ascending by due date, plus the open-bill summary block.
type ListBillsOutput struct {
	Bills   []*entity.Bill
	Summary *adapter.BillSummary
}

// ListBillsUseCase handles bill listing and summary aggregation.
type ListBillsUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *ListBillsUseCase {
	return &ListBillsUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute retrieves the bills matching the filter together with the summary.
func (uc *ListBillsUseCase) Execute(ctx context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	now := uc.clock.Now().UTC()
	today := valueobject.FormatDate(now)

	filter := adapter.BillFilter{
		UserID:   input.UserID,
		Search:   input.Search,
		Status:   input.Status,
		Cadence:  input.Cadence,
		Category: input.Category,
		Today:    today,
	}
	switch input.Due {
	case string(adapter.BillDueToday), string(adapter.BillDueNext7), string(adapter.BillDueOverdue):
		filter.Due = adapter.BillDueWindow(input.Due)
	}

	bills, err := uc.billRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	cutoff := valueobject.FormatDate(now.AddDate(0, 0, upcomingWindowDays))
	summary, err := uc.billRepo.GetSummary(ctx, input.UserID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bill summary: %w", err)
	}

	return &ListBillsOutput{Bills: bills, Summary: summary}, nil
}
