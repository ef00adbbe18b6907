package bill

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
)

// DeleteBillInput represents the input for deleting a bill.
type DeleteBillInput struct {
	UserID uuid.UUID
	BillID uuid.UUID
}

// DeleteBillUseCase handles explicit bill termination. Deletion is the only
// way a bill's lifecycle ends; it never expires by exhausting occurrences.
type DeleteBillUseCase struct {
	billRepo adapter.BillRepository
	cache    adapter.SummaryCache
}

// NewDeleteBillUseCase creates a new DeleteBillUseCase instance.
func NewDeleteBillUseCase(billRepo adapter.BillRepository, cache adapter.SummaryCache) *DeleteBillUseCase {
	return &DeleteBillUseCase{
		billRepo: billRepo,
		cache:    cache,
	}
}

// Execute deletes the bill scoped to the user.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, input DeleteBillInput) error {
	if err := uc.billRepo.Delete(ctx, input.BillID, input.UserID); err != nil {
		return err
	}

	if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("failed to invalidate summary cache", "user_id", input.UserID, "error", err)
	}

	return nil
}
