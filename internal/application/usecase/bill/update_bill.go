package bill

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/domain/valueobject"
)

// UpdateBillInput represents a partial bill update. Nil fields are left
// untouched.
type UpdateBillInput struct {
	UserID   uuid.UUID
	BillID   uuid.UUID
	Name     *string
	Amount   *decimal.Decimal
	Category *string
	Cadence  *string
	NextDue  *string
	Status   *string
	Notes    *string
}

// UpdateBillOutput represents the output of a bill update.
type UpdateBillOutput struct {
	Bill *entity.Bill
}

// UpdateBillUseCase handles user-initiated bill edits.
type UpdateBillUseCase struct {
	billRepo adapter.BillRepository
	cache    adapter.SummaryCache
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase instance.
func NewUpdateBillUseCase(billRepo adapter.BillRepository, cache adapter.SummaryCache) *UpdateBillUseCase {
	return &UpdateBillUseCase{
		billRepo: billRepo,
		cache:    cache,
	}
}

// Execute applies the requested field changes to the bill.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, input UpdateBillInput) (*UpdateBillOutput, error) {
	if input.Name == nil && input.Amount == nil && input.Category == nil &&
		input.Cadence == nil && input.NextDue == nil && input.Status == nil && input.Notes == nil {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeNoBillFields,
			"no updatable fields in request",
			domainerror.ErrNoBillFieldsToUpdate,
		)
	}

	if input.Amount != nil && input.Amount.Sign() < 0 {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillAmount,
			"amount must not be negative",
			domainerror.ErrInvalidBillAmount,
		)
	}

	if input.NextDue != nil {
		if _, err := valueobject.ParseDate(*input.NextDue); err != nil {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillDueDate,
				"next due date must be a valid calendar date",
				domainerror.ErrInvalidBillDueDate,
			)
		}
	}

	bill, err := uc.billRepo.FindByIDAndUser(ctx, input.BillID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		bill.Name = *input.Name
	}
	if input.Amount != nil {
		bill.Amount = *input.Amount
	}
	if input.Category != nil {
		bill.Category = valueobject.Category(*input.Category)
	}
	if input.Cadence != nil {
		bill.Cadence = valueobject.ParseCadence(*input.Cadence)
	}
	if input.NextDue != nil {
		bill.NextDue = *input.NextDue
	}
	if input.Status != nil {
		bill.Status = entity.BillStatus(*input.Status)
	}
	if input.Notes != nil {
		bill.Notes = *input.Notes
	}

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("failed to invalidate summary cache", "user_id", input.UserID, "error", err)
	}

	return &UpdateBillOutput{Bill: bill}, nil
}
