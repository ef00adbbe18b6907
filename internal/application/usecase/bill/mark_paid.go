package bill

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/domain/valueobject"
)

// MarkPaidInput represents the input for marking a bill paid.
type MarkPaidInput struct {
	UserID uuid.UUID
	BillID uuid.UUID
}

// MarkPaidOutput represents the output of marking a bill paid: the bill with
// its advanced due date plus the synthesized payment transaction.
type MarkPaidOutput struct {
	Bill        *entity.Bill
	Transaction *entity.Transaction
}

// MarkPaidUseCase advances a bill's due date and records the payment as an
// expense-backed transaction. The advancement is conditional on the due date
// read at the start of the call, so two concurrent mark-paid requests cannot
// both advance the same bill; the loser fails with ErrBillAlreadyAdvanced and
// writes nothing.
type MarkPaidUseCase struct {
	billRepo        adapter.BillRepository
	expenseRepo     adapter.ExpenseRepository
	transactionRepo adapter.TransactionRepository
	cache           adapter.SummaryCache
	clock           adapter.Clock
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(
	billRepo adapter.BillRepository,
	expenseRepo adapter.ExpenseRepository,
	transactionRepo adapter.TransactionRepository,
	cache adapter.SummaryCache,
	clock adapter.Clock,
) *MarkPaidUseCase {
	return &MarkPaidUseCase{
		billRepo:        billRepo,
		expenseRepo:     expenseRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
		clock:           clock,
	}
}

// Execute marks the bill paid.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*MarkPaidOutput, error) {
	bill, err := uc.billRepo.FindByIDAndUser(ctx, input.BillID, input.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()

	// The advancement is anchored at the current due date, not at last_paid:
	// paying early or late never drifts the schedule.
	anchor, err := valueobject.ParseDate(bill.NextDue)
	if err != nil {
		anchor = now
	}
	nextDue := valueobject.FormatDate(bill.Cadence.NextDue(anchor))
	paidOn := valueobject.FormatDate(now)

	advanced, err := uc.billRepo.AdvanceDue(ctx, bill.ID, input.UserID, bill.NextDue, nextDue, paidOn)
	if err != nil {
		return nil, fmt.Errorf("failed to advance bill due date: %w", err)
	}
	if !advanced {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillAlreadyAdvanced,
			"bill was already advanced by a concurrent request",
			domainerror.ErrBillAlreadyAdvanced,
		)
	}

	transaction, err := uc.recordPayment(ctx, bill, now)
	if err != nil {
		return nil, err
	}

	bill.NextDue = nextDue
	bill.LastPaid = paidOn
	bill.Status = entity.BillStatusUpcoming

	if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("failed to invalidate summary cache", "user_id", input.UserID, "error", err)
	}

	return &MarkPaidOutput{Bill: bill, Transaction: transaction}, nil
}

// recordPayment synthesizes the expense and transaction reflecting the
// payment, dated today and carrying the bill's amount, name and category.
func (uc *MarkPaidUseCase) recordPayment(ctx context.Context, bill *entity.Bill, now time.Time) (*entity.Transaction, error) {
	expense := entity.NewExpense(
		bill.UserID,
		bill.Amount,
		bill.Category,
		valueobject.FormatDate(now),
		now.Format("15:04"),
		bill.Name,
		"",
	)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to record bill payment expense: %w", err)
	}

	transaction := entity.NewTransaction(bill.UserID, nil, &expense.ID, bill.Name, now)
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to record bill payment transaction: %w", err)
	}

	return transaction, nil
}
