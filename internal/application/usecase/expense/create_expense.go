// Package expense contains expense-related use cases.
package expense

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

// DefaultMood is applied when the caller does not report a mood.
const DefaultMood = "neutral"

// timeLayout is the wire format for the time-of-day field.
const timeLayout = "15:04"

// CreateExpenseInput represents the input for logging an expense.
type CreateExpenseInput struct {
	UserID   uuid.UUID
	Amount   decimal.Decimal
	Category valueobject.Category // base category: need/wants/guilts
	// Recurring marks a need as a recurring obligation; together with a need
	// category it spawns a bill.
	Recurring bool
	Date      string // optional, defaults to today
	Time      string // optional, defaults to now
	Merchant  string
	Mood      string // optional, defaults to DefaultMood

	// Bill fields, read only when the expense is recurring.
	BillName     string
	BillCategory valueobject.Category // optional, defaults to the expense category
	Cadence      string               // cadence keyword, defaults to monthly
	Note         string
}

// CreateExpenseOutput represents the output of logging an expense.
type CreateExpenseOutput struct {
	Expense *entity.Expense
	// Bill is the recurring obligation spawned by a recurring expense, nil
	// otherwise.
	Bill *entity.Bill
}

// CreateExpenseUseCase handles expense creation, including the bill spawn for
// recurring needs. All validation happens before the first write so a failed
// request leaves no partial records behind.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	billRepo    adapter.BillRepository
	cache       adapter.SummaryCache
	clock       adapter.Clock
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	billRepo adapter.BillRepository,
	cache adapter.SummaryCache,
	clock adapter.Clock,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		billRepo:    billRepo,
		cache:       cache,
		clock:       clock,
	}
}

// Execute logs the expense and, for recurring needs, spawns the bill.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Amount.Sign() < 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Category != valueobject.CategoryNeed &&
		input.Category != valueobject.CategoryWants &&
		input.Category != valueobject.CategoryGuilts {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"category must be 'need', 'wants' or 'guilts'",
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	now := uc.clock.Now().UTC()

	date := input.Date
	if date == "" {
		date = valueobject.FormatDate(now)
	}
	timeOfDay := input.Time
	if timeOfDay == "" {
		timeOfDay = now.Format(timeLayout)
	}
	mood := input.Mood
	if mood == "" {
		mood = DefaultMood
	}

	category := valueobject.CollapseCategory(input.Category, input.Recurring)

	// Resolve the bill before writing anything: a recurring expense with an
	// unusable date or missing name must fail whole.
	var bill *entity.Bill
	if category == valueobject.CategoryNeedRecurrence {
		var err error
		bill, err = uc.buildBill(input, date)
		if err != nil {
			return nil, err
		}
	}

	expense := entity.NewExpense(
		input.UserID,
		input.Amount,
		category,
		date,
		timeOfDay,
		input.Merchant,
		mood,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if bill != nil {
		if err := uc.billRepo.Create(ctx, bill); err != nil {
			return nil, fmt.Errorf("failed to create bill: %w", err)
		}
	}

	if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("failed to invalidate summary cache", "user_id", input.UserID, "error", err)
	}

	return &CreateExpenseOutput{Expense: expense, Bill: bill}, nil
}

// buildBill constructs the bill spawned by a recurring expense, anchored at
// the expense's date.
func (uc *CreateExpenseUseCase) buildBill(input CreateExpenseInput, date string) (*entity.Bill, error) {
	if input.BillName == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingBillName,
			"bill name is required for a recurring expense",
			domainerror.ErrMissingBillName,
		)
	}

	anchor, err := valueobject.ParseDate(date)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date must be a valid calendar date",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	billCategory := input.BillCategory
	if billCategory == "" {
		billCategory = input.Category
	}

	cadence := valueobject.ParseCadence(input.Cadence)
	nextDue := valueobject.FormatDate(cadence.NextDue(anchor))

	return entity.NewBill(
		input.UserID,
		input.BillName,
		input.Amount,
		billCategory,
		cadence,
		date,
		nextDue,
		input.Note,
	), nil
}
