// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/domain/valueobject"
)

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *fakeExpenseRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Expense, error) {
	return r.expenses, nil
}

type fakeBillRepo struct {
	bills []*entity.Bill
}

func (r *fakeBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	r.bills = append(r.bills, bill)
	return nil
}

func (r *fakeBillRepo) FindByIDAndUser(_ context.Context, _, _ uuid.UUID) (*entity.Bill, error) {
	return nil, domainerror.ErrBillNotFound
}

func (r *fakeBillRepo) FindByFilter(_ context.Context, _ adapter.BillFilter) ([]*entity.Bill, error) {
	return r.bills, nil
}

func (r *fakeBillRepo) FindUpcoming(_ context.Context, _ uuid.UUID, _, _ string, _ int) ([]*entity.Bill, error) {
	return nil, nil
}

func (r *fakeBillRepo) GetSummary(_ context.Context, _ uuid.UUID, _ string) (*adapter.BillSummary, error) {
	return &adapter.BillSummary{}, nil
}

func (r *fakeBillRepo) Update(_ context.Context, _ *entity.Bill) error { return nil }

func (r *fakeBillRepo) AdvanceDue(_ context.Context, _, _ uuid.UUID, _, _, _ string) (bool, error) {
	return false, nil
}

func (r *fakeBillRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

type fakeSummaryCache struct {
	invalidated int
}

func (c *fakeSummaryCache) Get(_ context.Context, _ uuid.UUID) ([]byte, error) { return nil, nil }

func (c *fakeSummaryCache) Set(_ context.Context, _ uuid.UUID, _ []byte, _ time.Duration) error {
	return nil
}

func (c *fakeSummaryCache) Invalidate(_ context.Context, _ uuid.UUID) error {
	c.invalidated++
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, 3, 1, 14, 45, 0, 0, time.UTC)}
	userID := uuid.New()

	newUseCase := func() (*CreateExpenseUseCase, *fakeExpenseRepo, *fakeBillRepo, *fakeSummaryCache) {
		expenseRepo := &fakeExpenseRepo{}
		billRepo := &fakeBillRepo{}
		cache := &fakeSummaryCache{}
		return NewCreateExpenseUseCase(expenseRepo, billRepo, cache, clock), expenseRepo, billRepo, cache
	}

	t.Run("plain expense does not spawn a bill", func(t *testing.T) {
		uc, expenseRepo, billRepo, cache := newUseCase()

		output, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:   userID,
			Amount:   decimal.RequireFromString("12.50"),
			Category: valueobject.CategoryWants,
			Merchant: "Starbucks",
			Mood:     "happy",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Bill != nil {
			t.Error("expected no bill for a non-recurring expense")
		}
		if len(expenseRepo.expenses) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(expenseRepo.expenses))
		}
		if len(billRepo.bills) != 0 {
			t.Errorf("expected 0 bills, got %d", len(billRepo.bills))
		}
		if cache.invalidated != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("defaults date, time and mood from the clock", func(t *testing.T) {
		uc, expenseRepo, _, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:   userID,
			Amount:   decimal.RequireFromString("5"),
			Category: valueobject.CategoryNeed,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		created := expenseRepo.expenses[0]
		if created.Date != "2024-03-01" {
			t.Errorf("expected date 2024-03-01, got %s", created.Date)
		}
		if created.Time != "14:45" {
			t.Errorf("expected time 14:45, got %s", created.Time)
		}
		if created.Mood != DefaultMood {
			t.Errorf("expected mood %s, got %s", DefaultMood, created.Mood)
		}
	})

	t.Run("recurring need spawns a bill anchored at the expense date", func(t *testing.T) {
		uc, expenseRepo, billRepo, _ := newUseCase()

		output, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:    userID,
			Amount:    decimal.RequireFromString("80.00"),
			Category:  valueobject.CategoryNeed,
			Recurring: true,
			Date:      "2024-03-01",
			BillName:  "Internet",
			Cadence:   "biweekly",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Bill == nil {
			t.Fatal("expected a spawned bill")
		}
		if len(billRepo.bills) != 1 {
			t.Fatalf("expected 1 bill, got %d", len(billRepo.bills))
		}

		created := expenseRepo.expenses[0]
		if created.Category != valueobject.CategoryNeedRecurrence {
			t.Errorf("expected stored category need_recurrence, got %s", created.Category)
		}

		bill := billRepo.bills[0]
		if bill.Name != "Internet" {
			t.Errorf("expected bill name Internet, got %s", bill.Name)
		}
		if !bill.Amount.Equal(decimal.RequireFromString("80.00")) {
			t.Errorf("expected bill amount 80.00, got %s", bill.Amount)
		}
		if bill.LastPaid != "2024-03-01" {
			t.Errorf("expected last paid 2024-03-01, got %s", bill.LastPaid)
		}
		if bill.NextDue != "2024-03-15" {
			t.Errorf("expected next due 2024-03-15, got %s", bill.NextDue)
		}
		if bill.Status != entity.BillStatusActive {
			t.Errorf("expected status active, got %s", bill.Status)
		}
	})

	t.Run("recurring wants stays a plain expense", func(t *testing.T) {
		uc, expenseRepo, billRepo, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:    userID,
			Amount:    decimal.RequireFromString("30"),
			Category:  valueobject.CategoryWants,
			Recurring: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if expenseRepo.expenses[0].Category != valueobject.CategoryWants {
			t.Errorf("expected category wants, got %s", expenseRepo.expenses[0].Category)
		}
		if len(billRepo.bills) != 0 {
			t.Errorf("expected 0 bills, got %d", len(billRepo.bills))
		}
	})

	t.Run("recurring need without a bill name writes nothing", func(t *testing.T) {
		uc, expenseRepo, billRepo, cache := newUseCase()

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:    userID,
			Amount:    decimal.RequireFromString("80"),
			Category:  valueobject.CategoryNeed,
			Recurring: true,
			Date:      "2024-03-01",
		})
		if !errors.Is(err, domainerror.ErrMissingBillName) {
			t.Fatalf("expected ErrMissingBillName, got %v", err)
		}

		if len(expenseRepo.expenses) != 0 {
			t.Errorf("expected no expense written, got %d", len(expenseRepo.expenses))
		}
		if len(billRepo.bills) != 0 {
			t.Errorf("expected no bill written, got %d", len(billRepo.bills))
		}
		if cache.invalidated != 0 {
			t.Errorf("expected no cache invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("recurring need with unparsable date writes nothing", func(t *testing.T) {
		uc, expenseRepo, _, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:    userID,
			Amount:    decimal.RequireFromString("80"),
			Category:  valueobject.CategoryNeed,
			Recurring: true,
			Date:      "03/01/2024",
			BillName:  "Internet",
		})
		if !errors.Is(err, domainerror.ErrInvalidExpenseDate) {
			t.Fatalf("expected ErrInvalidExpenseDate, got %v", err)
		}

		if len(expenseRepo.expenses) != 0 {
			t.Errorf("expected no expense written, got %d", len(expenseRepo.expenses))
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		uc, _, _, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:   userID,
			Amount:   decimal.RequireFromString("-1"),
			Category: valueobject.CategoryNeed,
		})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("rejects unknown base categories", func(t *testing.T) {
		uc, _, _, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:   userID,
			Amount:   decimal.RequireFromString("10"),
			Category: valueobject.Category("splurge"),
		})
		if !errors.Is(err, domainerror.ErrInvalidExpenseCategory) {
			t.Fatalf("expected ErrInvalidExpenseCategory, got %v", err)
		}
	})
}
