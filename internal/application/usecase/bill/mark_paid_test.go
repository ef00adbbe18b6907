// Package bill contains bill-related use cases.
package bill

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

type fakeBillRepo struct {
	bills map[uuid.UUID]*entity.Bill
	// advanceFails forces AdvanceDue to report a lost conditional update.
	advanceFails bool
}

func newFakeBillRepo(bills ...*entity.Bill) *fakeBillRepo {
	r := &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
	for _, b := range bills {
		r.bills[b.ID] = b
	}
	return r
}

func (r *fakeBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Bill, error) {
	b, ok := r.bills[id]
	if !ok || b.UserID != userID {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillNotFound, "bill not found", domainerror.ErrBillNotFound)
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBillRepo) FindByFilter(_ context.Context, _ adapter.BillFilter) ([]*entity.Bill, error) {
	return nil, nil
}

func (r *fakeBillRepo) FindUpcoming(_ context.Context, _ uuid.UUID, _, _ string, _ int) ([]*entity.Bill, error) {
	return nil, nil
}

func (r *fakeBillRepo) GetSummary(_ context.Context, _ uuid.UUID, _ string) (*adapter.BillSummary, error) {
	return &adapter.BillSummary{}, nil
}

func (r *fakeBillRepo) Update(_ context.Context, bill *entity.Bill) error {
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) AdvanceDue(_ context.Context, id, userID uuid.UUID, prevNextDue, nextDue, paidOn string) (bool, error) {
	if r.advanceFails {
		return false, nil
	}
	b, ok := r.bills[id]
	if !ok || b.UserID != userID || b.NextDue != prevNextDue {
		return false, nil
	}
	b.NextDue = nextDue
	b.LastPaid = paidOn
	b.Status = entity.BillStatusUpcoming
	return true, nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	if _, ok := r.bills[id]; !ok {
		return domainerror.ErrBillNotFound
	}
	delete(r.bills, id)
	return nil
}

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

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Transaction, error) {
	return r.transactions, nil
}

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

func TestMarkPaidUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)}
	userID := uuid.New()

	newBill := func(cadence valueobject.Cadence, nextDue string) *entity.Bill {
		return entity.NewBill(
			userID,
			"Internet",
			decimal.RequireFromString("49.99"),
			valueobject.CategoryNeed,
			cadence,
			"2024-02-16",
			nextDue,
			"",
		)
	}

	t.Run("advances biweekly due date and records one payment", func(t *testing.T) {
		bill := newBill(valueobject.CadenceBiweekly, "2024-03-01")
		billRepo := newFakeBillRepo(bill)
		expenseRepo := &fakeExpenseRepo{}
		transactionRepo := &fakeTransactionRepo{}
		cache := &fakeSummaryCache{}

		uc := NewMarkPaidUseCase(billRepo, expenseRepo, transactionRepo, cache, clock)
		output, err := uc.Execute(ctx, MarkPaidInput{UserID: userID, BillID: bill.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Bill.NextDue != "2024-03-15" {
			t.Errorf("expected next due 2024-03-15, got %s", output.Bill.NextDue)
		}
		if output.Bill.Status != entity.BillStatusUpcoming {
			t.Errorf("expected status upcoming, got %s", output.Bill.Status)
		}
		if output.Bill.LastPaid != "2024-03-02" {
			t.Errorf("expected last paid stamped today, got %s", output.Bill.LastPaid)
		}

		if len(transactionRepo.transactions) != 1 {
			t.Fatalf("expected exactly 1 transaction, got %d", len(transactionRepo.transactions))
		}
		if len(expenseRepo.expenses) != 1 {
			t.Fatalf("expected exactly 1 expense, got %d", len(expenseRepo.expenses))
		}

		payment := expenseRepo.expenses[0]
		if !payment.Amount.Equal(bill.Amount) {
			t.Errorf("expected payment amount %s, got %s", bill.Amount, payment.Amount)
		}
		if payment.Merchant != "Internet" {
			t.Errorf("expected merchant Internet, got %s", payment.Merchant)
		}
		if payment.Category != valueobject.CategoryNeed {
			t.Errorf("expected category need, got %s", payment.Category)
		}
		if payment.Date != "2024-03-02" {
			t.Errorf("expected payment dated today, got %s", payment.Date)
		}

		if transactionRepo.transactions[0].ExpenseID == nil ||
			*transactionRepo.transactions[0].ExpenseID != payment.ID {
			t.Error("expected transaction to reference the payment expense")
		}
		if cache.invalidated != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("monthly month-edge due date is clamped", func(t *testing.T) {
		bill := newBill(valueobject.CadenceMonthly, "2024-01-31")
		billRepo := newFakeBillRepo(bill)

		uc := NewMarkPaidUseCase(billRepo, &fakeExpenseRepo{}, &fakeTransactionRepo{}, &fakeSummaryCache{}, clock)
		output, err := uc.Execute(ctx, MarkPaidInput{UserID: userID, BillID: bill.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Bill.NextDue != "2024-02-28" {
			t.Errorf("expected next due 2024-02-28, got %s", output.Bill.NextDue)
		}
	})

	t.Run("unknown bill id fails with not found", func(t *testing.T) {
		uc := NewMarkPaidUseCase(newFakeBillRepo(), &fakeExpenseRepo{}, &fakeTransactionRepo{}, &fakeSummaryCache{}, clock)

		_, err := uc.Execute(ctx, MarkPaidInput{UserID: userID, BillID: uuid.New()})
		if !errors.Is(err, domainerror.ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("bill of another user is not visible", func(t *testing.T) {
		bill := newBill(valueobject.CadenceMonthly, "2024-03-10")
		uc := NewMarkPaidUseCase(newFakeBillRepo(bill), &fakeExpenseRepo{}, &fakeTransactionRepo{}, &fakeSummaryCache{}, clock)

		_, err := uc.Execute(ctx, MarkPaidInput{UserID: uuid.New(), BillID: bill.ID})
		if !errors.Is(err, domainerror.ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("lost conditional advance writes no payment", func(t *testing.T) {
		bill := newBill(valueobject.CadenceBiweekly, "2024-03-01")
		billRepo := newFakeBillRepo(bill)
		billRepo.advanceFails = true
		expenseRepo := &fakeExpenseRepo{}
		transactionRepo := &fakeTransactionRepo{}
		cache := &fakeSummaryCache{}

		uc := NewMarkPaidUseCase(billRepo, expenseRepo, transactionRepo, cache, clock)
		_, err := uc.Execute(ctx, MarkPaidInput{UserID: userID, BillID: bill.ID})
		if !errors.Is(err, domainerror.ErrBillAlreadyAdvanced) {
			t.Fatalf("expected ErrBillAlreadyAdvanced, got %v", err)
		}

		if len(expenseRepo.expenses) != 0 || len(transactionRepo.transactions) != 0 {
			t.Error("expected no payment records after a lost advance")
		}
		if cache.invalidated != 0 {
			t.Errorf("expected no cache invalidation, got %d", cache.invalidated)
		}
	})
}
