// Package runway contains the balance, burn-rate and runway-projection use cases.
package runway

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
	"github.com/smartspend/backend/internal/domain/valueobject"
)

type fakeIncomeRepo struct {
	incomes []*entity.Income
}

func (r *fakeIncomeRepo) Create(_ context.Context, income *entity.Income) error {
	r.incomes = append(r.incomes, income)
	return nil
}

func (r *fakeIncomeRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Income, error) {
	return r.incomes, nil
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

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func income(amount string) *entity.Income {
	return entity.NewIncome(uuid.Nil, decimal.RequireFromString(amount), entity.PayFrequencyMonthly)
}

func expense(amount, date string) *entity.Expense {
	return entity.NewExpense(uuid.Nil, decimal.RequireFromString(amount), valueobject.CategoryNeed, date, "12:00", "", "")
}

func TestBalanceUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("sums incomes minus expenses exactly", func(t *testing.T) {
		incomeRepo := &fakeIncomeRepo{incomes: []*entity.Income{
			income("1000.00"),
			income("0.10"),
		}}
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			expense("0.20", "2024-05-01"),
			expense("199.90", "2024-05-02"),
		}}

		uc := NewBalanceUseCase(incomeRepo, expenseRepo)
		got, err := uc.Execute(ctx, BalanceInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.RequireFromString("800.00"); !got.Equal(want) {
			t.Errorf("expected balance %s, got %s", want, got)
		}
	})

	t.Run("empty record set yields zero", func(t *testing.T) {
		uc := NewBalanceUseCase(&fakeIncomeRepo{}, &fakeExpenseRepo{})
		got, err := uc.Execute(ctx, BalanceInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !got.IsZero() {
			t.Errorf("expected zero balance, got %s", got)
		}
	})

	t.Run("balance can go negative", func(t *testing.T) {
		incomeRepo := &fakeIncomeRepo{incomes: []*entity.Income{income("100")}}
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{expense("250", "2024-05-01")}}

		uc := NewBalanceUseCase(incomeRepo, expenseRepo)
		got, err := uc.Execute(ctx, BalanceInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.RequireFromString("-150"); !got.Equal(want) {
			t.Errorf("expected balance %s, got %s", want, got)
		}
	})
}

func TestBurnRateUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)}

	t.Run("averages over distinct active days only", func(t *testing.T) {
		// Three expenses across two calendar days: (30+10+20)/2 = 30.
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			expense("30.00", "2024-05-18"),
			expense("10.00", "2024-05-19"),
			expense("20.00", "2024-05-19"),
		}}

		uc := NewBurnRateUseCase(expenseRepo, clock)
		got, err := uc.Execute(ctx, BurnRateInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.RequireFromString("30.00"); !got.Equal(want) {
			t.Errorf("expected burn rate %s, got %s", want, got)
		}
	})

	t.Run("ignores expenses outside the window", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			expense("500.00", "2024-01-01"), // far in the past
			expense("500.00", "2024-06-01"), // future-dated
			expense("40.00", "2024-05-20"),
		}}

		uc := NewBurnRateUseCase(expenseRepo, clock)
		got, err := uc.Execute(ctx, BurnRateInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.RequireFromString("40.00"); !got.Equal(want) {
			t.Errorf("expected burn rate %s, got %s", want, got)
		}
	})

	t.Run("skips unparsable dates without failing", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			expense("10.00", "not-a-date"),
			expense("25.00", "2024-05-19"),
		}}

		uc := NewBurnRateUseCase(expenseRepo, clock)
		got, err := uc.Execute(ctx, BurnRateInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.RequireFromString("25.00"); !got.Equal(want) {
			t.Errorf("expected burn rate %s, got %s", want, got)
		}
	})

	t.Run("no spending yields zero", func(t *testing.T) {
		uc := NewBurnRateUseCase(&fakeExpenseRepo{}, clock)
		got, err := uc.Execute(ctx, BurnRateInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !got.IsZero() {
			t.Errorf("expected zero burn rate, got %s", got)
		}
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		// 10/3 = 3.333... over three active days.
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			expense("4.00", "2024-05-17"),
			expense("3.00", "2024-05-18"),
			expense("3.00", "2024-05-19"),
		}}

		uc := NewBurnRateUseCase(expenseRepo, clock)
		got, err := uc.Execute(ctx, BurnRateInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.RequireFromString("3.33"); !got.Equal(want) {
			t.Errorf("expected burn rate %s, got %s", want, got)
		}
	})
}

func TestDaysLeftUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)}

	newDaysLeft := func(incomeRepo *fakeIncomeRepo, expenseRepo *fakeExpenseRepo) *DaysLeftUseCase {
		return NewDaysLeftUseCase(
			NewBalanceUseCase(incomeRepo, expenseRepo),
			NewBurnRateUseCase(expenseRepo, clock),
		)
	}

	t.Run("divides balance by burn rate", func(t *testing.T) {
		incomeRepo := &fakeIncomeRepo{incomes: []*entity.Income{income("1050.00")}}
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{expense("50.00", "2024-05-19")}}

		uc := newDaysLeft(incomeRepo, expenseRepo)
		got, err := uc.Execute(ctx, DaysLeftInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// (1050-50)/50 = 20 days.
		if want := decimal.RequireFromString("20"); !got.Equal(want) {
			t.Errorf("expected %s days left, got %s", want, got)
		}
	})

	t.Run("zero burn hits the ceiling regardless of balance", func(t *testing.T) {
		incomeRepo := &fakeIncomeRepo{} // zero balance, zero burn
		expenseRepo := &fakeExpenseRepo{}

		uc := newDaysLeft(incomeRepo, expenseRepo)
		got, err := uc.Execute(ctx, DaysLeftInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.NewFromInt(RunwayCeilingDays); !got.Equal(want) {
			t.Errorf("expected ceiling %s, got %s", want, got)
		}
	})

	t.Run("negative balance hits the ceiling when burn is zero", func(t *testing.T) {
		incomeRepo := &fakeIncomeRepo{}
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			// Outside the burn window but still counted in the balance.
			expense("300.00", "2023-01-01"),
		}}

		uc := newDaysLeft(incomeRepo, expenseRepo)
		got, err := uc.Execute(ctx, DaysLeftInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.NewFromInt(RunwayCeilingDays); !got.Equal(want) {
			t.Errorf("expected ceiling %s, got %s", want, got)
		}
	})

	t.Run("negative balance with positive burn is not clamped", func(t *testing.T) {
		incomeRepo := &fakeIncomeRepo{incomes: []*entity.Income{income("10.00")}}
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{expense("60.00", "2024-05-19")}}

		uc := newDaysLeft(incomeRepo, expenseRepo)
		got, err := uc.Execute(ctx, DaysLeftInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// (10-60)/60 = -0.8333 -> -0.83.
		if want := decimal.RequireFromString("-0.83"); !got.Equal(want) {
			t.Errorf("expected %s days left, got %s", want, got)
		}
	})
}

func TestForecastUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)}

	t.Run("uses only the trailing week", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			expense("14.00", "2024-05-15"),
			expense("21.00", "2024-05-18"),
			expense("700.00", "2024-05-01"), // outside the seven-day window
		}}

		uc := NewForecastUseCase(expenseRepo, clock)
		got, err := uc.Execute(ctx, ForecastInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// (14+21)/2 active days = 17.50.
		if want := decimal.RequireFromString("17.50"); !got.Equal(want) {
			t.Errorf("expected forecast %s, got %s", want, got)
		}
	})

	t.Run("no recent spending yields zero", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			expense("100.00", "2024-04-01"),
		}}

		uc := NewForecastUseCase(expenseRepo, clock)
		got, err := uc.Execute(ctx, ForecastInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !got.IsZero() {
			t.Errorf("expected zero forecast, got %s", got)
		}
	})
}
