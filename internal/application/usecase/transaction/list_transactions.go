package transaction

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// Relative time ranges accepted by the query pipeline. Anything else,
// including "all", applies no time bound.
const (
	RangeLast7Days  = "7days"
	RangeLast30Days = "30days"
	RangeLast90Days = "90days"
	RangeAll        = "all"
)

// Sort keys accepted by the query pipeline. An empty key preserves the
// store's natural order.
const (
	SortDateUp   = "date_up"
	SortDateDown = "date_down"
	SortAmtUp    = "amt_up"
	SortAmtDown  = "amt_down"
)

// ListTransactionsInput represents the filters of a transaction query.
type ListTransactionsInput struct {
	UserID   uuid.UUID
	Merchant string // case-insensitive prefix match
	Category string // exact match
	Mood     string // exact match
	AmtMin   *decimal.Decimal
	AmtMax   *decimal.Decimal
	Range    string
	Sort     string
}

// Rollup aggregates the filtered rows falling in the current calendar month.
// Rows with no category count as income; categorized rows count as expense.
type Rollup struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// ListTransactionsOutput represents the output of a transaction query.
type ListTransactionsOutput struct {
	Items  []*entity.TransactionView
	Rollup Rollup
}

// ListTransactionsUseCase materializes, filters, sorts and rolls up a user's
// transaction view. Transactions weakly reference income/expense records; the
// pipeline resolves those references in memory and degrades to zero/empty
// display fields when a reference dangles.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	expenseRepo     adapter.ExpenseRepository
	incomeRepo      adapter.IncomeRepository
	clock           adapter.Clock
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	clock adapter.Clock,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
		incomeRepo:      incomeRepo,
		clock:           clock,
	}
}

// row pairs a materialized view with its effective timestamp so filtering and
// sorting parse created_at once.
type row struct {
	view *entity.TransactionView
	at   time.Time
}

// Execute runs the query pipeline for the given user.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	incomes, err := uc.incomeRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	expenseByID := make(map[uuid.UUID]*entity.Expense, len(expenses))
	for _, e := range expenses {
		expenseByID[e.ID] = e
	}
	incomeByID := make(map[uuid.UUID]*entity.Income, len(incomes))
	for _, i := range incomes {
		incomeByID[i.ID] = i
	}

	now := uc.clock.Now().UTC()

	rows := make([]row, 0, len(transactions))
	for _, t := range transactions {
		r := row{view: materialize(t, expenseByID, incomeByID), at: effectiveTime(t.CreatedAt, now)}
		if uc.matches(r, input, now) {
			rows = append(rows, r)
		}
	}

	sortRows(rows, input.Sort)

	items := make([]*entity.TransactionView, len(rows))
	for i, r := range rows {
		items[i] = r.view
	}

	return &ListTransactionsOutput{
		Items:  items,
		Rollup: rollup(rows, now),
	}, nil
}

// materialize resolves a transaction's weak reference into display fields.
// A dangling reference yields zero amount and empty category/mood.
func materialize(t *entity.Transaction, expenses map[uuid.UUID]*entity.Expense, incomes map[uuid.UUID]*entity.Income) *entity.TransactionView {
	view := &entity.TransactionView{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		Merchant:  t.Merchant,
	}

	if t.ExpenseID != nil {
		if e, ok := expenses[*t.ExpenseID]; ok {
			view.Merchant = e.Merchant
			view.Category = e.Category
			view.Mood = e.Mood
			view.Amount = e.Amount
		}
		return view
	}

	if t.IncomeID != nil {
		if i, ok := incomes[*t.IncomeID]; ok {
			view.Amount = i.Amount
		}
	}

	return view
}

// effectiveTime parses a row timestamp, substituting now when it does not
// parse. Malformed legacy rows must not abort the pipeline.
func effectiveTime(createdAt string, now time.Time) time.Time {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return now
	}
	return t.UTC()
}

func (uc *ListTransactionsUseCase) matches(r row, input ListTransactionsInput, now time.Time) bool {
	if input.Merchant != "" &&
		!strings.HasPrefix(strings.ToLower(r.view.Merchant), strings.ToLower(input.Merchant)) {
		return false
	}
	if input.Category != "" && string(r.view.Category) != input.Category {
		return false
	}
	if input.Mood != "" && r.view.Mood != input.Mood {
		return false
	}
	if input.AmtMin != nil && r.view.Amount.LessThan(*input.AmtMin) {
		return false
	}
	if input.AmtMax != nil && r.view.Amount.GreaterThan(*input.AmtMax) {
		return false
	}
	return inRange(r.at, input.Range, now)
}

// inRange applies the relative time bound against now at query time. Unknown
// range keywords, like "all", apply no bound.
func inRange(at time.Time, rangeKey string, now time.Time) bool {
	var days int
	switch rangeKey {
	case RangeLast7Days:
		days = 7
	case RangeLast30Days:
		days = 30
	case RangeLast90Days:
		days = 90
	default:
		return true
	}
	return now.Sub(at) <= time.Duration(days)*24*time.Hour
}

func sortRows(rows []row, key string) {
	switch key {
	case SortDateUp:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].at.Before(rows[j].at) })
	case SortDateDown:
		sort.SliceStable(rows, func(i, j int) bool { return rows[j].at.Before(rows[i].at) })
	case SortAmtUp:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].view.Amount.LessThan(rows[j].view.Amount) })
	case SortAmtDown:
		sort.SliceStable(rows, func(i, j int) bool { return rows[j].view.Amount.LessThan(rows[i].view.Amount) })
	}
}

// rollup restricts the filtered rows to the current calendar month and splits
// them by category presence: no category means an income row.
func rollup(rows []row, now time.Time) Rollup {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	income := decimal.Zero
	expense := decimal.Zero
	for _, r := range rows {
		if r.at.Before(monthStart) {
			continue
		}
		if r.view.Category == "" {
			income = income.Add(r.view.Amount)
		} else if r.view.Category.IsExpenseCategory() {
			expense = expense.Add(r.view.Amount)
		}
	}

	return Rollup{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}
