package dto

import (
	"time"

	"github.com/smartspend/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for logging an expense.
// The bill fields are read only when the expense is recurring.
type CreateExpenseRequest struct {
	Amount    float64 `json:"amount" binding:"gte=0"`
	Category  string  `json:"category" binding:"required"`
	Recurring bool    `json:"recurring"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Merchant  string  `json:"merchant"`
	Mood      string  `json:"mood"`

	BillName     string `json:"bill_name"`
	BillCategory string `json:"bill_category"`
	Cadence      string `json:"cadence"`
	Note         string `json:"note"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Merchant  string    `json:"merchant,omitempty"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateExpenseResponse represents the response for expense creation. Bill is
// present only when the expense spawned a recurring obligation.
type CreateExpenseResponse struct {
	Expense ExpenseResponse `json:"expense"`
	Bill    *BillResponse   `json:"bill,omitempty"`
}

// ListExpensesResponse represents the response for expense listing.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        expense.ID.String(),
		Amount:    expense.Amount.String(),
		Category:  string(expense.Category),
		Date:      expense.Date,
		Time:      expense.Time,
		Merchant:  expense.Merchant,
		Mood:      expense.Mood,
		CreatedAt: expense.CreatedAt,
	}
}
