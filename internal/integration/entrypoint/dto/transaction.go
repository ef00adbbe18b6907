package dto

import (
	"github.com/smartspend/backend/internal/application/usecase/transaction"
	"github.com/smartspend/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a
// transaction. At most one of IncomeID/ExpenseID should be set.
type CreateTransactionRequest struct {
	IncomeID  *string `json:"income_id"`
	ExpenseID *string `json:"expense_id"`
	Merchant  string  `json:"merchant"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Merchant  string `json:"merchant,omitempty"`
	Category  string `json:"category,omitempty"`
	Mood      string `json:"mood,omitempty"`
	Amount    string `json:"amount,omitempty"`
}

// RollupResponse represents the current-month income/expense rollup.
type RollupResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// ListTransactionsResponse represents the response for a transaction query.
type ListTransactionsResponse struct {
	Items  []TransactionResponse `json:"items"`
	Rollup RollupResponse        `json:"rollup"`
}

// ToTransactionResponse converts a raw transaction record to its DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID.String(),
		CreatedAt: t.CreatedAt,
		Merchant:  t.Merchant,
	}
}

// ToTransactionViewResponse converts a materialized transaction view to its DTO.
func ToTransactionViewResponse(view *entity.TransactionView) TransactionResponse {
	return TransactionResponse{
		ID:        view.ID.String(),
		CreatedAt: view.CreatedAt,
		Merchant:  view.Merchant,
		Category:  string(view.Category),
		Mood:      view.Mood,
		Amount:    view.Amount.String(),
	}
}

// ToRollupResponse converts a rollup aggregate to its DTO.
func ToRollupResponse(rollup transaction.Rollup) RollupResponse {
	return RollupResponse{
		Income:  rollup.Income.String(),
		Expense: rollup.Expense.String(),
		Net:     rollup.Net.String(),
	}
}
