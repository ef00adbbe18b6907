package dto

import (
	"time"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// UpdateBillRequest represents the request body for a partial bill update.
// At least one field must be present.
type UpdateBillRequest struct {
	Name     *string  `json:"name"`
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Cadence  *string  `json:"cadence"`
	NextDue  *string  `json:"next_due"`
	Status   *string  `json:"status"`
	Notes    *string  `json:"notes"`
}

// BillResponse represents a bill in API responses.
type BillResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Cadence   string    `json:"cadence"`
	Status    string    `json:"status"`
	LastPaid  string    `json:"last_paid"`
	NextDue   string    `json:"next_due"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BillSummaryResponse represents the open-bill summary block.
type BillSummaryResponse struct {
	TotalThisMonth string `json:"total_this_month"`
	Next7          string `json:"next7"`
	ActiveCount    int64  `json:"active_count"`
}

// ListBillsResponse represents the response for bill listing.
type ListBillsResponse struct {
	Bills   []BillResponse      `json:"bills"`
	Summary BillSummaryResponse `json:"summary"`
}

// MarkPaidResponse represents the response for marking a bill paid: the bill
// with its advanced due date plus the recorded payment transaction.
type MarkPaidResponse struct {
	Bill        BillResponse        `json:"bill"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToBillResponse converts a domain Bill entity to a BillResponse DTO.
func ToBillResponse(bill *entity.Bill) BillResponse {
	return BillResponse{
		ID:        bill.ID.String(),
		Name:      bill.Name,
		Amount:    bill.Amount.String(),
		Category:  string(bill.Category),
		Cadence:   string(bill.Cadence),
		Status:    string(bill.Status),
		LastPaid:  bill.LastPaid,
		NextDue:   bill.NextDue,
		Notes:     bill.Notes,
		CreatedAt: bill.CreatedAt,
	}
}

// ToBillSummaryResponse converts an aggregated bill summary to its DTO.
func ToBillSummaryResponse(summary *adapter.BillSummary) BillSummaryResponse {
	return BillSummaryResponse{
		TotalThisMonth: summary.TotalThisMonth.String(),
		Next7:          summary.Next7.String(),
		ActiveCount:    summary.ActiveCount,
	}
}
