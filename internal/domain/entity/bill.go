package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/valueobject"
)

// BillStatus represents the lifecycle state of a bill.
type BillStatus string

const (
	BillStatusActive   BillStatus = "active"
	BillStatusUpcoming BillStatus = "upcoming"
	BillStatusPaused   BillStatus = "paused"
)

// Bill is a trackable recurring obligation. Bills are created automatically
// when a recurring expense is logged, advanced by mark-paid, and terminated
// only by explicit deletion.
//
// LastPaid and NextDue are calendar dates in the wire date format; for an
// active bill NextDue is always >= LastPaid.
type Bill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	Category  valueobject.Category
	Cadence   valueobject.Cadence
	Status    BillStatus
	LastPaid  string // "2006-01-02"
	NextDue   string // "2006-01-02"
	Notes     string
	CreatedAt time.Time
}

// NewBill creates a new active Bill entity anchored at the triggering
// expense's date.
func NewBill(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	category valueobject.Category,
	cadence valueobject.Cadence,
	lastPaid string,
	nextDue string,
	notes string,
) *Bill {
	return &Bill{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		Category:  category,
		Cadence:   cadence,
		Status:    BillStatusActive,
		LastPaid:  lastPaid,
		NextDue:   nextDue,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
}

// IsOpen reports whether the bill still participates in upcoming-bill
// windows and summary totals (active and upcoming are treated alike).
func (b *Bill) IsOpen() bool {
	return b.Status == BillStatusActive || b.Status == BillStatusUpcoming
}
