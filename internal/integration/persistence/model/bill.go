package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
	"github.com/smartspend/backend/internal/domain/valueobject"
)

// BillModel represents the bills table in the database. LastPaid and NextDue
// are wire-format date strings so range filters compare lexically.
type BillModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_bills_user_status_due"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(30)"`
	Cadence   string          `gorm:"type:varchar(20);not null"`
	Status    string          `gorm:"type:varchar(20);not null;index:idx_bills_user_status_due"`
	LastPaid  string          `gorm:"type:varchar(30)"`
	NextDue   string          `gorm:"type:varchar(30);not null;index:idx_bills_user_status_due"`
	Notes     string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BillModel.
func (BillModel) TableName() string {
	return "bills"
}

// ToEntity converts a BillModel to a domain Bill entity.
func (m *BillModel) ToEntity() *entity.Bill {
	return &entity.Bill{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		Category:  valueobject.Category(m.Category),
		Cadence:   valueobject.Cadence(m.Cadence),
		Status:    entity.BillStatus(m.Status),
		LastPaid:  m.LastPaid,
		NextDue:   m.NextDue,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// BillFromEntity creates a BillModel from a domain Bill entity.
func BillFromEntity(bill *entity.Bill) *BillModel {
	return &BillModel{
		ID:        bill.ID,
		UserID:    bill.UserID,
		Name:      bill.Name,
		Amount:    bill.Amount,
		Category:  string(bill.Category),
		Cadence:   string(bill.Cadence),
		Status:    string(bill.Status),
		LastPaid:  bill.LastPaid,
		NextDue:   bill.NextDue,
		Notes:     bill.Notes,
		CreatedAt: bill.CreatedAt,
	}
}
