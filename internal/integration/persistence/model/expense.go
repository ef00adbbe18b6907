package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
	"github.com/smartspend/backend/internal/domain/valueobject"
)

// ExpenseModel represents the expenses table in the database. Date and Time
// are stored as strings in the wire format; lexical order on Date matches
// chronological order, and legacy rows may carry unparsable values.
type ExpenseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(30);not null;index"`
	Date      string          `gorm:"type:varchar(30);not null;index"`
	Time      string          `gorm:"type:varchar(10)"`
	Merchant  string          `gorm:"type:varchar(255)"`
	Mood      string          `gorm:"type:varchar(30)"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Category:  valueobject.Category(m.Category),
		Date:      m.Date,
		Time:      m.Time,
		Merchant:  m.Merchant,
		Mood:      m.Mood,
		CreatedAt: m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:        expense.ID,
		UserID:    expense.UserID,
		Amount:    expense.Amount,
		Category:  string(expense.Category),
		Date:      expense.Date,
		Time:      expense.Time,
		Merchant:  expense.Merchant,
		Mood:      expense.Mood,
		CreatedAt: expense.CreatedAt,
	}
}
