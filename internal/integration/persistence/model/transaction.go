package model

import (
	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database. The
// income/expense references are weak: no foreign key constraint, since the
// referenced record may legitimately be absent.
type TransactionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_transactions_user_created"`
	IncomeID  *uuid.UUID `gorm:"type:uuid"`
	ExpenseID *uuid.UUID `gorm:"type:uuid"`
	Merchant  string     `gorm:"type:varchar(255)"`
	CreatedAt string     `gorm:"type:varchar(40);not null;index:idx_transactions_user_created"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		IncomeID:  m.IncomeID,
		ExpenseID: m.ExpenseID,
		Merchant:  m.Merchant,
		CreatedAt: m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:        transaction.ID,
		UserID:    transaction.UserID,
		IncomeID:  transaction.IncomeID,
		ExpenseID: transaction.ExpenseID,
		Merchant:  transaction.Merchant,
		CreatedAt: transaction.CreatedAt,
	}
}
