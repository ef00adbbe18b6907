package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PayFrequency   string          `gorm:"type:varchar(20);not null"`
	WeeklyDays     string          `gorm:"type:varchar(100)"`
	BiweeklyAnchor string          `gorm:"type:varchar(30)"`
	MonthlyDate    string          `gorm:"type:varchar(10)"`
	OtherNote      string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:             m.ID,
		UserID:         m.UserID,
		Amount:         m.Amount,
		PayFrequency:   entity.PayFrequency(m.PayFrequency),
		WeeklyDays:     m.WeeklyDays,
		BiweeklyAnchor: m.BiweeklyAnchor,
		MonthlyDate:    m.MonthlyDate,
		OtherNote:      m.OtherNote,
		CreatedAt:      m.CreatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:             income.ID,
		UserID:         income.UserID,
		Amount:         income.Amount,
		PayFrequency:   string(income.PayFrequency),
		WeeklyDays:     income.WeeklyDays,
		BiweeklyAnchor: income.BiweeklyAnchor,
		MonthlyDate:    income.MonthlyDate,
		OtherNote:      income.OtherNote,
		CreatedAt:      income.CreatedAt,
	}
}
