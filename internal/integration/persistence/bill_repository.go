package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/domain/valueobject"
	"github.com/smartspend/backend/internal/integration/persistence/model"
)

// openStatuses are the bill statuses that participate in upcoming windows
// and summary totals.
var openStatuses = []string{
	string(entity.BillStatusActive),
	string(entity.BillStatusUpcoming),
}

// next7Cutoff returns the date seven days after today in the wire format,
// falling back to today itself when the reference date does not parse.
func next7Cutoff(today string) string {
	d, err := valueobject.ParseDate(today)
	if err != nil {
		return today
	}
	return valueobject.FormatDate(d.AddDate(0, 0, 7))
}

// billRepository implements the adapter.BillRepository interface.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository instance.
func NewBillRepository(db *gorm.DB) adapter.BillRepository {
	return &billRepository{
		db: db,
	}
}

// Create creates a new bill in the database.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	billModel := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a bill by ID scoped to a user.
func (r *billRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Bill, error) {
	var billModel model.BillModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillNotFound,
				"bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindByFilter retrieves bills matching the filter, ascending by due date.
// Date comparisons are lexical; the wire date format makes that match
// chronological order.
func (r *billRepository) FindByFilter(ctx context.Context, filter adapter.BillFilter) ([]*entity.Bill, error) {
	query := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", strings.ToLower(filter.Search)+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Cadence != "" {
		query = query.Where("cadence = ?", filter.Cadence)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	switch filter.Due {
	case adapter.BillDueToday:
		query = query.Where("next_due = ?", filter.Today)
	case adapter.BillDueNext7:
		cutoff := next7Cutoff(filter.Today)
		query = query.Where("next_due >= ? AND next_due <= ?", filter.Today, cutoff)
	case adapter.BillDueOverdue:
		query = query.Where("next_due < ?", filter.Today)
	}

	var billModels []model.BillModel
	result := query.Order("next_due ASC").Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.Bill, len(billModels))
	for i, bm := range billModels {
		bills[i] = bm.ToEntity()
	}
	return bills, nil
}

// FindUpcoming retrieves open bills due within [from, to], ascending by due
// date, capped at limit.
func (r *billRepository) FindUpcoming(ctx context.Context, userID uuid.UUID, from, to string, limit int) ([]*entity.Bill, error) {
	var billModels []model.BillModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, openStatuses).
		Where("next_due >= ? AND next_due <= ?", from, to).
		Order("next_due ASC").
		Limit(limit).
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.Bill, len(billModels))
	for i, bm := range billModels {
		bills[i] = bm.ToEntity()
	}
	return bills, nil
}

// GetSummary aggregates open bills for a user. Next7 has no lower bound:
// overdue bills still need paying and stay in the near-term total.
func (r *billRepository) GetSummary(ctx context.Context, userID uuid.UUID, next7Cutoff string) (*adapter.BillSummary, error) {
	summary := &adapter.BillSummary{}

	var totalResult struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND status IN ?", userID, openStatuses).
		Scan(&totalResult).Error; err != nil {
		return nil, err
	}
	summary.TotalThisMonth = totalResult.Total

	var next7Result struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND status IN ?", userID, openStatuses).
		Where("next_due <= ?", next7Cutoff).
		Scan(&next7Result).Error; err != nil {
		return nil, err
	}
	summary.Next7 = next7Result.Total

	if err := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Where("user_id = ? AND status IN ?", userID, openStatuses).
		Count(&summary.ActiveCount).Error; err != nil {
		return nil, err
	}

	return summary, nil
}

// Update persists mutable bill fields.
func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	billModel := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// AdvanceDue advances next_due and resets status to upcoming, conditional on
// the stored next_due still matching prevNextDue. A zero rows-affected result
// means a concurrent mark-paid won the race.
func (r *billRepository) AdvanceDue(ctx context.Context, id, userID uuid.UUID, prevNextDue, nextDue, paidOn string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Where("id = ? AND user_id = ? AND next_due = ?", id, userID, prevNextDue).
		Updates(map[string]any{
			"next_due":  nextDue,
			"last_paid": paidOn,
			"status":    string(entity.BillStatusUpcoming),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a bill scoped to a user.
func (r *billRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.BillModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewBillError(
			domainerror.ErrCodeBillNotFound,
			"bill not found",
			domainerror.ErrBillNotFound,
		)
	}
	return nil
}
