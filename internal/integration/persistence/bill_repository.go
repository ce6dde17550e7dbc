// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/integration/persistence/model"
)

// billRepository implements the adapter.BillRepository interface.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new monthly bill repository instance.
func NewBillRepository(db *gorm.DB) adapter.BillRepository {
	return &billRepository{
		db: db,
	}
}

// CreateBatch inserts all given bills atomically. A unique-index collision
// rolls the whole batch back and surfaces as gorm.ErrDuplicatedKey.
func (r *billRepository) CreateBatch(ctx context.Context, bills []*entity.MonthlyBill) error {
	billModels := make([]*model.MonthlyBillModel, len(bills))
	for i, b := range bills {
		billModels[i] = model.MonthlyBillFromEntity(b)
	}
	result := r.db.WithContext(ctx).Create(billModels)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a bill by its ID.
func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MonthlyBill, error) {
	var billModel model.MonthlyBillModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillNotFound
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindByPeriod retrieves all bills for the (year, month) with their resident
// and category rows, ordered by resident then category name.
func (r *billRepository) FindByPeriod(ctx context.Context, year, month int) ([]*entity.MonthlyBillWithRelations, error) {
	var billModels []model.MonthlyBillModel
	result := r.db.WithContext(ctx).
		Preload("Resident").
		Preload("Category").
		Joins("JOIN residents ON residents.id = monthly_bills.resident_id").
		Joins("JOIN categories ON categories.id = monthly_bills.category_id").
		Where("monthly_bills.year = ? AND monthly_bills.month = ?", year, month).
		Order("residents.name ASC, categories.name ASC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.MonthlyBillWithRelations, len(billModels))
	for i := range billModels {
		bills[i] = billModels[i].ToEntityWithRelations()
	}
	return bills, nil
}

// Update updates an existing bill in the database.
func (r *billRepository) Update(ctx context.Context, bill *entity.MonthlyBill) error {
	billModel := model.MonthlyBillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
