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

// residentRepository implements the adapter.ResidentRepository interface.
type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository creates a new resident repository instance.
func NewResidentRepository(db *gorm.DB) adapter.ResidentRepository {
	return &residentRepository{
		db: db,
	}
}

// Create creates a new resident in the database.
func (r *residentRepository) Create(ctx context.Context, resident *entity.Resident) error {
	residentModel := model.ResidentFromEntity(resident)
	result := r.db.WithContext(ctx).Create(residentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a resident by its ID.
func (r *residentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	var residentModel model.ResidentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&residentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrResidentNotFound
		}
		return nil, result.Error
	}
	return residentModel.ToEntity(), nil
}

// FindAll retrieves all residents ordered by name.
func (r *residentRepository) FindAll(ctx context.Context) ([]*entity.Resident, error) {
	var residentModels []model.ResidentModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&residentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	residents := make([]*entity.Resident, len(residentModels))
	for i, rm := range residentModels {
		residents[i] = rm.ToEntity()
	}
	return residents, nil
}

// Update updates an existing resident in the database.
func (r *residentRepository) Update(ctx context.Context, resident *entity.Resident) error {
	residentModel := model.ResidentFromEntity(resident)
	result := r.db.WithContext(ctx).Save(residentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a resident from the database.
func (r *residentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ResidentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
