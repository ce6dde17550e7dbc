// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(50);not null"`
	Type             string    `gorm:"type:varchar(10);not null;index"`
	DefaultPerPerson *int64    `gorm:"type:bigint"`
	CreatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:               m.ID,
		Name:             m.Name,
		Type:             entity.CategoryType(m.Type),
		DefaultPerPerson: m.DefaultPerPerson,
		CreatedAt:        m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:               category.ID,
		Name:             category.Name,
		Type:             string(category.Type),
		DefaultPerPerson: category.DefaultPerPerson,
		CreatedAt:        category.CreatedAt,
	}
}
