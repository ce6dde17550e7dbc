// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// ResidentModel represents the residents table in the database.
type ResidentModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string    `gorm:"type:varchar(100);not null"`
	DefaultMonthlyAmount int64     `gorm:"type:bigint;not null;default:0"`
	RoomType             string    `gorm:"type:varchar(10);not null"`
	Floor                string    `gorm:"type:varchar(10);not null"`
	CreatedAt            time.Time `gorm:"not null"`
}

// TableName returns the table name for the ResidentModel.
func (ResidentModel) TableName() string {
	return "residents"
}

// ToEntity converts a ResidentModel to a domain Resident entity.
func (m *ResidentModel) ToEntity() *entity.Resident {
	return &entity.Resident{
		ID:                   m.ID,
		Name:                 m.Name,
		DefaultMonthlyAmount: m.DefaultMonthlyAmount,
		RoomType:             entity.RoomType(m.RoomType),
		Floor:                entity.Floor(m.Floor),
		CreatedAt:            m.CreatedAt,
	}
}

// ResidentFromEntity creates a ResidentModel from a domain Resident entity.
func ResidentFromEntity(resident *entity.Resident) *ResidentModel {
	return &ResidentModel{
		ID:                   resident.ID,
		Name:                 resident.Name,
		DefaultMonthlyAmount: resident.DefaultMonthlyAmount,
		RoomType:             string(resident.RoomType),
		Floor:                string(resident.Floor),
		CreatedAt:            resident.CreatedAt,
	}
}
