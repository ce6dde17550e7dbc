// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// MonthlyBillModel represents the monthly_bills table in the database.
// The composite unique index is the hard guarantee that a
// (year, month, resident, category) pair is billed at most once.
type MonthlyBillModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Year       int        `gorm:"not null;uniqueIndex:idx_bills_period_pair"`
	Month      int        `gorm:"not null;uniqueIndex:idx_bills_period_pair"`
	ResidentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_bills_period_pair"`
	CategoryID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_bills_period_pair"`
	AmountDue  int64      `gorm:"type:bigint;not null"`
	AmountPaid int64      `gorm:"type:bigint;not null;default:0"`
	IsPaid     bool       `gorm:"not null;default:false"`
	PaidAt     *time.Time `gorm:"type:timestamp"`
	CreatedAt  time.Time  `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Resident *ResidentModel `gorm:"foreignKey:ResidentID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the MonthlyBillModel.
func (MonthlyBillModel) TableName() string {
	return "monthly_bills"
}

// ToEntity converts a MonthlyBillModel to a domain MonthlyBill entity.
func (m *MonthlyBillModel) ToEntity() *entity.MonthlyBill {
	return &entity.MonthlyBill{
		ID:         m.ID,
		Year:       m.Year,
		Month:      m.Month,
		ResidentID: m.ResidentID,
		CategoryID: m.CategoryID,
		AmountDue:  m.AmountDue,
		AmountPaid: m.AmountPaid,
		IsPaid:     m.IsPaid,
		PaidAt:     m.PaidAt,
		CreatedAt:  m.CreatedAt,
	}
}

// ToEntityWithRelations converts a MonthlyBillModel with its preloaded
// resident and category to a MonthlyBillWithRelations entity.
func (m *MonthlyBillModel) ToEntityWithRelations() *entity.MonthlyBillWithRelations {
	result := &entity.MonthlyBillWithRelations{
		MonthlyBill: *m.ToEntity(),
	}
	if m.Resident != nil {
		result.Resident = m.Resident.ToEntity()
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// MonthlyBillFromEntity creates a MonthlyBillModel from a domain MonthlyBill entity.
func MonthlyBillFromEntity(bill *entity.MonthlyBill) *MonthlyBillModel {
	return &MonthlyBillModel{
		ID:         bill.ID,
		Year:       bill.Year,
		Month:      bill.Month,
		ResidentID: bill.ResidentID,
		CategoryID: bill.CategoryID,
		AmountDue:  bill.AmountDue,
		AmountPaid: bill.AmountPaid,
		IsPaid:     bill.IsPaid,
		PaidAt:     bill.PaidAt,
		CreatedAt:  bill.CreatedAt,
	}
}
