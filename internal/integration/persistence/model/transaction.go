// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type            string     `gorm:"type:varchar(10);not null;index"`
	Amount          int64      `gorm:"type:bigint;not null"`
	ResidentID      *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID      *uuid.UUID `gorm:"type:uuid;index"`
	AccountID       *uuid.UUID `gorm:"type:uuid;index"`
	Description     string     `gorm:"type:text"`
	ReceiptURL      *string    `gorm:"type:text"`
	TransactionDate time.Time  `gorm:"type:date;not null;index"`
	CreatedAt       time.Time  `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Resident *ResidentModel `gorm:"foreignKey:ResidentID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		Type:            entity.TransactionType(m.Type),
		Amount:          m.Amount,
		ResidentID:      m.ResidentID,
		CategoryID:      m.CategoryID,
		AccountID:       m.AccountID,
		Description:     m.Description,
		ReceiptURL:      m.ReceiptURL,
		TransactionDate: m.TransactionDate,
		CreatedAt:       m.CreatedAt,
	}
}

// ToEntityWithRelations converts a TransactionModel with its preloaded
// resident and category to a TransactionWithRelations entity.
func (m *TransactionModel) ToEntityWithRelations() *entity.TransactionWithRelations {
	result := &entity.TransactionWithRelations{
		Transaction: *m.ToEntity(),
	}
	if m.Resident != nil {
		result.Resident = m.Resident.ToEntity()
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		Type:            string(transaction.Type),
		Amount:          transaction.Amount,
		ResidentID:      transaction.ResidentID,
		CategoryID:      transaction.CategoryID,
		AccountID:       transaction.AccountID,
		Description:     transaction.Description,
		ReceiptURL:      transaction.ReceiptURL,
		TransactionDate: transaction.TransactionDate,
		CreatedAt:       transaction.CreatedAt,
	}
}
