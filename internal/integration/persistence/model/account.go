// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Type          string    `gorm:"type:varchar(10);not null;index"`
	Provider      string    `gorm:"type:varchar(50)"`
	AccountNumber *string   `gorm:"type:varchar(50)"`
	Balance       int64     `gorm:"type:bigint;not null;default:0"`
	Icon          *string   `gorm:"type:varchar(10)"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:            m.ID,
		Name:          m.Name,
		Type:          entity.AccountType(m.Type),
		Provider:      m.Provider,
		AccountNumber: m.AccountNumber,
		Balance:       m.Balance,
		Icon:          m.Icon,
		CreatedAt:     m.CreatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:            account.ID,
		Name:          account.Name,
		Type:          string(account.Type),
		Provider:      account.Provider,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
		Icon:          account.Icon,
		CreatedAt:     account.CreatedAt,
	}
}
