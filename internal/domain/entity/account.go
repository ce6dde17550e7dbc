// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType represents the kind of account holding shared funds.
type AccountType string

const (
	AccountTypeEwallet AccountType = "ewallet"
	AccountTypeBank    AccountType = "bank"
)

// Account is a bank or e-wallet balance tracked independently of transaction
// history. Balance is authoritative and may go negative; it is never derived
// from transactions.
type Account struct {
	ID            uuid.UUID
	Name          string
	Type          AccountType
	Provider      string
	AccountNumber *string
	Balance       int64
	Icon          *string
	CreatedAt     time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(name string, accountType AccountType, provider string, accountNumber *string, balance int64, icon *string) *Account {
	return &Account{
		ID:            uuid.New(),
		Name:          name,
		Type:          accountType,
		Provider:      provider,
		AccountNumber: accountNumber,
		Balance:       balance,
		Icon:          icon,
		CreatedAt:     time.Now().UTC(),
	}
}
