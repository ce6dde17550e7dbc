// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the type of a cash transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single cash movement in the shared fund.
// Amounts are whole rupiah and always positive; direction is conveyed by Type.
// Income transactions carry ResidentID, expense transactions carry CategoryID;
// the other tag is typically nil.
type Transaction struct {
	ID              uuid.UUID
	Type            TransactionType
	Amount          int64
	ResidentID      *uuid.UUID
	CategoryID      *uuid.UUID
	AccountID       *uuid.UUID
	Description     string
	ReceiptURL      *string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount int64,
	residentID, categoryID, accountID *uuid.UUID,
	description string,
	receiptURL *string,
	transactionDate time.Time,
) *Transaction {
	return &Transaction{
		ID:              uuid.New(),
		Type:            transactionType,
		Amount:          amount,
		ResidentID:      residentID,
		CategoryID:      categoryID,
		AccountID:       accountID,
		Description:     description,
		ReceiptURL:      receiptURL,
		TransactionDate: transactionDate,
		CreatedAt:       time.Now().UTC(),
	}
}

// TransactionWithRelations is a transaction joined with its resident and
// category rows, as the listing endpoints return it.
type TransactionWithRelations struct {
	Transaction
	Resident *Resident
	Category *Category
}
