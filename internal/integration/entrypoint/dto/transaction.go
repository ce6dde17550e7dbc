// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type            string  `json:"type" binding:"required,oneof=income expense"`
	Amount          int64   `json:"amount" binding:"required,gt=0"`
	ResidentID      *string `json:"resident_id,omitempty" binding:"omitempty,uuid"`
	CategoryID      *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	AccountID       *string `json:"account_id,omitempty" binding:"omitempty,uuid"`
	Description     string  `json:"description,omitempty"`
	ReceiptURL      *string `json:"receipt_url,omitempty"`
	TransactionDate string  `json:"transaction_date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Sending an empty string for an ID or receipt_url clears the tag.
type UpdateTransactionRequest struct {
	Amount          *int64  `json:"amount,omitempty" binding:"omitempty,gt=0"`
	ResidentID      *string `json:"resident_id,omitempty"`
	CategoryID      *string `json:"category_id,omitempty"`
	AccountID       *string `json:"account_id,omitempty"`
	Description     *string `json:"description,omitempty"`
	ReceiptURL      *string `json:"receipt_url,omitempty"`
	TransactionDate *string `json:"transaction_date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	Amount          int64             `json:"amount"`
	ResidentID      *string           `json:"resident_id"`
	CategoryID      *string           `json:"category_id"`
	AccountID       *string           `json:"account_id"`
	Description     string            `json:"description"`
	ReceiptURL      *string           `json:"receipt_url"`
	TransactionDate string            `json:"transaction_date"`
	CreatedAt       time.Time         `json:"created_at"`
	Resident        *ResidentResponse `json:"resident,omitempty"`
	Category        *CategoryResponse `json:"category,omitempty"`
}

// BalanceResponse represents income/expense/net totals.
type BalanceResponse struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Net     int64 `json:"net"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Balance      BalanceResponse       `json:"balance"`
}

// ToTransactionResponse converts a TransactionWithRelations to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.TransactionWithRelations) TransactionResponse {
	response := TransactionResponse{
		ID:              transaction.ID.String(),
		Type:            string(transaction.Type),
		Amount:          transaction.Amount,
		Description:     transaction.Description,
		ReceiptURL:      transaction.ReceiptURL,
		TransactionDate: transaction.TransactionDate.Format("2006-01-02"),
		CreatedAt:       transaction.CreatedAt,
	}
	if transaction.ResidentID != nil {
		id := transaction.ResidentID.String()
		response.ResidentID = &id
	}
	if transaction.CategoryID != nil {
		id := transaction.CategoryID.String()
		response.CategoryID = &id
	}
	if transaction.AccountID != nil {
		id := transaction.AccountID.String()
		response.AccountID = &id
	}
	if transaction.Resident != nil {
		resident := ToResidentResponse(transaction.Resident)
		response.Resident = &resident
	}
	if transaction.Category != nil {
		category := ToCategoryResponse(transaction.Category)
		response.Category = &category
	}
	return response
}

// ToBalanceResponse converts a Balance value object to a BalanceResponse DTO.
func ToBalanceResponse(balance valueobject.Balance) BalanceResponse {
	return BalanceResponse{
		Income:  balance.Income,
		Expense: balance.Expense,
		Net:     balance.Net,
	}
}

// ToTransactionListResponse converts transactions and their balance to a
// TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.TransactionWithRelations, balance valueobject.Balance) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: items,
		Balance:      ToBalanceResponse(balance),
	}
}
