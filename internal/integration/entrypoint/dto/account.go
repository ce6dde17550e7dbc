// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	Type          string  `json:"type" binding:"required,oneof=ewallet bank"`
	Provider      string  `json:"provider,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	Balance       int64   `json:"balance"`
	Icon          *string `json:"icon,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
// An empty account_number or icon clears the stored value.
type UpdateAccountRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type          *string `json:"type,omitempty" binding:"omitempty,oneof=ewallet bank"`
	Provider      *string `json:"provider,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	Balance       *int64  `json:"balance,omitempty"`
	Icon          *string `json:"icon,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Provider      string    `json:"provider"`
	AccountNumber *string   `json:"account_number"`
	Balance       int64     `json:"balance"`
	Icon          *string   `json:"icon"`
	CreatedAt     time.Time `json:"created_at"`
}

// AccountListResponse represents the response for listing accounts, including
// the aggregate position of the shared fund.
type AccountListResponse struct {
	Accounts     []AccountResponse `json:"accounts"`
	TotalBalance int64             `json:"total_balance"`
	Status       string            `json:"status"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:            account.ID.String(),
		Name:          account.Name,
		Type:          string(account.Type),
		Provider:      account.Provider,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
		Icon:          account.Icon,
		CreatedAt:     account.CreatedAt,
	}
}

// ToAccountListResponse converts accounts plus their aggregate into an AccountListResponse.
func ToAccountListResponse(accounts []*entity.Account, totalBalance int64, status string) AccountListResponse {
	items := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		items[i] = ToAccountResponse(a)
	}
	return AccountListResponse{
		Accounts:     items,
		TotalBalance: totalBalance,
		Status:       status,
	}
}
