// Package account contains account-related use cases.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account update.
// Balance is a direct set; account balances are maintained independently of
// transaction history and never reconciled automatically.
type UpdateAccountInput struct {
	AccountID     uuid.UUID
	Name          *string
	Type          *entity.AccountType
	Provider      *string
	AccountNumber **string
	Balance       *int64
	Icon          **string
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo    adapter.AccountRepository
	broadcastCache adapter.BroadcastCache
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository, broadcastCache adapter.BroadcastCache) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo:    accountRepo,
		broadcastCache: broadcastCache,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" || len(*input.Name) > MaxAccountNameLength {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameRequired,
				fmt.Sprintf("account name must be 1 to %d characters", MaxAccountNameLength),
				domainerror.ErrAccountNameRequired,
			)
		}
		account.Name = *input.Name
	}

	if input.Type != nil {
		if !isValidAccountType(*input.Type) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeInvalidAccountType,
				"account type must be 'ewallet' or 'bank'",
				domainerror.ErrInvalidAccountType,
			)
		}
		account.Type = *input.Type
	}

	if input.Provider != nil {
		account.Provider = *input.Provider
	}
	if input.AccountNumber != nil {
		account.AccountNumber = *input.AccountNumber
	}
	if input.Balance != nil {
		account.Balance = *input.Balance
	}
	if input.Icon != nil {
		account.Icon = *input.Icon
	}

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	if err := uc.broadcastCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate broadcast cache", "error", err)
	}

	return &UpdateAccountOutput{
		Account: account,
	}, nil
}
