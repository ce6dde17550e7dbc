// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name          string
	Type          entity.AccountType
	Provider      string
	AccountNumber *string
	Balance       int64
	Icon          *string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo    adapter.AccountRepository
	broadcastCache adapter.BroadcastCache
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository, broadcastCache adapter.BroadcastCache) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo:    accountRepo,
		broadcastCache: broadcastCache,
	}
}

// Execute performs the account creation. Balance may be negative.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if input.Name == "" || len(input.Name) > MaxAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			fmt.Sprintf("account name must be 1 to %d characters", MaxAccountNameLength),
			domainerror.ErrAccountNameRequired,
		)
	}

	if !isValidAccountType(input.Type) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be 'ewallet' or 'bank'",
			domainerror.ErrInvalidAccountType,
		)
	}

	account := entity.NewAccount(input.Name, input.Type, input.Provider, input.AccountNumber, input.Balance, input.Icon)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// The fund total in the broadcast summary is derived from account balances.
	if err := uc.broadcastCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate broadcast cache", "error", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}

// isValidAccountType validates the account type.
func isValidAccountType(accountType entity.AccountType) bool {
	return accountType == entity.AccountTypeEwallet || accountType == entity.AccountTypeBank
}
