// Package account contains account-related use cases.
package account

import (
	"context"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
)

// Balance status indicators for the account total.
const (
	BalanceStatusSurplus = "surplus"
	BalanceStatusDefisit = "defisit"
)

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts      []*entity.Account
	TotalBalance  int64
	BalanceStatus string
}

// ListAccountsUseCase handles listing accounts logic.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute retrieves all accounts ordered by type then name, with the overall
// fund balance and its surplus/defisit status.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	total := valueobject.TotalAccountBalance(accounts)

	return &ListAccountsOutput{
		Accounts:      accounts,
		TotalBalance:  total,
		BalanceStatus: StatusForBalance(total),
	}, nil
}

// StatusForBalance returns the surplus/defisit indicator for a fund total.
func StatusForBalance(total int64) string {
	if total < 0 {
		return BalanceStatusDefisit
	}
	return BalanceStatusSurplus
}
