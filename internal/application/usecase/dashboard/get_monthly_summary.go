// Package dashboard contains the aggregated summary use case.
package dashboard

import (
	"context"
	"fmt"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/application/usecase/account"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
)

// GetMonthlySummaryInput represents the input for the monthly summary.
type GetMonthlySummaryInput struct {
	Period valueobject.Period
}

// GetMonthlySummaryOutput represents the output of the monthly summary.
type GetMonthlySummaryOutput struct {
	Balance      valueobject.Balance
	TotalBalance int64
	Status       string
}

// GetMonthlySummaryUseCase aggregates one month's cash flow with the
// current position across all accounts.
type GetMonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute computes the summary for the period.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	if !input.Period.Valid() {
		return nil, domainerror.ErrInvalidPeriod
	}

	start, end := input.Period.Range()
	withRelations, err := uc.transactionRepo.FindByPeriod(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*entity.Transaction, len(withRelations))
	for i, t := range withRelations {
		transactions[i] = &t.Transaction
	}

	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	total := valueobject.TotalAccountBalance(accounts)

	return &GetMonthlySummaryOutput{
		Balance:      valueobject.BalanceOf(transactions),
		TotalBalance: total,
		Status:       account.StatusForBalance(total),
	}, nil
}
