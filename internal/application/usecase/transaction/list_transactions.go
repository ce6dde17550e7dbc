// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Period *valueobject.Period // Optional month filter
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithRelations
	Balance      valueobject.Balance
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves transactions with their resident/category relations,
// newest first, optionally limited to one calendar month, along with the
// income/expense/net totals of the returned set.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var transactions []*entity.TransactionWithRelations
	var err error

	if input.Period != nil {
		if !input.Period.Valid() {
			return nil, domainerror.ErrInvalidPeriod
		}
		start, end := input.Period.Range()
		transactions, err = uc.transactionRepo.FindByPeriod(ctx, start, end)
	} else {
		transactions, err = uc.transactionRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	plain := make([]*entity.Transaction, len(transactions))
	for i := range transactions {
		plain[i] = &transactions[i].Transaction
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Balance:      valueobject.BalanceOf(plain),
	}, nil
}
