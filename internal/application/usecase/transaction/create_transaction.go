// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
// Income transactions carry ResidentID, expense transactions carry CategoryID;
// the unused tag is left nil by convention.
type CreateTransactionInput struct {
	Type            entity.TransactionType
	Amount          int64
	ResidentID      *uuid.UUID
	CategoryID      *uuid.UUID
	AccountID       *uuid.UUID
	Description     string
	ReceiptURL      *string
	TransactionDate string // "2006-01-02"
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithRelations
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	broadcastCache  adapter.BroadcastCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, broadcastCache adapter.BroadcastCache) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		broadcastCache:  broadcastCache,
	}
}

// Execute performs the transaction creation and returns the persisted row
// joined with its resident/category relations.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Amount <= 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be a positive number of rupiah",
			domainerror.ErrNonPositiveAmount,
		)
	}

	date, err := parseTransactionDate(input.TransactionDate)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionDateRequired,
			"transaction date must be in YYYY-MM-DD format",
			domainerror.ErrTransactionDateRequired,
		)
	}

	transaction := entity.NewTransaction(
		input.Type,
		input.Amount,
		input.ResidentID,
		input.CategoryID,
		input.AccountID,
		input.Description,
		input.ReceiptURL,
		date,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	withRelations, err := uc.transactionRepo.FindByIDWithRelations(ctx, transaction.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created transaction: %w", err)
	}

	if err := uc.broadcastCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate broadcast cache", "error", err)
	}

	return &CreateTransactionOutput{
		Transaction: withRelations,
	}, nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeIncome || transactionType == entity.TransactionTypeExpense
}
