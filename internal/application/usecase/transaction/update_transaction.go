// Package transaction contains transaction-related use cases.
package transaction

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

// UpdateTransactionInput represents the input for transaction update.
// Double pointers distinguish "leave unchanged" from "clear".
type UpdateTransactionInput struct {
	TransactionID   uuid.UUID
	Amount          *int64
	ResidentID      **uuid.UUID
	CategoryID      **uuid.UUID
	AccountID       **uuid.UUID
	Description     *string
	ReceiptURL      **string
	TransactionDate *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.TransactionWithRelations
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	broadcastCache  adapter.BroadcastCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, broadcastCache adapter.BroadcastCache) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		broadcastCache:  broadcastCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNonPositiveAmount,
				"amount must be a positive number of rupiah",
				domainerror.ErrNonPositiveAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.TransactionDate != nil {
		date, err := parseTransactionDate(*input.TransactionDate)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionDateRequired,
				"transaction date must be in YYYY-MM-DD format",
				domainerror.ErrTransactionDateRequired,
			)
		}
		transaction.TransactionDate = date
	}

	if input.ResidentID != nil {
		transaction.ResidentID = *input.ResidentID
	}
	if input.CategoryID != nil {
		transaction.CategoryID = *input.CategoryID
	}
	if input.AccountID != nil {
		transaction.AccountID = *input.AccountID
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.ReceiptURL != nil {
		transaction.ReceiptURL = *input.ReceiptURL
	}

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	withRelations, err := uc.transactionRepo.FindByIDWithRelations(ctx, transaction.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated transaction: %w", err)
	}

	if err := uc.broadcastCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate broadcast cache", "error", err)
	}

	return &UpdateTransactionOutput{
		Transaction: withRelations,
	}, nil
}
