// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithRelations retrieves a transaction joined with its resident
	// and category rows.
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRelations, error)

	// FindAll retrieves all transactions with relations, ordered by
	// transaction date descending then creation time descending.
	FindAll(ctx context.Context) ([]*entity.TransactionWithRelations, error)

	// FindByPeriod retrieves transactions with relations whose transaction
	// date falls in [start, end), same ordering as FindAll.
	FindByPeriod(ctx context.Context, start, end time.Time) ([]*entity.TransactionWithRelations, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
