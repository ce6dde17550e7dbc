// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAll retrieves all accounts ordered by type, then name.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
