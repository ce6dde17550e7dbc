// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// ResidentRepository defines the interface for resident persistence operations.
type ResidentRepository interface {
	// Create creates a new resident in the database.
	Create(ctx context.Context, resident *entity.Resident) error

	// FindByID retrieves a resident by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error)

	// FindAll retrieves all residents ordered by name.
	FindAll(ctx context.Context) ([]*entity.Resident, error)

	// Update updates an existing resident in the database.
	Update(ctx context.Context, resident *entity.Resident) error

	// Delete removes a resident from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
