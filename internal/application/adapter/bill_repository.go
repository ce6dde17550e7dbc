// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// BillRepository defines the interface for monthly bill persistence operations.
type BillRepository interface {
	// CreateBatch inserts all given bills in one request. The storage layer
	// enforces uniqueness of (year, month, resident_id, category_id); a
	// concurrent duplicate insert surfaces as gorm.ErrDuplicatedKey.
	CreateBatch(ctx context.Context, bills []*entity.MonthlyBill) error

	// FindByID retrieves a bill by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MonthlyBill, error)

	// FindByPeriod retrieves all bills for a (year, month) joined with their
	// resident and category rows.
	FindByPeriod(ctx context.Context, year, month int) ([]*entity.MonthlyBillWithRelations, error)

	// Update updates an existing bill in the database.
	Update(ctx context.Context, bill *entity.MonthlyBill) error
}
