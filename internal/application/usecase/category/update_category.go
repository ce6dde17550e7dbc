// Package category contains category-related use cases.
package category

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

// UpdateCategoryInput represents the input for category update.
// DefaultPerPerson uses two pointer levels so callers can distinguish
// "leave unchanged" (nil) from "clear the recurring due" (*nil).
type UpdateCategoryInput struct {
	CategoryID       uuid.UUID
	Name             *string
	Type             *entity.CategoryType
	DefaultPerPerson **int64
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo   adapter.CategoryRepository
	broadcastCache adapter.BroadcastCache
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository, broadcastCache adapter.BroadcastCache) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo:   categoryRepo,
		broadcastCache: broadcastCache,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" || len(*input.Name) > MaxCategoryNameLength {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameRequired,
				fmt.Sprintf("category name must be 1 to %d characters", MaxCategoryNameLength),
				domainerror.ErrCategoryNameRequired,
			)
		}
		category.Name = *input.Name
	}

	if input.Type != nil {
		if !isValidCategoryType(*input.Type) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryType,
				"category type must be 'expense' or 'income'",
				domainerror.ErrInvalidCategoryType,
			)
		}
		category.Type = *input.Type
	}

	if input.DefaultPerPerson != nil {
		if *input.DefaultPerPerson != nil && **input.DefaultPerPerson < 0 {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeNegativeDefaultPerPerson,
				"default per person must not be negative",
				domainerror.ErrNegativeDefaultPerPerson,
			)
		}
		category.DefaultPerPerson = *input.DefaultPerPerson
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	if err := uc.broadcastCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate broadcast cache", "error", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
