// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name             string
	Type             entity.CategoryType
	DefaultPerPerson *int64 // Optional, nil when the category has no recurring due
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo   adapter.CategoryRepository
	broadcastCache adapter.BroadcastCache
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, broadcastCache adapter.BroadcastCache) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo:   categoryRepo,
		broadcastCache: broadcastCache,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Name == "" || len(input.Name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			fmt.Sprintf("category name must be 1 to %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameRequired,
		)
	}

	if !isValidCategoryType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	if input.DefaultPerPerson != nil && *input.DefaultPerPerson < 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNegativeDefaultPerPerson,
			"default per person must not be negative",
			domainerror.ErrNegativeDefaultPerPerson,
		)
	}

	category := entity.NewCategory(input.Name, input.Type, input.DefaultPerPerson)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	// Expense categories feed the broadcast dues menu.
	if err := uc.broadcastCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate broadcast cache", "error", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// isValidCategoryType validates the category type.
func isValidCategoryType(categoryType entity.CategoryType) bool {
	return categoryType == entity.CategoryTypeExpense || categoryType == entity.CategoryTypeIncome
}
