// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name             string `json:"name" binding:"required,min=1,max=50"`
	Type             string `json:"type" binding:"required,oneof=expense income"`
	DefaultPerPerson *int64 `json:"default_per_person,omitempty" binding:"omitempty,gte=0"`
}

// UpdateCategoryRequest represents the request body for category update.
// A default_per_person of 0 removes the recurring due.
type UpdateCategoryRequest struct {
	Name             *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Type             *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	DefaultPerPerson *int64  `json:"default_per_person,omitempty" binding:"omitempty,gte=0"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	DefaultPerPerson *int64    `json:"default_per_person"`
	CreatedAt        time.Time `json:"created_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:               category.ID.String(),
		Name:             category.Name,
		Type:             string(category.Type),
		DefaultPerPerson: category.DefaultPerPerson,
		CreatedAt:        category.CreatedAt,
	}
}

// ToCategoryListResponse converts a list of categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{
		Categories: items,
	}
}
