// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category classifies transactions and doubles as a template for generating
// recurring dues. DefaultPerPerson is the per-resident amount used when
// monthly bills are generated; nil means the category has no recurring due.
type Category struct {
	ID               uuid.UUID
	Name             string
	Type             CategoryType
	DefaultPerPerson *int64
	CreatedAt        time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, defaultPerPerson *int64) *Category {
	return &Category{
		ID:               uuid.New(),
		Name:             name,
		Type:             categoryType,
		DefaultPerPerson: defaultPerPerson,
		CreatedAt:        time.Now().UTC(),
	}
}

// DueAmount returns the per-person due for this category, or 0 when unset.
func (c *Category) DueAmount() int64 {
	if c.DefaultPerPerson == nil {
		return 0
	}
	return *c.DefaultPerPerson
}
