// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType represents the direction of a category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// CategoryState represents the lifecycle of a category. Archiving replaces
// deletion so historical transactions keep their category reference.
type CategoryState string

const (
	CategoryStateActive   CategoryState = "active"
	CategoryStateArchived CategoryState = "archived"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#0E7490"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a transaction classification in the Fleet Finance Hub.
// Categories may be nested one level deep via ParentCategoryID.
type Category struct {
	ID               uuid.UUID
	Name             string
	Type             CategoryType
	ParentCategoryID *uuid.UUID
	Color            string
	Icon             string
	BudgetLimit      *decimal.Decimal // Informational only; enforcement lives in Budget
	State            CategoryState
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewCategory creates a new active Category entity.
// Note: defaulting logic for color and icon should be applied in the
// Application layer (UseCase) before calling this constructor.
func NewCategory(name string, categoryType CategoryType, parentCategoryID *uuid.UUID, color, icon string, budgetLimit *decimal.Decimal) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:               uuid.New(),
		Name:             name,
		Type:             categoryType,
		ParentCategoryID: parentCategoryID,
		Color:            color,
		Icon:             icon,
		BudgetLimit:      budgetLimit,
		State:            CategoryStateActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsActive reports whether the category is listed and assignable.
func (c *Category) IsActive() bool {
	return c.State == CategoryStateActive
}

// Archive moves the category to the archived state.
func (c *Category) Archive() {
	c.State = CategoryStateArchived
	c.UpdatedAt = time.Now().UTC()
}
