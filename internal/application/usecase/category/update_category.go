// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID       uuid.UUID
	Name             *string
	Type             *entity.CategoryType
	ParentCategoryID *uuid.UUID
	ClearParent      bool // Set to true to promote the category to top level
	Color            *string
	Icon             *string
	BudgetLimit      *decimal.Decimal
	ClearBudgetLimit bool
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
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
		if *input.Name == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameRequired,
				"category name is required",
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

	if input.ClearParent {
		category.ParentCategoryID = nil
	} else if input.ParentCategoryID != nil {
		if *input.ParentCategoryID == category.ID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeNestedParentCategory,
				"category cannot be its own parent",
				domainerror.ErrNestedParentCategory,
			)
		}
		parent, err := uc.categoryRepo.FindByID(ctx, *input.ParentCategoryID)
		if err != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeParentCategoryNotFound,
				"parent category not found",
				domainerror.ErrParentCategoryNotFound,
			)
		}
		if parent.ParentCategoryID != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeNestedParentCategory,
				"categories may only be nested one level deep",
				domainerror.ErrNestedParentCategory,
			)
		}
		category.ParentCategoryID = input.ParentCategoryID
	}

	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}
	if input.ClearBudgetLimit {
		category.BudgetLimit = nil
	} else if input.BudgetLimit != nil {
		category.BudgetLimit = input.BudgetLimit
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
