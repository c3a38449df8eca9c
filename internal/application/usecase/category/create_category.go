// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name             string
	Type             entity.CategoryType
	ParentCategoryID *uuid.UUID
	Color            string
	Icon             string
	BudgetLimit      *decimal.Decimal
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. Nesting is limited to one level:
// a parent category may not itself have a parent.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
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

	if input.ParentCategoryID != nil {
		if err := uc.validateParent(ctx, *input.ParentCategoryID); err != nil {
			return nil, err
		}
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

	category := entity.NewCategory(
		input.Name,
		input.Type,
		input.ParentCategoryID,
		color,
		icon,
		input.BudgetLimit,
	)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

// validateParent ensures the parent exists and is a top-level category.
func (uc *CreateCategoryUseCase) validateParent(ctx context.Context, parentID uuid.UUID) error {
	parent, err := uc.categoryRepo.FindByID(ctx, parentID)
	if err != nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeParentCategoryNotFound,
			"parent category not found",
			domainerror.ErrParentCategoryNotFound,
		)
	}
	if parent.ParentCategoryID != nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeNestedParentCategory,
			"categories may only be nested one level deep",
			domainerror.ErrNestedParentCategory,
		)
	}
	return nil
}

// isValidCategoryType checks if the category type is valid.
func isValidCategoryType(t entity.CategoryType) bool {
	return t == entity.CategoryTypeExpense || t == entity.CategoryTypeIncome
}
