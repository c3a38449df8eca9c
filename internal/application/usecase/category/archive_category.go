// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// ArchiveCategoryInput represents the input for category archival.
type ArchiveCategoryInput struct {
	CategoryID uuid.UUID
}

// ArchiveCategoryOutput represents the output of category archival.
type ArchiveCategoryOutput struct {
	Success bool
}

// ArchiveCategoryUseCase handles category archival. Archival replaces hard
// deletion so existing transactions keep a resolvable category reference.
type ArchiveCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewArchiveCategoryUseCase creates a new ArchiveCategoryUseCase instance.
func NewArchiveCategoryUseCase(categoryRepo adapter.CategoryRepository) *ArchiveCategoryUseCase {
	return &ArchiveCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute archives the category. Archiving an archived category is a no-op.
func (uc *ArchiveCategoryUseCase) Execute(ctx context.Context, input ArchiveCategoryInput) (*ArchiveCategoryOutput, error) {
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

	if !category.IsActive() {
		return &ArchiveCategoryOutput{Success: true}, nil
	}

	category.Archive()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to archive category: %w", err)
	}

	return &ArchiveCategoryOutput{Success: true}, nil
}
