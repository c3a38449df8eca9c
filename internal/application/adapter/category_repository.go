// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID regardless of state.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindActive retrieves all active categories ordered by name.
	FindActive(ctx context.Context) ([]*entity.Category, error)

	// Update updates an existing category, including state changes.
	Update(ctx context.Context, category *entity.Category) error
}
