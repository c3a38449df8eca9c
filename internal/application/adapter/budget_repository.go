// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindAll retrieves all budgets ordered by start date descending.
	FindAll(ctx context.Context) ([]*entity.Budget, error)

	// FindByStatus retrieves all budgets with the given status.
	FindByStatus(ctx context.Context, status entity.BudgetStatus) ([]*entity.Budget, error)

	// ApplyDelta atomically adds delta to the spent column of every
	// non-completed budget for the category whose window contains at,
	// recomputes remaining and promotes status to exceeded where spend has
	// reached the ceiling. It returns the affected budgets as stored after
	// the update. The whole delta application is a single store operation,
	// so concurrent transaction mutations cannot lose updates.
	ApplyDelta(ctx context.Context, categoryID uuid.UUID, delta decimal.Decimal, at time.Time) ([]*entity.Budget, error)

	// Update updates budget fields other than the ledger columns.
	Update(ctx context.Context, budget *entity.Budget) error

	// UpdateStatus sets the status of a budget.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BudgetStatus) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
