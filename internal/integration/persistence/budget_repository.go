// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
	"github.com/fleetops/finance-hub/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindAll retrieves all budgets ordered by start date descending.
func (r *budgetRepository) FindAll(ctx context.Context) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Order("start_date DESC, created_at DESC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toBudgetEntities(budgetModels), nil
}

// FindByStatus retrieves all budgets with the given status.
func (r *budgetRepository) FindByStatus(ctx context.Context, status entity.BudgetStatus) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("start_date DESC, created_at DESC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toBudgetEntities(budgetModels), nil
}

// ApplyDelta atomically adds delta to the spent column of every matching
// budget in a single UPDATE, so concurrent transaction mutations cannot lose
// increments. Matching budgets are active or exceeded (never completed) for
// the category with a window containing at. All three ledger columns are
// computed from the pre-update spent value within the same statement.
func (r *budgetRepository) ApplyDelta(ctx context.Context, categoryID uuid.UUID, delta decimal.Decimal, at time.Time) ([]*entity.Budget, error) {
	matching := func(db *gorm.DB) *gorm.DB {
		return db.
			Where("category_id = ?", categoryID).
			Where("status IN ?", []string{
				string(entity.BudgetStatusActive),
				string(entity.BudgetStatusExceeded),
			}).
			Where("start_date <= ? AND end_date >= ?", at, at)
	}

	result := matching(r.db.WithContext(ctx).Model(&model.BudgetModel{})).
		Updates(map[string]interface{}{
			"spent":     gorm.Expr("spent + ?", delta),
			"remaining": gorm.Expr("amount - (spent + ?)", delta),
			"status": gorm.Expr(
				"CASE WHEN spent + ? >= amount THEN ? ELSE status END",
				delta, string(entity.BudgetStatusExceeded),
			),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var budgetModels []model.BudgetModel
	if err := matching(r.db.WithContext(ctx)).Find(&budgetModels).Error; err != nil {
		return nil, err
	}
	return toBudgetEntities(budgetModels), nil
}

// Update updates budget fields other than the ledger's spent column.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", budget.ID).
		Select("*").
		Omit("id", "created_at", "spent").
		Updates(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// UpdateStatus sets the status of a budget.
func (r *budgetRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BudgetStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget from the database.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BudgetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// toBudgetEntities maps budget models to domain entities.
func toBudgetEntities(budgetModels []model.BudgetModel) []*entity.Budget {
	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets
}
