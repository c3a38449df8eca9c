package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/application/usecase/ledger"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// memoryTransactionRepo keeps transactions in memory for use case tests.
type memoryTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	deleted      []uuid.UUID
}

func newMemoryTransactionRepo() *memoryTransactionRepo {
	return &memoryTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *memoryTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *memoryTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *transaction
	return &copied, nil
}

func (r *memoryTransactionRepo) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	transaction, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.TransactionWithCategory{Transaction: transaction}, nil
}

func (r *memoryTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}

func (r *memoryTransactionRepo) FindCompletedInRange(ctx context.Context, startDate, endDate time.Time, filter adapter.ReportFilter) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}

func (r *memoryTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *memoryTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// memoryCategoryRepo serves a fixed category set.
type memoryCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newMemoryCategoryRepo(categories ...*entity.Category) *memoryCategoryRepo {
	repo := &memoryCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, category := range categories {
		repo.categories[category.ID] = category
	}
	return repo
}

func (r *memoryCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *memoryCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *memoryCategoryRepo) FindActive(ctx context.Context) ([]*entity.Category, error) {
	active := make([]*entity.Category, 0)
	for _, category := range r.categories {
		if category.IsActive() {
			active = append(active, category)
		}
	}
	return active, nil
}

func (r *memoryCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

// deltaCall records one ledger application.
type deltaCall struct {
	categoryID uuid.UUID
	delta      decimal.Decimal
}

// spyBudgetRepo records the deltas the ledger applies.
type spyBudgetRepo struct {
	calls []deltaCall
}

func (r *spyBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error { return nil }

func (r *spyBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}

func (r *spyBudgetRepo) FindAll(ctx context.Context) ([]*entity.Budget, error) { return nil, nil }

func (r *spyBudgetRepo) FindByStatus(ctx context.Context, status entity.BudgetStatus) ([]*entity.Budget, error) {
	return nil, nil
}

func (r *spyBudgetRepo) ApplyDelta(ctx context.Context, categoryID uuid.UUID, delta decimal.Decimal, at time.Time) ([]*entity.Budget, error) {
	r.calls = append(r.calls, deltaCall{categoryID: categoryID, delta: delta})
	return nil, nil
}

func (r *spyBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error { return nil }

func (r *spyBudgetRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BudgetStatus) error {
	return nil
}

func (r *spyBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func activeCategory(name string) *entity.Category {
	return &entity.Category{
		ID:    uuid.New(),
		Name:  name,
		Type:  entity.CategoryTypeExpense,
		State: entity.CategoryStateActive,
	}
}

func archivedCategory(name string) *entity.Category {
	category := activeCategory(name)
	category.State = entity.CategoryStateArchived
	return category
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)
	createdBy := uuid.New()

	t.Run("completed categorized expense accrues to budgets", func(t *testing.T) {
		category := activeCategory("Fuel")
		budgetSpy := &spyBudgetRepo{}
		uc := NewCreateTransactionUseCase(
			newMemoryTransactionRepo(),
			newMemoryCategoryRepo(category),
			ledger.NewBudgetLedger(budgetSpy, nil, ""),
		)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			Type:       entity.TransactionTypeExpense,
			Amount:     decimal.RequireFromString("125.00"),
			Date:       date,
			CategoryID: &category.ID,
			CreatedBy:  createdBy,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Status != entity.TransactionStatusCompleted {
			t.Errorf("expected default status completed, got %s", output.Transaction.Status)
		}

		if len(budgetSpy.calls) != 1 {
			t.Fatalf("expected 1 ledger call, got %d", len(budgetSpy.calls))
		}
		call := budgetSpy.calls[0]
		if call.categoryID != category.ID {
			t.Errorf("expected delta for category %s, got %s", category.ID, call.categoryID)
		}
		if !call.delta.Equal(decimal.RequireFromString("125.00")) {
			t.Errorf("expected delta 125.00, got %s", call.delta)
		}
	})

	t.Run("pending expenses do not accrue", func(t *testing.T) {
		category := activeCategory("Fuel")
		budgetSpy := &spyBudgetRepo{}
		uc := NewCreateTransactionUseCase(
			newMemoryTransactionRepo(),
			newMemoryCategoryRepo(category),
			ledger.NewBudgetLedger(budgetSpy, nil, ""),
		)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Type:       entity.TransactionTypeExpense,
			Amount:     decimal.RequireFromString("125.00"),
			Date:       date,
			CategoryID: &category.ID,
			Status:     entity.TransactionStatusPending,
			CreatedBy:  createdBy,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgetSpy.calls) != 0 {
			t.Errorf("expected no ledger calls for pending expense, got %d", len(budgetSpy.calls))
		}
	})

	t.Run("income does not accrue", func(t *testing.T) {
		category := activeCategory("Charter revenue")
		budgetSpy := &spyBudgetRepo{}
		uc := NewCreateTransactionUseCase(
			newMemoryTransactionRepo(),
			newMemoryCategoryRepo(category),
			ledger.NewBudgetLedger(budgetSpy, nil, ""),
		)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Type:       entity.TransactionTypeIncome,
			Amount:     decimal.RequireFromString("9000.00"),
			Date:       date,
			CategoryID: &category.ID,
			CreatedBy:  createdBy,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgetSpy.calls) != 0 {
			t.Errorf("expected no ledger calls for income, got %d", len(budgetSpy.calls))
		}
	})

	t.Run("uncategorized expenses do not accrue", func(t *testing.T) {
		budgetSpy := &spyBudgetRepo{}
		uc := NewCreateTransactionUseCase(
			newMemoryTransactionRepo(),
			newMemoryCategoryRepo(),
			ledger.NewBudgetLedger(budgetSpy, nil, ""),
		)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Type:      entity.TransactionTypeExpense,
			Amount:    decimal.RequireFromString("50.00"),
			Date:      date,
			CreatedBy: createdBy,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgetSpy.calls) != 0 {
			t.Errorf("expected no ledger calls for uncategorized expense, got %d", len(budgetSpy.calls))
		}
	})

	t.Run("rejects archived category", func(t *testing.T) {
		category := archivedCategory("Old dockage")
		uc := NewCreateTransactionUseCase(
			newMemoryTransactionRepo(),
			newMemoryCategoryRepo(category),
			ledger.NewBudgetLedger(&spyBudgetRepo{}, nil, ""),
		)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Type:       entity.TransactionTypeExpense,
			Amount:     decimal.RequireFromString("10.00"),
			Date:       date,
			CategoryID: &category.ID,
			CreatedBy:  createdBy,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTxnCategoryArchived {
			t.Fatalf("expected archived category error, got %v", err)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(
			newMemoryTransactionRepo(),
			newMemoryCategoryRepo(),
			ledger.NewBudgetLedger(&spyBudgetRepo{}, nil, ""),
		)
		missing := uuid.New()

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Type:       entity.TransactionTypeExpense,
			Amount:     decimal.RequireFromString("10.00"),
			Date:       date,
			CategoryID: &missing,
			CreatedBy:  createdBy,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTxnCategoryNotFound {
			t.Fatalf("expected category not found error, got %v", err)
		}
	})

	t.Run("rejects invalid type, negative amount and missing date", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(
			newMemoryTransactionRepo(),
			newMemoryCategoryRepo(),
			ledger.NewBudgetLedger(&spyBudgetRepo{}, nil, ""),
		)

		cases := []struct {
			name  string
			input CreateTransactionInput
			code  domainerror.TransactionErrorCode
		}{
			{
				"invalid type",
				CreateTransactionInput{Type: "refund", Amount: decimal.RequireFromString("1.00"), Date: date},
				domainerror.ErrCodeInvalidTransactionType,
			},
			{
				"negative amount",
				CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.RequireFromString("-1.00"), Date: date},
				domainerror.ErrCodeNegativeAmount,
			},
			{
				"missing date",
				CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.RequireFromString("1.00")},
				domainerror.ErrCodeMissingTransactionDate,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tc.input)
				var txnErr *domainerror.TransactionError
				if !errors.As(err, &txnErr) || txnErr.Code != tc.code {
					t.Fatalf("expected code %s, got %v", tc.code, err)
				}
			})
		}
	})
}
