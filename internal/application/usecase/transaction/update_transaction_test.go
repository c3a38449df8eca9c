package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/application/usecase/ledger"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// seedExpense creates a completed categorized expense in the repo.
func seedExpense(repo *memoryTransactionRepo, amount string, categoryID *uuid.UUID) *entity.Transaction {
	txn := entity.NewTransaction(
		entity.TransactionTypeExpense,
		decimal.RequireFromString(amount),
		"USD",
		time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC),
		categoryID,
		"Harbor fuel",
		uuid.New(),
	)
	repo.transactions[txn.ID] = txn
	return txn
}

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("amount change reverses the old contribution and applies the new", func(t *testing.T) {
		category := activeCategory("Fuel")
		txnRepo := newMemoryTransactionRepo()
		txn := seedExpense(txnRepo, "100.00", &category.ID)
		budgetSpy := &spyBudgetRepo{}
		uc := NewUpdateTransactionUseCase(txnRepo, newMemoryCategoryRepo(category), ledger.NewBudgetLedger(budgetSpy, nil, ""))

		newAmount := decimal.RequireFromString("150.00")
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: txn.ID,
			Amount:        &newAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(budgetSpy.calls) != 2 {
			t.Fatalf("expected reverse and apply calls, got %d", len(budgetSpy.calls))
		}
		if !budgetSpy.calls[0].delta.Equal(decimal.RequireFromString("-100.00")) {
			t.Errorf("expected reversal -100.00, got %s", budgetSpy.calls[0].delta)
		}
		if !budgetSpy.calls[1].delta.Equal(newAmount) {
			t.Errorf("expected application 150.00, got %s", budgetSpy.calls[1].delta)
		}
	})

	t.Run("category move shifts the contribution between categories", func(t *testing.T) {
		fuel := activeCategory("Fuel")
		maintenance := activeCategory("Maintenance")
		txnRepo := newMemoryTransactionRepo()
		txn := seedExpense(txnRepo, "80.00", &fuel.ID)
		budgetSpy := &spyBudgetRepo{}
		uc := NewUpdateTransactionUseCase(txnRepo, newMemoryCategoryRepo(fuel, maintenance), ledger.NewBudgetLedger(budgetSpy, nil, ""))

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: txn.ID,
			CategoryID:    &maintenance.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(budgetSpy.calls) != 2 {
			t.Fatalf("expected 2 ledger calls, got %d", len(budgetSpy.calls))
		}
		if budgetSpy.calls[0].categoryID != fuel.ID || !budgetSpy.calls[0].delta.IsNegative() {
			t.Errorf("expected reversal against Fuel, got %+v", budgetSpy.calls[0])
		}
		if budgetSpy.calls[1].categoryID != maintenance.ID || !budgetSpy.calls[1].delta.Equal(decimal.RequireFromString("80.00")) {
			t.Errorf("expected application against Maintenance, got %+v", budgetSpy.calls[1])
		}
	})

	t.Run("cancelling a completed expense reverses it", func(t *testing.T) {
		category := activeCategory("Fuel")
		txnRepo := newMemoryTransactionRepo()
		txn := seedExpense(txnRepo, "60.00", &category.ID)
		budgetSpy := &spyBudgetRepo{}
		uc := NewUpdateTransactionUseCase(txnRepo, newMemoryCategoryRepo(category), ledger.NewBudgetLedger(budgetSpy, nil, ""))

		cancelled := entity.TransactionStatusCancelled
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: txn.ID,
			Status:        &cancelled,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(budgetSpy.calls) != 1 {
			t.Fatalf("expected a single reversal, got %d calls", len(budgetSpy.calls))
		}
		if !budgetSpy.calls[0].delta.Equal(decimal.RequireFromString("-60.00")) {
			t.Errorf("expected reversal -60.00, got %s", budgetSpy.calls[0].delta)
		}
	})

	t.Run("unchanged contribution skips the ledger", func(t *testing.T) {
		category := activeCategory("Fuel")
		txnRepo := newMemoryTransactionRepo()
		txn := seedExpense(txnRepo, "60.00", &category.ID)
		budgetSpy := &spyBudgetRepo{}
		uc := NewUpdateTransactionUseCase(txnRepo, newMemoryCategoryRepo(category), ledger.NewBudgetLedger(budgetSpy, nil, ""))

		description := "Updated note"
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: txn.ID,
			Description:   &description,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(budgetSpy.calls) != 0 {
			t.Errorf("expected no ledger calls for a description edit, got %d", len(budgetSpy.calls))
		}
	})

	t.Run("clearing the category reverses the contribution", func(t *testing.T) {
		category := activeCategory("Fuel")
		txnRepo := newMemoryTransactionRepo()
		txn := seedExpense(txnRepo, "45.00", &category.ID)
		budgetSpy := &spyBudgetRepo{}
		uc := NewUpdateTransactionUseCase(txnRepo, newMemoryCategoryRepo(category), ledger.NewBudgetLedger(budgetSpy, nil, ""))

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: txn.ID,
			ClearCategory: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(budgetSpy.calls) != 1 {
			t.Fatalf("expected a single reversal, got %d calls", len(budgetSpy.calls))
		}
		if !budgetSpy.calls[0].delta.Equal(decimal.RequireFromString("-45.00")) {
			t.Errorf("expected reversal -45.00, got %s", budgetSpy.calls[0].delta)
		}
	})

	t.Run("missing category only degrades response enrichment", func(t *testing.T) {
		categoryID := uuid.New()
		txnRepo := newMemoryTransactionRepo()
		txn := seedExpense(txnRepo, "60.00", &categoryID)
		uc := NewUpdateTransactionUseCase(txnRepo, newMemoryCategoryRepo(), ledger.NewBudgetLedger(&spyBudgetRepo{}, nil, ""))

		description := "Updated note"
		output, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: txn.ID,
			Description:   &description,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Category != nil {
			t.Errorf("expected no category in the response, got %+v", output.Transaction.Category)
		}
		if output.Transaction.Description != "Updated note" {
			t.Errorf("expected the edit to apply, got %q", output.Transaction.Description)
		}
	})

	t.Run("unknown transaction yields not found", func(t *testing.T) {
		uc := NewUpdateTransactionUseCase(newMemoryTransactionRepo(), newMemoryCategoryRepo(), ledger.NewBudgetLedger(&spyBudgetRepo{}, nil, ""))

		_, err := uc.Execute(ctx, UpdateTransactionInput{TransactionID: uuid.New()})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTransactionNotFound {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}

func TestDeleteTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting a completed expense reverses its contribution", func(t *testing.T) {
		category := activeCategory("Fuel")
		txnRepo := newMemoryTransactionRepo()
		txn := seedExpense(txnRepo, "200.00", &category.ID)
		budgetSpy := &spyBudgetRepo{}
		uc := NewDeleteTransactionUseCase(txnRepo, ledger.NewBudgetLedger(budgetSpy, nil, ""))

		output, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: txn.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}

		if len(txnRepo.deleted) != 1 || txnRepo.deleted[0] != txn.ID {
			t.Errorf("expected transaction %s deleted, got %v", txn.ID, txnRepo.deleted)
		}
		if len(budgetSpy.calls) != 1 {
			t.Fatalf("expected a single reversal, got %d calls", len(budgetSpy.calls))
		}
		if !budgetSpy.calls[0].delta.Equal(decimal.RequireFromString("-200.00")) {
			t.Errorf("expected reversal -200.00, got %s", budgetSpy.calls[0].delta)
		}
	})

	t.Run("deleting an uncategorized expense skips the ledger", func(t *testing.T) {
		txnRepo := newMemoryTransactionRepo()
		txn := seedExpense(txnRepo, "200.00", nil)
		budgetSpy := &spyBudgetRepo{}
		uc := NewDeleteTransactionUseCase(txnRepo, ledger.NewBudgetLedger(budgetSpy, nil, ""))

		if _, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: txn.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgetSpy.calls) != 0 {
			t.Errorf("expected no ledger calls, got %d", len(budgetSpy.calls))
		}
	})

	t.Run("unknown transaction yields not found", func(t *testing.T) {
		uc := NewDeleteTransactionUseCase(newMemoryTransactionRepo(), ledger.NewBudgetLedger(&spyBudgetRepo{}, nil, ""))

		_, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: uuid.New()})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTransactionNotFound {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}
