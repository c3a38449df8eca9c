package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// ledgerBudgetRepo records ApplyDelta calls and returns canned budgets.
type ledgerBudgetRepo struct {
	affected   []*entity.Budget
	err        error
	deltaCalls int
	lastDelta  decimal.Decimal
}

func (r *ledgerBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error { return nil }

func (r *ledgerBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}

func (r *ledgerBudgetRepo) FindAll(ctx context.Context) ([]*entity.Budget, error) { return nil, nil }

func (r *ledgerBudgetRepo) FindByStatus(ctx context.Context, status entity.BudgetStatus) ([]*entity.Budget, error) {
	return nil, nil
}

func (r *ledgerBudgetRepo) ApplyDelta(ctx context.Context, categoryID uuid.UUID, delta decimal.Decimal, at time.Time) ([]*entity.Budget, error) {
	r.deltaCalls++
	r.lastDelta = delta
	return r.affected, r.err
}

func (r *ledgerBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error { return nil }

func (r *ledgerBudgetRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BudgetStatus) error {
	return nil
}

func (r *ledgerBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// recordingAlertQueue captures enqueued alert jobs.
type recordingAlertQueue struct {
	jobs []*entity.AlertJob
	err  error
}

func (q *recordingAlertQueue) Enqueue(ctx context.Context, job *entity.AlertJob) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingAlertQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.AlertJob, error) {
	return nil, nil
}

func (q *recordingAlertQueue) Update(ctx context.Context, job *entity.AlertJob) error { return nil }

// budgetAfterDelta builds a budget as stored after a delta was applied.
func budgetAfterDelta(amount, spent string, threshold *int) *entity.Budget {
	budget := entity.NewBudget(
		"Fuel",
		nil,
		decimal.RequireFromString(amount),
		entity.BudgetPeriodMonthly,
		time.Now().UTC().AddDate(0, 0, -10),
		time.Now().UTC().AddDate(0, 0, 10),
		threshold,
	)
	budget.Spent = decimal.RequireFromString(spent)
	budget.Remaining = budget.Amount.Sub(budget.Spent)
	if budget.IsExceeded() {
		budget.Status = entity.BudgetStatusExceeded
	}
	return budget
}

func TestBudgetLedger_ApplyDelta(t *testing.T) {
	ctx := context.Background()

	t.Run("nil category is a no-op", func(t *testing.T) {
		repo := &ledgerBudgetRepo{}
		ledger := NewBudgetLedger(repo, &recordingAlertQueue{}, "ops@example.com")

		if err := ledger.ApplyDelta(ctx, nil, decimal.RequireFromString("10.00")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.deltaCalls != 0 {
			t.Errorf("expected no repository call, got %d", repo.deltaCalls)
		}
	})

	t.Run("zero delta is a no-op", func(t *testing.T) {
		repo := &ledgerBudgetRepo{}
		ledger := NewBudgetLedger(repo, &recordingAlertQueue{}, "ops@example.com")
		categoryID := uuid.New()

		if err := ledger.ApplyDelta(ctx, &categoryID, decimal.Zero); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.deltaCalls != 0 {
			t.Errorf("expected no repository call, got %d", repo.deltaCalls)
		}
	})

	t.Run("repository errors are wrapped", func(t *testing.T) {
		repo := &ledgerBudgetRepo{err: errors.New("connection reset")}
		ledger := NewBudgetLedger(repo, &recordingAlertQueue{}, "ops@example.com")
		categoryID := uuid.New()

		err := ledger.ApplyDelta(ctx, &categoryID, decimal.RequireFromString("10.00"))
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("alert fires when a budget newly exceeds its ceiling", func(t *testing.T) {
		repo := &ledgerBudgetRepo{affected: []*entity.Budget{
			budgetAfterDelta("100.00", "110.00", nil),
		}}
		queue := &recordingAlertQueue{}
		ledger := NewBudgetLedger(repo, queue, "ops@example.com")
		categoryID := uuid.New()

		// Spend was 90 before the 20 delta, so the ceiling was newly crossed.
		if err := ledger.ApplyDelta(ctx, &categoryID, decimal.RequireFromString("20.00")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(queue.jobs) != 1 {
			t.Fatalf("expected 1 alert job, got %d", len(queue.jobs))
		}
		if queue.jobs[0].Type != entity.AlertTypeExceeded {
			t.Errorf("expected exceeded alert, got %s", queue.jobs[0].Type)
		}
		if queue.jobs[0].RecipientEmail != "ops@example.com" {
			t.Errorf("unexpected recipient %s", queue.jobs[0].RecipientEmail)
		}
	})

	t.Run("no alert when the budget was already exceeded", func(t *testing.T) {
		repo := &ledgerBudgetRepo{affected: []*entity.Budget{
			budgetAfterDelta("100.00", "130.00", nil),
		}}
		queue := &recordingAlertQueue{}
		ledger := NewBudgetLedger(repo, queue, "ops@example.com")
		categoryID := uuid.New()

		// Spend was 120 before the 10 delta, already over the ceiling.
		if err := ledger.ApplyDelta(ctx, &categoryID, decimal.RequireFromString("10.00")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(queue.jobs) != 0 {
			t.Errorf("expected no alert jobs, got %d", len(queue.jobs))
		}
	})

	t.Run("threshold alert fires on first crossing", func(t *testing.T) {
		threshold := 80
		repo := &ledgerBudgetRepo{affected: []*entity.Budget{
			budgetAfterDelta("100.00", "85.00", &threshold),
		}}
		queue := &recordingAlertQueue{}
		ledger := NewBudgetLedger(repo, queue, "ops@example.com")
		categoryID := uuid.New()

		// Spend was 75 before the 10 delta, crossing the 80% threshold.
		if err := ledger.ApplyDelta(ctx, &categoryID, decimal.RequireFromString("10.00")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(queue.jobs) != 1 {
			t.Fatalf("expected 1 alert job, got %d", len(queue.jobs))
		}
		if queue.jobs[0].Type != entity.AlertTypeThreshold {
			t.Errorf("expected threshold alert, got %s", queue.jobs[0].Type)
		}
	})

	t.Run("negative deltas never raise alerts", func(t *testing.T) {
		repo := &ledgerBudgetRepo{affected: []*entity.Budget{
			budgetAfterDelta("100.00", "110.00", nil),
		}}
		queue := &recordingAlertQueue{}
		ledger := NewBudgetLedger(repo, queue, "ops@example.com")
		categoryID := uuid.New()

		if err := ledger.ApplyDelta(ctx, &categoryID, decimal.RequireFromString("-20.00")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.deltaCalls != 1 {
			t.Errorf("expected the delta to reach the repository, got %d calls", repo.deltaCalls)
		}
		if len(queue.jobs) != 0 {
			t.Errorf("expected no alert jobs for a reversal, got %d", len(queue.jobs))
		}
	})

	t.Run("enqueue failures do not fail the ledger write", func(t *testing.T) {
		repo := &ledgerBudgetRepo{affected: []*entity.Budget{
			budgetAfterDelta("100.00", "110.00", nil),
		}}
		queue := &recordingAlertQueue{err: errors.New("queue unavailable")}
		ledger := NewBudgetLedger(repo, queue, "ops@example.com")
		categoryID := uuid.New()

		if err := ledger.ApplyDelta(ctx, &categoryID, decimal.RequireFromString("20.00")); err != nil {
			t.Fatalf("expected enqueue failure to be swallowed, got %v", err)
		}
	})

	t.Run("missing recipient disables alerts", func(t *testing.T) {
		repo := &ledgerBudgetRepo{affected: []*entity.Budget{
			budgetAfterDelta("100.00", "110.00", nil),
		}}
		queue := &recordingAlertQueue{}
		ledger := NewBudgetLedger(repo, queue, "")
		categoryID := uuid.New()

		if err := ledger.ApplyDelta(ctx, &categoryID, decimal.RequireFromString("20.00")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue.jobs) != 0 {
			t.Errorf("expected no alert jobs without a recipient, got %d", len(queue.jobs))
		}
	})
}
