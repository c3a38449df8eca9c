package alert

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

type fakeAlertQueue struct {
	jobs   []*entity.AlertJob
	getErr error
}

func (q *fakeAlertQueue) Enqueue(_ context.Context, job *entity.AlertJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeAlertQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.AlertJob, error) {
	if q.getErr != nil {
		return nil, q.getErr
	}
	var pending []*entity.AlertJob
	for _, job := range q.jobs {
		if job.Status == entity.AlertStatusPending {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *fakeAlertQueue) Update(_ context.Context, _ *entity.AlertJob) error {
	return nil
}

type fakeAlertSender struct {
	sent []adapter.SendAlertInput
	err  error
}

func (s *fakeAlertSender) Send(_ context.Context, input adapter.SendAlertInput) (*adapter.SendAlertResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, input)
	return &adapter.SendAlertResult{ResendID: "re_123"}, nil
}

func thresholdJob() *entity.AlertJob {
	return entity.NewAlertJob(
		entity.AlertTypeThreshold,
		uuid.New(),
		"ops@example.com",
		"Budget threshold reached: Monthly Fuel",
		map[string]interface{}{
			"budget_name": "Monthly Fuel",
			"allocated":   "1000.00",
			"spent":       "850.00",
			"remaining":   "150.00",
		},
	)
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers a pending job and marks it sent", func(t *testing.T) {
		queue := &fakeAlertQueue{jobs: []*entity.AlertJob{thresholdJob()}}
		sender := &fakeAlertSender{}
		worker := NewWorker(queue, sender, DefaultWorkerConfig())

		worker.ProcessNow(ctx)

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 delivery, got %d", len(sender.sent))
		}
		if sender.sent[0].To != "ops@example.com" {
			t.Errorf("unexpected recipient %q", sender.sent[0].To)
		}
		if !strings.Contains(sender.sent[0].HTML, "Monthly Fuel") {
			t.Errorf("HTML body does not mention the budget name: %q", sender.sent[0].HTML)
		}

		job := queue.jobs[0]
		if job.Status != entity.AlertStatusSent {
			t.Errorf("expected status sent, got %q", job.Status)
		}
		if job.ResendID != "re_123" {
			t.Errorf("expected resend id re_123, got %q", job.ResendID)
		}
		if job.ProcessedAt == nil {
			t.Error("expected ProcessedAt to be set")
		}
	})

	t.Run("temporary failure reschedules the job", func(t *testing.T) {
		queue := &fakeAlertQueue{jobs: []*entity.AlertJob{thresholdJob()}}
		sender := &fakeAlertSender{err: errors.New("resend: 503")}
		worker := NewWorker(queue, sender, DefaultWorkerConfig())

		worker.ProcessNow(ctx)

		job := queue.jobs[0]
		if job.Status != entity.AlertStatusPending {
			t.Errorf("expected status pending for retry, got %q", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
		if job.LastError == "" {
			t.Error("expected LastError to be recorded")
		}
	})

	t.Run("permanent failure fails the job immediately", func(t *testing.T) {
		queue := &fakeAlertQueue{jobs: []*entity.AlertJob{thresholdJob()}}
		sender := &fakeAlertSender{err: domainerror.NewAlertError(
			domainerror.ErrCodePermanentAlertFailure, "invalid recipient", nil,
		)}
		worker := NewWorker(queue, sender, DefaultWorkerConfig())

		worker.ProcessNow(ctx)

		job := queue.jobs[0]
		if job.Status != entity.AlertStatusFailed {
			t.Errorf("expected status failed, got %q", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
	})

	t.Run("exhausted attempts fail the job", func(t *testing.T) {
		job := thresholdJob()
		job.Attempts = 2
		queue := &fakeAlertQueue{jobs: []*entity.AlertJob{job}}
		sender := &fakeAlertSender{err: errors.New("resend: 503")}
		worker := NewWorker(queue, sender, DefaultWorkerConfig())

		worker.ProcessNow(ctx)

		if job.Status != entity.AlertStatusFailed {
			t.Errorf("expected status failed after max attempts, got %q", job.Status)
		}
		if job.Attempts != 3 {
			t.Errorf("expected 3 attempts, got %d", job.Attempts)
		}
	})

	t.Run("queue read error delivers nothing", func(t *testing.T) {
		queue := &fakeAlertQueue{getErr: errors.New("db down")}
		sender := &fakeAlertSender{}
		worker := NewWorker(queue, sender, DefaultWorkerConfig())

		worker.ProcessNow(ctx)

		if len(sender.sent) != 0 {
			t.Errorf("expected no deliveries, got %d", len(sender.sent))
		}
	})
}

func TestRenderAlert(t *testing.T) {
	t.Run("threshold heading", func(t *testing.T) {
		html, text := renderAlert(thresholdJob())
		if !strings.Contains(html, "Budget threshold reached") {
			t.Errorf("unexpected HTML heading: %q", html)
		}
		if !strings.Contains(text, "Allocated: 1000.00") {
			t.Errorf("text body missing allocation: %q", text)
		}
	})

	t.Run("exceeded heading", func(t *testing.T) {
		job := thresholdJob()
		job.Type = entity.AlertTypeExceeded
		html, _ := renderAlert(job)
		if !strings.Contains(html, "Budget exceeded") {
			t.Errorf("unexpected HTML heading: %q", html)
		}
	})
}
