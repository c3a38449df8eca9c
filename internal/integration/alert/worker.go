// Package alert delivers budget alerts via Resend.
package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// Worker processes the alert queue and delivers budget alerts.
type Worker struct {
	queue        adapter.AlertQueueRepository
	sender       adapter.AlertSender
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the alert worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new alert worker.
func NewWorker(queue adapter.AlertQueueRepository, sender adapter.AlertSender, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Alert worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Alert worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending alerts.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending alert jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing alert batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob processes a single alert job.
func (w *Worker) processJob(ctx context.Context, job *entity.AlertJob) {
	logger := slog.With(
		"job_id", job.ID,
		"alert_type", job.Type,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text := renderAlert(job)

	result, err := w.sender.Send(ctx, adapter.SendAlertInput{
		To:      job.RecipientEmail,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})

	if err != nil {
		logger.Error("Failed to deliver alert", "error", err)

		var alertErr *domainerror.AlertError
		isPermanent := errors.As(err, &alertErr) && alertErr.Code == domainerror.ErrCodePermanentAlertFailure

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Alert delivered successfully", "resend_id", result.ResendID)
}

// handleFailure handles a failed alert job.
func (w *Worker) handleFailure(ctx context.Context, job *entity.AlertJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.AlertStatusFailed {
		slog.Warn("Alert job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Alert job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// renderAlert builds the HTML and plain text bodies from the job payload.
func renderAlert(job *entity.AlertJob) (html string, text string) {
	heading := "Budget threshold reached"
	if job.Type == entity.AlertTypeExceeded {
		heading = "Budget exceeded"
	}

	name := getString(job.Payload, "budget_name")
	allocated := getString(job.Payload, "allocated")
	spent := getString(job.Payload, "spent")
	remaining := getString(job.Payload, "remaining")

	var h strings.Builder
	h.WriteString("<h2>" + heading + "</h2>")
	h.WriteString(fmt.Sprintf("<p>Budget <strong>%s</strong> requires attention.</p>", name))
	h.WriteString("<ul>")
	h.WriteString(fmt.Sprintf("<li>Allocated: %s</li>", allocated))
	h.WriteString(fmt.Sprintf("<li>Spent: %s</li>", spent))
	h.WriteString(fmt.Sprintf("<li>Remaining: %s</li>", remaining))
	h.WriteString("</ul>")

	var t strings.Builder
	t.WriteString(heading + "\n\n")
	t.WriteString(fmt.Sprintf("Budget %q requires attention.\n", name))
	t.WriteString(fmt.Sprintf("Allocated: %s\nSpent: %s\nRemaining: %s\n", allocated, spent, remaining))

	return h.String(), t.String()
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ProcessNow processes all pending alerts immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
