// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// AlertQueueRepository defines the interface for the budget alert queue.
type AlertQueueRepository interface {
	// Enqueue adds a new alert job to the queue.
	Enqueue(ctx context.Context, job *entity.AlertJob) error

	// GetPendingJobs retrieves up to limit jobs that are ready to process,
	// oldest scheduled first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.AlertJob, error)

	// Update persists status changes of an alert job.
	Update(ctx context.Context, job *entity.AlertJob) error
}

// SendAlertInput holds the fields needed to deliver one alert.
type SendAlertInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendAlertResult holds the provider response for a delivered alert.
type SendAlertResult struct {
	ResendID string
}

// AlertSender delivers budget alerts to their recipients.
type AlertSender interface {
	// Send delivers a single alert.
	Send(ctx context.Context, input SendAlertInput) (*SendAlertResult, error)
}
