// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	"github.com/fleetops/finance-hub/internal/integration/persistence/model"
)

// alertQueueRepository implements the adapter.AlertQueueRepository interface.
type alertQueueRepository struct {
	db *gorm.DB
}

// NewAlertQueueRepository creates a new alert queue repository instance.
func NewAlertQueueRepository(db *gorm.DB) adapter.AlertQueueRepository {
	return &alertQueueRepository{
		db: db,
	}
}

// Enqueue adds a new alert job to the queue.
func (r *alertQueueRepository) Enqueue(ctx context.Context, job *entity.AlertJob) error {
	alertModel := model.AlertQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(alertModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetPendingJobs retrieves jobs ready to be processed, oldest scheduled first.
func (r *alertQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.AlertJob, error) {
	var models []model.AlertQueueModel

	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.AlertStatusPending)).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.AlertJob, len(models))
	for i, m := range models {
		jobs[i] = m.ToEntity()
	}

	return jobs, nil
}

// Update saves changes to an alert job.
func (r *alertQueueRepository) Update(ctx context.Context, job *entity.AlertJob) error {
	alertModel := model.AlertQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Save(alertModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
