// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// AlertQueueModel represents the alert_queue table in the database.
type AlertQueueModel struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Type           string       `gorm:"type:varchar(30);not null"`
	BudgetID       uuid.UUID    `gorm:"type:uuid;not null;index"`
	RecipientEmail string       `gorm:"type:varchar(255);not null"`
	Subject        string       `gorm:"type:varchar(500);not null"`
	Payload        string       `gorm:"type:jsonb;not null;default:'{}'"`
	Status         string       `gorm:"type:varchar(20);not null;default:'pending'"`
	Attempts       int          `gorm:"not null;default:0"`
	MaxAttempts    int          `gorm:"not null;default:3"`
	LastError      string       `gorm:"type:text"`
	ResendID       string       `gorm:"type:varchar(100)"`
	CreatedAt      time.Time    `gorm:"not null"`
	ScheduledAt    time.Time    `gorm:"not null;index"`
	ProcessedAt    sql.NullTime
}

// TableName returns the table name for the AlertQueueModel.
func (AlertQueueModel) TableName() string {
	return "alert_queue"
}

// ToEntity converts an AlertQueueModel to a domain AlertJob entity.
func (m *AlertQueueModel) ToEntity() *entity.AlertJob {
	var payload map[string]interface{}
	if m.Payload != "" {
		if err := json.Unmarshal([]byte(m.Payload), &payload); err != nil {
			slog.Warn("Failed to unmarshal alert payload", "error", err, "id", m.ID)
		}
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	var processedAt *time.Time
	if m.ProcessedAt.Valid {
		processedAt = &m.ProcessedAt.Time
	}

	return &entity.AlertJob{
		ID:             m.ID,
		Type:           entity.AlertType(m.Type),
		BudgetID:       m.BudgetID,
		RecipientEmail: m.RecipientEmail,
		Subject:        m.Subject,
		Payload:        payload,
		Status:         entity.AlertStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    processedAt,
	}
}

// AlertQueueModelFromEntity creates an AlertQueueModel from a domain AlertJob entity.
func AlertQueueModelFromEntity(job *entity.AlertJob) *AlertQueueModel {
	payloadJSON, err := json.Marshal(job.Payload)
	if err != nil {
		slog.Error("Failed to marshal alert payload", "error", err, "job_id", job.ID)
		payloadJSON = []byte("{}")
	}

	var processedAt sql.NullTime
	if job.ProcessedAt != nil {
		processedAt = sql.NullTime{Time: *job.ProcessedAt, Valid: true}
	}

	return &AlertQueueModel{
		ID:             job.ID,
		Type:           string(job.Type),
		BudgetID:       job.BudgetID,
		RecipientEmail: job.RecipientEmail,
		Subject:        job.Subject,
		Payload:        string(payloadJSON),
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ResendID:       job.ResendID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    processedAt,
	}
}
