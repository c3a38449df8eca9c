// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// PermissionGrantModel represents the permission_grants table in the database.
type PermissionGrantModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Permissions pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

// TableName returns the table name for the PermissionGrantModel.
func (PermissionGrantModel) TableName() string {
	return "permission_grants"
}

// ToEntity converts a PermissionGrantModel to a domain PermissionGrant entity.
func (m *PermissionGrantModel) ToEntity() *entity.PermissionGrant {
	return &entity.PermissionGrant{
		ID:          m.ID,
		UserID:      m.UserID,
		Permissions: []string(m.Permissions),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PermissionGrantFromEntity creates a PermissionGrantModel from a domain PermissionGrant entity.
func PermissionGrantFromEntity(grant *entity.PermissionGrant) *PermissionGrantModel {
	return &PermissionGrantModel{
		ID:          grant.ID,
		UserID:      grant.UserID,
		Permissions: pq.StringArray(grant.Permissions),
		CreatedAt:   grant.CreatedAt,
		UpdatedAt:   grant.UpdatedAt,
	}
}
