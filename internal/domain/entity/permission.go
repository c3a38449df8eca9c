// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PermissionScopeAll is the wildcard segment in permission strings.
const PermissionScopeAll = "*"

// PermissionGrant holds the flat list of permission strings assigned to a
// user. Permission strings follow the finance:<resource>:<action> format,
// with "*" allowed in the resource and action positions.
type PermissionGrant struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPermissionGrant creates a new PermissionGrant entity.
func NewPermissionGrant(userID uuid.UUID, permissions []string) *PermissionGrant {
	now := time.Now().UTC()
	return &PermissionGrant{
		ID:          uuid.New(),
		UserID:      userID,
		Permissions: permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
