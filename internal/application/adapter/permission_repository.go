// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/domain/entity"
)

// PermissionRepository defines the interface for permission grant persistence.
type PermissionRepository interface {
	// Save creates or replaces the permission grant for a user.
	Save(ctx context.Context, grant *entity.PermissionGrant) error

	// FindByUserID retrieves the permission grant for a user. A user with no
	// grant yields ErrPermissionGrantNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PermissionGrant, error)
}

// PermissionCache caches per-user permission lists. Implementations are
// best-effort: a cache failure must never grant access and callers fall
// through to the repository on miss or error.
type PermissionCache interface {
	// Get returns the cached permission list for a user and whether it was present.
	Get(ctx context.Context, userID uuid.UUID) ([]string, bool, error)

	// Set stores the permission list for a user with the given TTL.
	Set(ctx context.Context, userID uuid.UUID, permissions []string, ttl time.Duration) error

	// Invalidate drops the cached permission list for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
