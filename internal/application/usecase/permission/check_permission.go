// Package permission contains the permission gate use case.
package permission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// CheckPermissionInput represents the input for a permission check.
type CheckPermissionInput struct {
	UserID   uuid.UUID
	Resource string
	Action   string
}

// CheckPermissionUseCase answers whether a user may perform an action on a
// finance resource. Grants are read through a cache with a store fallback;
// a user without a grant record has no permissions.
type CheckPermissionUseCase struct {
	permissionRepo adapter.PermissionRepository
	cache          adapter.PermissionCache
	cacheTTL       time.Duration
}

// NewCheckPermissionUseCase creates a new CheckPermissionUseCase instance.
// The cache may be nil, in which case every check hits the store.
func NewCheckPermissionUseCase(
	permissionRepo adapter.PermissionRepository,
	cache adapter.PermissionCache,
	cacheTTL time.Duration,
) *CheckPermissionUseCase {
	return &CheckPermissionUseCase{
		permissionRepo: permissionRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

// Execute resolves the user's grant and matches it against the requested
// permission. Store errors deny access; cache errors fall through to the
// store.
func (uc *CheckPermissionUseCase) Execute(ctx context.Context, input CheckPermissionInput) (bool, error) {
	required := fmt.Sprintf("finance:%s:%s", input.Resource, input.Action)

	if uc.cache != nil {
		permissions, found, err := uc.cache.Get(ctx, input.UserID)
		if err != nil {
			slog.Warn("permission cache lookup failed, falling back to store",
				"user_id", input.UserID,
				"error", err,
			)
		} else if found {
			return matches(permissions, required), nil
		}
	}

	grant, err := uc.permissionRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPermissionGrantNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve permission grant: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.UserID, grant.Permissions, uc.cacheTTL); err != nil {
			slog.Warn("failed to cache permission grant",
				"user_id", input.UserID,
				"error", err,
			)
		}
	}

	return matches(grant.Permissions, required), nil
}

// matches reports whether any granted permission covers the required one.
// Grants match exactly, globally ("*") or per resource ("finance:budgets:*").
func matches(granted []string, required string) bool {
	for _, permission := range granted {
		if permission == required || permission == entity.PermissionScopeAll {
			return true
		}
		if suffix, ok := strings.CutSuffix(permission, ":*"); ok {
			if strings.HasPrefix(required, suffix+":") {
				return true
			}
		}
	}
	return false
}
