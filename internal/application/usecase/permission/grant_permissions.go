// Package permission contains the permission gate use case.
package permission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// GrantPermissionsInput represents the input for replacing a user's grant.
type GrantPermissionsInput struct {
	UserID      uuid.UUID
	Permissions []string
}

// GrantPermissionsUseCase replaces the permission grant of a user.
type GrantPermissionsUseCase struct {
	permissionRepo adapter.PermissionRepository
	cache          adapter.PermissionCache
}

// NewGrantPermissionsUseCase creates a new GrantPermissionsUseCase instance.
func NewGrantPermissionsUseCase(
	permissionRepo adapter.PermissionRepository,
	cache adapter.PermissionCache,
) *GrantPermissionsUseCase {
	return &GrantPermissionsUseCase{
		permissionRepo: permissionRepo,
		cache:          cache,
	}
}

// Execute validates and saves the grant, then invalidates the cached entry so
// the next check observes the new permissions.
func (uc *GrantPermissionsUseCase) Execute(ctx context.Context, input GrantPermissionsInput) (*entity.PermissionGrant, error) {
	for _, permission := range input.Permissions {
		if !validPermission(permission) {
			return nil, domainerror.NewPermissionError(
				domainerror.ErrCodeInvalidPermission,
				fmt.Sprintf("invalid permission %q", permission),
				domainerror.ErrInvalidPermission,
			)
		}
	}

	grant := entity.NewPermissionGrant(input.UserID, input.Permissions)
	if err := uc.permissionRepo.Save(ctx, grant); err != nil {
		return nil, fmt.Errorf("failed to save permission grant: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("failed to invalidate cached permission grant",
				"user_id", input.UserID,
				"error", err,
			)
		}
	}

	return grant, nil
}

// validPermission accepts the global wildcard or finance:<resource>:<action>
// where action may be a wildcard.
func validPermission(permission string) bool {
	if permission == entity.PermissionScopeAll {
		return true
	}
	parts := strings.Split(permission, ":")
	if len(parts) != 3 || parts[0] != "finance" {
		return false
	}
	return parts[1] != "" && parts[2] != ""
}
