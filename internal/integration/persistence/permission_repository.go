// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	"github.com/fleetops/finance-hub/internal/domain/entity"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
	"github.com/fleetops/finance-hub/internal/integration/persistence/model"
)

// permissionRepository implements the adapter.PermissionRepository interface.
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository instance.
func NewPermissionRepository(db *gorm.DB) adapter.PermissionRepository {
	return &permissionRepository{
		db: db,
	}
}

// Save creates or replaces the permission grant for a user.
func (r *permissionRepository) Save(ctx context.Context, grant *entity.PermissionGrant) error {
	grantModel := model.PermissionGrantFromEntity(grant)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"permissions": grantModel.Permissions,
				"updated_at":  time.Now().UTC(),
			}),
		}).
		Create(grantModel)
	return result.Error
}

// FindByUserID retrieves the permission grant for a user.
func (r *permissionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PermissionGrant, error) {
	var grantModel model.PermissionGrantModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&grantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPermissionGrantNotFound
		}
		return nil, result.Error
	}
	return grantModel.ToEntity(), nil
}
