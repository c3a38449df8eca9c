// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/finance-hub/internal/application/usecase/permission"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
	"github.com/fleetops/finance-hub/internal/integration/entrypoint/dto"
)

// PermissionMiddleware gates finance endpoints behind permission checks.
type PermissionMiddleware struct {
	checkPermission *permission.CheckPermissionUseCase
}

// NewPermissionMiddleware creates a new permission middleware instance.
func NewPermissionMiddleware(checkPermission *permission.CheckPermissionUseCase) *PermissionMiddleware {
	return &PermissionMiddleware{
		checkPermission: checkPermission,
	}
}

// RequirePermission returns a Gin middleware handler that denies the request
// unless the authenticated user holds the given permission. Check failures
// deny access.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authentication required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		allowed, err := m.checkPermission.Execute(c.Request.Context(), permission.CheckPermissionInput{
			UserID:   userID,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			slog.Error("permission check failed",
				"user_id", userID,
				"resource", resource,
				"action", action,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to verify permissions",
				Code:  string(domainerror.ErrCodePermissionDenied),
			})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "You do not have permission to perform this action",
				Code:  string(domainerror.ErrCodePermissionDenied),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
