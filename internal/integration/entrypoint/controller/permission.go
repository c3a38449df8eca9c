// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fleetops/finance-hub/internal/application/usecase/permission"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
	"github.com/fleetops/finance-hub/internal/integration/entrypoint/dto"
)

// PermissionController handles permission grant endpoints.
type PermissionController struct {
	grantUseCase *permission.GrantPermissionsUseCase
}

// NewPermissionController creates a new permission controller instance.
func NewPermissionController(grantUseCase *permission.GrantPermissionsUseCase) *PermissionController {
	return &PermissionController{
		grantUseCase: grantUseCase,
	}
}

// Grant handles PUT /permissions/:userId requests. The grant replaces the
// user's previous permission set.
func (c *PermissionController) Grant(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	var req dto.GrantPermissionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidPermission),
		})
		return
	}

	grant, err := c.grantUseCase.Execute(ctx.Request.Context(), permission.GrantPermissionsInput{
		UserID:      userID,
		Permissions: req.Permissions,
	})
	if err != nil {
		c.handlePermissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PermissionGrantResponse{
		UserID:      grant.UserID.String(),
		Permissions: grant.Permissions,
		UpdatedAt:   grant.UpdatedAt,
	})
}

// handlePermissionError handles permission errors and returns appropriate HTTP responses.
func (c *PermissionController) handlePermissionError(ctx *gin.Context, err error) {
	var permErr *domainerror.PermissionError
	if errors.As(err, &permErr) {
		statusCode := c.getStatusCodeForPermissionError(permErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: permErr.Message,
			Code:  string(permErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPermissionError maps permission error codes to HTTP status codes.
func (c *PermissionController) getStatusCodeForPermissionError(code domainerror.PermissionErrorCode) int {
	switch code {
	case domainerror.ErrCodePermissionDenied:
		return http.StatusForbidden
	case domainerror.ErrCodeGrantNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPermission:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
