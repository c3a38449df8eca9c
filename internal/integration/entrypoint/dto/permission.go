// Package dto defines data transfer objects for API requests and responses.
package dto

import "time"

// GrantPermissionsRequest represents the request body for granting permissions.
type GrantPermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"required,min=1"`
}

// PermissionGrantResponse represents a user's permission grant.
type PermissionGrantResponse struct {
	UserID      string    `json:"user_id"`
	Permissions []string  `json:"permissions"`
	UpdatedAt   time.Time `json:"updated_at"`
}
