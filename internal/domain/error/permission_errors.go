// Package error defines domain-specific errors for the Fleet Finance Hub.
package error

import "errors"

// Permission domain errors.
var (
	// ErrPermissionDenied is returned when a user lacks the required permission.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrPermissionGrantNotFound is returned when a user has no permission grant.
	ErrPermissionGrantNotFound = errors.New("permission grant not found")

	// ErrInvalidPermission is returned when a permission string is malformed.
	ErrInvalidPermission = errors.New("invalid permission")
)

// PermissionErrorCode defines error codes for permission errors.
type PermissionErrorCode string

const (
	ErrCodePermissionDenied  PermissionErrorCode = "PRM-010001"
	ErrCodeGrantNotFound     PermissionErrorCode = "PRM-010002"
	ErrCodeInvalidPermission PermissionErrorCode = "PRM-010003"
)

// PermissionError represents a permission error with code and message.
type PermissionError struct {
	Code    PermissionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PermissionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PermissionError) Unwrap() error {
	return e.Err
}

// NewPermissionError creates a new PermissionError with the given code and message.
func NewPermissionError(code PermissionErrorCode, message string, err error) *PermissionError {
	return &PermissionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
