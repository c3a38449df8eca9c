// Package error defines domain-specific errors for the Fleet Finance Hub.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrParentCategoryNotFound is returned when the parent category does not exist.
	ErrParentCategoryNotFound = errors.New("parent category not found")

	// ErrNestedParentCategory is returned when the parent category itself has a parent.
	ErrNestedParentCategory = errors.New("categories may only be nested one level deep")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound       CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType    CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameRequired   CategoryErrorCode = "CAT-010003"
	ErrCodeParentCategoryNotFound CategoryErrorCode = "CAT-010004"
	ErrCodeNestedParentCategory   CategoryErrorCode = "CAT-010005"
	ErrCodeMissingCategoryFields  CategoryErrorCode = "CAT-010006"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
