// Package error defines domain-specific errors for the Fleet Finance Hub.
package error

import "errors"

// Alert delivery errors.
var (
	// ErrAlertJobNotFound is returned when an alert job is not found in the queue.
	ErrAlertJobNotFound = errors.New("alert job not found")
)

// AlertErrorCode defines error codes for alert delivery errors.
type AlertErrorCode string

const (
	ErrCodeAlertJobNotFound      AlertErrorCode = "ALR-010001"
	ErrCodeTemporaryAlertFailure AlertErrorCode = "ALR-020001"
	ErrCodePermanentAlertFailure AlertErrorCode = "ALR-020002"
)

// AlertError represents an alert delivery error with code and message.
type AlertError struct {
	Code    AlertErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AlertError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AlertError) Unwrap() error {
	return e.Err
}

// NewAlertError creates a new AlertError with the given code and message.
func NewAlertError(code AlertErrorCode, message string, err error) *AlertError {
	return &AlertError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
