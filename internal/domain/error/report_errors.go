// Package error defines domain-specific errors for the Fleet Finance Hub.
package error

import "errors"

// Report domain errors.
var (
	// ErrMissingReportStartDate is returned when the report start date is missing.
	ErrMissingReportStartDate = errors.New("start_date is required")

	// ErrMissingReportEndDate is returned when the report end date is missing.
	ErrMissingReportEndDate = errors.New("end_date is required")

	// ErrInvalidReportRange is returned when end_date precedes start_date.
	ErrInvalidReportRange = errors.New("end_date must not precede start_date")

	// ErrInvalidReportMonth is returned when the month is outside 1-12.
	ErrInvalidReportMonth = errors.New("month must be between 1 and 12")
)

// ReportErrorCode defines error codes for report errors.
type ReportErrorCode string

const (
	ErrCodeMissingReportStartDate ReportErrorCode = "RPT-010001"
	ErrCodeMissingReportEndDate   ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportRange     ReportErrorCode = "RPT-010003"
	ErrCodeInvalidReportMonth     ReportErrorCode = "RPT-010004"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
