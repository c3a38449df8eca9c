// Package error defines domain-specific errors for the Fleet Finance Hub.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetPeriod is returned when the budget period is invalid.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidBudgetWindow is returned when end_date precedes start_date.
	ErrInvalidBudgetWindow = errors.New("budget end date must not precede start date")

	// ErrNegativeBudgetAmount is returned when the budget ceiling is negative.
	ErrNegativeBudgetAmount = errors.New("budget amount must not be negative")

	// ErrInvalidAlertThreshold is returned when the alert threshold is outside 0-100.
	ErrInvalidAlertThreshold = errors.New("alert threshold must be between 0 and 100")
)

// BudgetErrorCode defines error codes for budget errors.
type BudgetErrorCode string

const (
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetWindow   BudgetErrorCode = "BGT-010003"
	ErrCodeNegativeBudgetAmount  BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidAlertThreshold BudgetErrorCode = "BGT-010005"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BGT-010006"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
