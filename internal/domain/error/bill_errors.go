// Package error defines domain-specific errors for the kas-sigmafam backend.
package error

import "errors"

// Monthly bill domain errors.
var (
	// ErrBillNotFound is returned when a monthly bill is not found.
	ErrBillNotFound = errors.New("monthly bill not found")
)

// BillErrorCode defines error codes for monthly bill errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBillPeriod BillErrorCode = "BIL-010001"
	ErrCodeBillNotFound      BillErrorCode = "BIL-010002"
)

// BillError represents a monthly bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
