// Package error defines domain-specific errors for the kas-sigmafam backend.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNonPositiveAmount is returned when the amount is zero or negative.
	// Direction is conveyed by the type, never by a negative amount.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrTransactionDateRequired is returned when the transaction date is missing.
	ErrTransactionDateRequired = errors.New("transaction date required")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType  TransactionErrorCode = "TRX-010001"
	ErrCodeNonPositiveAmount       TransactionErrorCode = "TRX-010002"
	ErrCodeTransactionDateRequired TransactionErrorCode = "TRX-010003"
	ErrCodeTransactionNotFound     TransactionErrorCode = "TRX-010004"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
