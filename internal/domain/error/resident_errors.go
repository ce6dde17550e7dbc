// Package error defines domain-specific errors for the kas-sigmafam backend.
package error

import "errors"

// Resident domain errors.
var (
	// ErrResidentNotFound is returned when a resident is not found.
	ErrResidentNotFound = errors.New("resident not found")

	// ErrResidentNameRequired is returned when the resident name is empty.
	ErrResidentNameRequired = errors.New("resident name required")

	// ErrNegativeMonthlyAmount is returned when the default monthly amount is negative.
	ErrNegativeMonthlyAmount = errors.New("default monthly amount must not be negative")

	// ErrInvalidRoomType is returned when the room type is not 'ac' or 'non-ac'.
	ErrInvalidRoomType = errors.New("invalid room type")

	// ErrInvalidFloor is returned when the floor is not 'atas' or 'bawah'.
	ErrInvalidFloor = errors.New("invalid floor")
)

// ResidentErrorCode defines error codes for resident errors.
// Format: RES-XXYYYY where XX is category and YYYY is specific error.
type ResidentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeResidentNameRequired  ResidentErrorCode = "RES-010001"
	ErrCodeNegativeMonthlyAmount ResidentErrorCode = "RES-010002"
	ErrCodeInvalidRoomType       ResidentErrorCode = "RES-010003"
	ErrCodeInvalidFloor          ResidentErrorCode = "RES-010004"
	ErrCodeResidentNotFound      ResidentErrorCode = "RES-010005"
)

// ResidentError represents a resident error with code and message.
type ResidentError struct {
	Code    ResidentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ResidentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ResidentError) Unwrap() error {
	return e.Err
}

// NewResidentError creates a new ResidentError with the given code and message.
func NewResidentError(code ResidentErrorCode, message string, err error) *ResidentError {
	return &ResidentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
