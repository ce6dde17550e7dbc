// Package error defines domain-specific errors for the kas-sigmafam backend.
package error

import "errors"

// Cross-cutting errors shared by multiple domains.
var (
	// ErrInvalidPeriod is returned when a (year, month) pair does not name a
	// calendar month.
	ErrInvalidPeriod = errors.New("invalid period")
)

// Cross-cutting error codes shared by middleware and controllers.
const (
	// ErrCodeRateLimited is returned when a client exceeds the request rate limit.
	ErrCodeRateLimited = "KAS-429001"

	// ErrCodeInvalidPeriod is returned for malformed year/month query parameters.
	ErrCodeInvalidPeriod = "KAS-010001"
)
