// Package transaction contains transaction-related use cases.
package transaction

import (
	"errors"
	"time"
)

// transactionDateLayout is the wire format for transaction dates.
const transactionDateLayout = "2006-01-02"

// parseTransactionDate parses a calendar date into a UTC midnight timestamp.
func parseTransactionDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	return time.ParseInLocation(transactionDateLayout, value, time.UTC)
}
