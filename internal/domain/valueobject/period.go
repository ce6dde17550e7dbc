// Package valueobject defines immutable domain values derived from entities.
package valueobject

import "time"

// monthNames holds Indonesian month names indexed by 1-based month.
var monthNames = [...]string{
	"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Period identifies one calendar month (1-based).
type Period struct {
	Year  int
	Month int
}

// Valid reports whether the period is a plausible calendar month.
func (p Period) Valid() bool {
	return p.Year > 0 && p.Month >= 1 && p.Month <= 12
}

// Range returns the half-open UTC interval [first of month, first of next month).
func (p Period) Range() (start, end time.Time) {
	start = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether the given date falls inside the period.
func (p Period) Contains(date time.Time) bool {
	return date.Year() == p.Year && int(date.Month()) == p.Month
}

// MonthName returns the Indonesian month name, or "" for an invalid month.
func (p Period) MonthName() string {
	if p.Month < 1 || p.Month > 12 {
		return ""
	}
	return monthNames[p.Month]
}
