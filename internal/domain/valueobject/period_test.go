package valueobject

import (
	"testing"
	"time"
)

func TestPeriod_Valid(t *testing.T) {
	cases := []struct {
		name   string
		period Period
		want   bool
	}{
		{"regular month", Period{Year: 2025, Month: 9}, true},
		{"january", Period{Year: 2025, Month: 1}, true},
		{"december", Period{Year: 2025, Month: 12}, true},
		{"month zero", Period{Year: 2025, Month: 0}, false},
		{"month thirteen", Period{Year: 2025, Month: 13}, false},
		{"year zero", Period{Year: 0, Month: 5}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.period.Valid(); got != tc.want {
				t.Errorf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPeriod_Range(t *testing.T) {
	start, end := Period{Year: 2025, Month: 12}.Range()

	wantStart := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestPeriod_Contains(t *testing.T) {
	period := Period{Year: 2025, Month: 9}

	if !period.Contains(time.Date(2025, time.September, 30, 23, 0, 0, 0, time.UTC)) {
		t.Error("expected last day of month to be contained")
	}
	if period.Contains(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected first day of next month to be excluded")
	}
	if period.Contains(time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected same month of another year to be excluded")
	}
}

func TestPeriod_MonthName(t *testing.T) {
	cases := []struct {
		month int
		want  string
	}{
		{1, "Januari"},
		{8, "Agustus"},
		{12, "Desember"},
		{0, ""},
		{13, ""},
	}

	for _, tc := range cases {
		got := Period{Year: 2025, Month: tc.month}.MonthName()
		if got != tc.want {
			t.Errorf("MonthName(%d) = %q, want %q", tc.month, got, tc.want)
		}
	}
}
