package broadcast

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{12500, "Rp12.500"},
		{100000, "Rp100.000"},
		{1500000, "Rp1.500.000"},
		{1234567890, "Rp1.234.567.890"},
		{-50000, "-Rp50.000"},
	}

	for _, tc := range cases {
		if got := FormatRupiah(tc.amount); got != tc.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatShortRupiah(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{500, "500"},
		{1000, "1k"},
		{12500, "12.5k"},
		{100000, "100k"},
		{150000, "150k"},
		{999999, "999.9k"},
		{1000000, "1jt"},
		{1500000, "1.5jt"},
		{2750000, "2.7jt"},
		{10000000, "10jt"},
	}

	for _, tc := range cases {
		if got := FormatShortRupiah(tc.amount); got != tc.want {
			t.Errorf("FormatShortRupiah(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
