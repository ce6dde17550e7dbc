package broadcast

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRupiah renders a whole-rupiah amount with dot thousand separators,
// e.g. 1500000 -> "Rp1.500.000". Negative amounts get a leading minus.
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString("Rp")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// FormatShortRupiah renders the compact form used inside broadcast messages:
// millions as "jt", thousands as "k", with at most one decimal place and the
// decimal dropped when it is zero. 1500000 -> "1.5jt", 1000000 -> "1jt",
// 12500 -> "12.5k", 100000 -> "100k", 500 -> "500".
func FormatShortRupiah(amount int64) string {
	switch {
	case amount >= 1_000_000:
		return scaled(amount, 1_000_000) + "jt"
	case amount >= 1_000:
		return scaled(amount, 1_000) + "k"
	default:
		return strconv.FormatInt(amount, 10)
	}
}

// scaled divides amount by unit keeping one truncated decimal, trimmed when zero.
func scaled(amount, unit int64) string {
	whole := amount / unit
	tenth := amount % unit * 10 / unit
	if tenth == 0 {
		return strconv.FormatInt(whole, 10)
	}
	return fmt.Sprintf("%d.%d", whole, tenth)
}
