// Package core provides the finance ledger domain: transactions, periods,
// aggregation, grouping, and savings goals.
//
// This file contains amount parsing and Rupiah formatting. Amounts are
// whole-Rupiah int64 values throughout; there is no fractional unit.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a user-entered amount to whole Rupiah. It accepts
// plain digit strings and dot-grouped input as produced by the entry form
// ("1.500.000" -> 1500000). Negative, zero, and non-numeric input is
// rejected.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	// Dots are thousand separators, never decimals.
	s = strings.ReplaceAll(s, ".", "")
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatRupiah renders an amount as "Rp 5.000.000". Negative values keep
// the sign in front of the currency marker.
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := groupThousands(amount)
	if neg {
		return "-Rp " + s
	}
	return "Rp " + s
}

func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	l := len(digits)
	for i := 0; i < l; i++ {
		b.WriteByte(digits[i])
		rem := l - i - 1
		if rem > 0 && rem%3 == 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}
