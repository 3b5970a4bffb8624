// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with the currency symbol, thousands
// separators and two fraction digits.
// e.g., ("R$", 1234.5) -> "R$ 1,234.50"
func FormatMoney(currency string, v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(math.Round(v * 100))
	s := FormatNumber(cents/100) + fmt.Sprintf(".%02d", cents%100)
	if neg {
		s = "-" + s
	}
	if currency == "" {
		return s
	}
	return currency + " " + s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 share as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatCount pluralizes a noun for a count.
// e.g., (1, "transaction") -> "1 transaction"
func FormatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return FormatNumber(int64(n)) + " " + noun + "s"
}

// Truncate shortens s to width runes, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
