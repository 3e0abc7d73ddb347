// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with comma separators and a currency
// label, rounding to whole units. e.g., 1234567.89, "USD" -> "1,234,568 USD"
func FormatMoney(v float64, currency string) string {
	s := FormatNumber(int64(math.Round(v)))
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatAmount formats an amount with comma separators and two decimals,
// without a currency label. e.g., 1234567.891 -> "1,234,567.89"
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := math.Floor(v)
	cents := int(math.Round((v - whole) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	s := fmt.Sprintf("%s.%02d", FormatNumber(int64(whole)), cents)
	if neg {
		return "-" + s
	}
	return s
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

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatFactor formats an inflation factor. e.g., 1.62889 -> "1.63"
func FormatFactor(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// FormatCompact formats a value with human-readable magnitude suffixes.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M"
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
