package validate

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Name validates the product name: trimmed, non-empty, reasonable length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Category follows the same rules as Name.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Price parses a decimal amount and requires it to be strictly positive.
func Price(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// Quantity parses a non-negative integer count.
func Quantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ID parses a positive record identifier.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Q normalizes a search term: trims and clamps length on a rune
// boundary. An empty result means "no filter".
func Q(s string) string {
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > 50 {
		s = string(runes[:50])
	}
	return s
}
