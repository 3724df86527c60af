package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StandardizeAmount normalizes an exported amount string so it can be
// parsed as a decimal: surrounding whitespace and thousands separators
// are removed and a decimal comma becomes a decimal point.
func StandardizeAmount(amount string) string {
	s := strings.TrimSpace(amount)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, " ", "")

	// "1.234,56" style: dot is a thousands separator, comma is decimal
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}

// ParseAmount parses an exported amount string into a decimal.
func ParseAmount(amount string) (decimal.Decimal, error) {
	return decimal.NewFromString(StandardizeAmount(amount))
}
