package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places amounts are rounded and written with.
const AmountPlaces = 2

// ParseAmount parses a plain decimal amount such as "1234.50".
// Surrounding whitespace is ignored; currency markers and separators are not.
func ParseAmount(s string) (decimal.Decimal, error) {
	dec, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount string '%s': %w", s, err)
	}
	return dec, nil
}

// FormatAmount renders an amount with exactly AmountPlaces decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountPlaces)
}
