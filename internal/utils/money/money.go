// Package money normalizes monetary values between the integer minor-unit
// representation the store owns and the decimal display amounts the
// presentation layer deals in.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the home currency applied when a caller leaves the
// currency blank. No conversion between currencies is ever performed; the
// code is a label.
const DefaultCurrency = "GBP"

// minorExponent is fixed at 2 decimal places (pence per pound).
const minorExponent = 2

// ToDecimal derives the display amount from an authoritative minor-unit
// count: 2540 -> 25.40.
func ToDecimal(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Shift(-minorExponent)
}

// ToMinor converts a caller-supplied decimal amount to minor units,
// rounding half away from zero: 25.405 -> 2541, -25.405 -> -2541.
func ToMinor(amount decimal.Decimal) int64 {
	return amount.Shift(minorExponent).Round(0).IntPart()
}

// NormalizeCurrency trims and upper-cases a currency code, falling back to
// DefaultCurrency when the input is blank.
func NormalizeCurrency(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultCurrency
	}
	return strings.ToUpper(code)
}
