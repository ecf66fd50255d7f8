// Package money converts exact decimal amounts to and from the integer minor
// units the banking API uses on the wire ("10.00" <-> 1000).
package money

import (
	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of decimal places of a minor unit. The API
// expresses every currency in hundredths.
const MinorUnitExponent = 2

var hundred = decimal.New(1, MinorUnitExponent)

// ToMinorUnits converts amount to integer minor units, rounding half away
// from zero at the minor-unit boundary.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromMinorUnits converts integer minor units to an exact decimal with two
// fractional digits.
func FromMinorUnits(units int64) decimal.Decimal {
	return decimal.New(units, -MinorUnitExponent)
}

// Parse reads a decimal string such as "10.00".
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustParse is Parse for constants and tests. It panics on malformed input.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Amount wraps an amount that may be absent.
func Amount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}

// Format renders an amount with exactly two fractional digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(MinorUnitExponent)
}
