package money

import "github.com/shopspring/decimal"

// ToCents converts a major-unit amount to integer cents. Half cents round
// away from zero, so 0.005 becomes 1. Callers pass validated positive
// amounts only.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromCents converts integer cents back to a major-unit amount for display.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Shift(-2)
}
