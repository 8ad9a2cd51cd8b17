package money

import "math"

// Round2 rounds a monetary amount to 2 decimal places using half-up rounding.
// All currency math in the pricing and checkout services goes through this
// helper so rounding behavior stays consistent across the API.
func Round2(amount float64) float64 {
	return math.Floor(amount*100+0.5) / 100
}

// ToCents converts a decimal RM amount to integer cents for storage.
func ToCents(amount float64) int64 {
	return int64(math.Floor(amount*100 + 0.5))
}

// FromCents converts stored integer cents back to a decimal RM amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// IsValidAmount reports whether a value is usable as a monetary input.
// Negative amounts, NaN and infinities are rejected.
func IsValidAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0
}
