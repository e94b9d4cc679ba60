package app

// ToMinorUnits converts a major-unit amount (e.g. 13.74 dollars) to the
// smallest currency unit Stripe prices in. Multiply-then-cast truncates toward
// zero rather than rounding; callers send totals already fixed to two
// decimals, and the truncation is long-standing behavior.
func ToMinorUnits(amount float64) int64 {
	return int64(amount * 100)
}
