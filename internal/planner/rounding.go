package planner

// mulDivRoundHalfEven computes value*numerator/denominator in pure integer
// arithmetic, rounding the result half-to-even. Banker's rounding keeps
// repeated monthly rate calculations free of cumulative drift over long
// horizons.
//
// denominator must be positive; value and numerator must be non-negative.
// The intermediate product stays well inside int64 for realistic balances
// (tens of millions in cents) and basis-point rates.
func mulDivRoundHalfEven(value, numerator, denominator int64) int64 {
	product := value * numerator
	quotient := product / denominator
	remainder := product % denominator

	switch {
	case 2*remainder > denominator:
		quotient++
	case 2*remainder == denominator && quotient%2 != 0:
		quotient++
	}
	return quotient
}

// ceilDiv returns value/divisor rounded up. Used for sizing level payments
// that must clear a balance within a fixed number of months.
func ceilDiv(value, divisor int64) int64 {
	if value <= 0 {
		return 0
	}
	return (value + divisor - 1) / divisor
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
