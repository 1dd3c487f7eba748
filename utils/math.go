package utils

import (
	"cosmossdk.io/math"
)

// CeilDiv returns ceil(a / b) using integer arithmetic: (a + b - 1) / b.
// b must be positive; callers guard the zero-divisor case.
func CeilDiv(a, b math.Int) math.Int {
	return a.Add(b).Sub(math.OneInt()).Quo(b)
}

// MinInt returns the smaller of a and b.
func MinInt(a, b math.Int) math.Int {
	if a.LT(b) {
		return a
	}
	return b
}
