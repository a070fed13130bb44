package domain

import (
	"fmt"
	"math"
)

// Round2 rounds a currency amount to 2 decimal places. Fees and displayed
// totals go through this exactly once.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney renders an amount in rand, e.g. "R120.00".
func FormatMoney(v float64) string {
	return fmt.Sprintf("R%.2f", Round2(v))
}
