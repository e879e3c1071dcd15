package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDiv divides num by denom, returning nil when the denominator is zero.
// Callers serialize the nil as a JSON null instead of surfacing +Inf.
func SafeDiv(num, denom float64) *float64 {
	if denom == 0 {
		return nil
	}

	result := num / denom
	return &result
}
