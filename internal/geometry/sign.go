package geometry

import (
	"fmt"
	"math"
)

// SignTolerance is the half-width of the band around zero that Sign treats
// as exactly zero.
const SignTolerance = 1e-8

// Sign classifies value as -1, 0 or +1. Values with magnitude at most
// SignTolerance are 0. NaN yields ErrInvalidNumber.
func Sign(value float64) (int, error) {
	if math.IsNaN(value) {
		return 0, fmt.Errorf("sign of NaN: %w", ErrInvalidNumber)
	}
	switch {
	case math.Abs(value) <= SignTolerance:
		return 0, nil
	case value > 0:
		return 1, nil
	default:
		return -1, nil
	}
}

// AngleFromCosine returns acos(cosine) folded into [0, 2π): a negative sign
// selects 2π - acos(cosine), the reflex angle with the same cosine.
// A cosine of exactly 1 maps to 0 for either sign so the result never reaches 2π.
// Cosines outside [-1, 1] (or NaN) yield ErrDomain.
func AngleFromCosine(sign int, cosine float64) (float64, error) {
	if math.IsNaN(cosine) || cosine < -1 || cosine > 1 {
		return 0, fmt.Errorf("%w: %v", ErrDomain, cosine)
	}
	angle := math.Acos(cosine)
	if sign < 0 && angle > 0 {
		return 2*math.Pi - angle, nil
	}
	return angle, nil
}
