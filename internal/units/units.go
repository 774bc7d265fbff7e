// Package units provides shared constants and validation for angle units
package units

import "math"

// Unit constants
const (
	Radians = "rad"
	Degrees = "deg"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{Radians, Degrees}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "rad, deg"
}

// ConvertAngle converts an angle from radians to the target units.
// Angles are always computed in radians.
func ConvertAngle(angleRad float64, targetUnits string) float64 {
	switch targetUnits {
	case Degrees:
		return angleRad * 180 / math.Pi
	case Radians:
		return angleRad // no conversion needed
	default:
		return angleRad // default to radians if unknown unit
	}
}

// ConvertAngles applies ConvertAngle to every element and returns a new slice.
func ConvertAngles(anglesRad []float64, targetUnits string) []float64 {
	out := make([]float64, len(anglesRad))
	for i, a := range anglesRad {
		out[i] = ConvertAngle(a, targetUnits)
	}
	return out
}
