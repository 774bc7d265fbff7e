package geometry

import (
	"fmt"
	"math"
)

// PolarPoint is a point in generalized spherical coordinates: a radius and
// Dimension()-1 angles in radians. It is read-only once constructed.
type PolarPoint struct {
	dimension int
	radius    float64
	angles    []float64
	name      string
}

// NewPolarPoint validates dimension against the shared bounds and requires
// exactly dimension-1 angles. The radius must be finite and non-negative.
func NewPolarPoint(dimension int, radius float64, angles []float64, name string) (PolarPoint, error) {
	if err := ValidateDimension(dimension); err != nil {
		return PolarPoint{}, err
	}
	if len(angles) != dimension-1 {
		return PolarPoint{}, fmt.Errorf("%w: dimension %d needs %d angles, got %d",
			ErrDimensionMismatch, dimension, dimension-1, len(angles))
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return PolarPoint{}, fmt.Errorf("radius %v: %w", radius, ErrInvalidNumber)
	}

	phi := make([]float64, len(angles))
	copy(phi, angles)
	return PolarPoint{
		dimension: dimension,
		radius:    radius,
		angles:    phi,
		name:      nameOrPlaceholder(name),
	}, nil
}

// PolarFromAngles infers the dimension as len(angles)+1.
func PolarFromAngles(radius float64, angles []float64, name string) (PolarPoint, error) {
	return NewPolarPoint(len(angles)+1, radius, angles, name)
}

// Name returns the display label.
func (p PolarPoint) Name() string { return p.name }

// Dimension returns the dimension of the Cartesian point this represents.
func (p PolarPoint) Dimension() int { return p.dimension }

// Radius returns the Euclidean norm, always >= 0.
func (p PolarPoint) Radius() float64 { return p.radius }

// Angles returns a copy of the angle vector.
func (p PolarPoint) Angles() []float64 {
	out := make([]float64, len(p.angles))
	copy(out, p.angles)
	return out
}

// Angle returns the angle at index, 0 <= index < Dimension()-1.
func (p PolarPoint) Angle(index int) (float64, error) {
	if err := validateIndex(index, len(p.angles)); err != nil {
		return 0, err
	}
	return p.angles[index], nil
}
