package geometry

import (
	"errors"
	"fmt"
)

// Dimension bounds shared by CartesianPoint and PolarPoint.
const (
	MinDimension = 1
	MaxDimension = 1024
)

// NamePlaceholder is the label given to points constructed without a name.
const NamePlaceholder = "untitled"

var (
	// ErrDimensionOutOfRange is returned when a dimension falls outside
	// [MinDimension, MaxDimension].
	ErrDimensionOutOfRange = errors.New("dimension was out of range")
	// ErrDimensionMismatch is returned when the number of components does
	// not agree with the stated dimension.
	ErrDimensionMismatch = errors.New("dimension and number of components do not match")
	// ErrIndexOutOfRange is returned by indexed accessors.
	ErrIndexOutOfRange = errors.New("the index was out of range")
	// ErrInvalidNumber is returned for NaN (and, where noted, infinite) input.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrDomain is returned when a cosine lies outside [-1, 1].
	ErrDomain = errors.New("cosine out of domain [-1, 1]")
	// ErrDegenerateCoordinates is returned under DegenerateFail when an angle
	// is undefined because every coordinate from its position onward is zero.
	ErrDegenerateCoordinates = errors.New("degenerate coordinates")
)

// ValidateDimension reports ErrDimensionOutOfRange for dimensions outside
// [MinDimension, MaxDimension]. Readers use it to reject a dimension before
// reading its coordinates.
func ValidateDimension(dimension int) error {
	if dimension < MinDimension || dimension > MaxDimension {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrDimensionOutOfRange, dimension, MinDimension, MaxDimension)
	}
	return nil
}

func validateIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, length)
	}
	return nil
}

func nameOrPlaceholder(name string) string {
	if name == "" {
		return NamePlaceholder
	}
	return name
}
