package geometry

import "fmt"

// CartesianPoint is a named point given by its orthogonal coordinates.
// The zero value is not valid; use NewCartesianPoint.
type CartesianPoint struct {
	dimension   int
	coordinates []float64
	name        string
}

// NewCartesianPoint validates dimension against the shared bounds and
// against len(coordinates). The coordinates are copied. An empty name is
// replaced by NamePlaceholder.
func NewCartesianPoint(dimension int, coordinates []float64, name string) (CartesianPoint, error) {
	if err := ValidateDimension(dimension); err != nil {
		return CartesianPoint{}, err
	}
	if len(coordinates) != dimension {
		return CartesianPoint{}, fmt.Errorf("%w: dimension %d, %d coordinates",
			ErrDimensionMismatch, dimension, len(coordinates))
	}

	x := make([]float64, dimension)
	copy(x, coordinates)
	return CartesianPoint{
		dimension:   dimension,
		coordinates: x,
		name:        nameOrPlaceholder(name),
	}, nil
}

// CartesianFromCoordinates infers the dimension from len(coordinates).
func CartesianFromCoordinates(coordinates []float64, name string) (CartesianPoint, error) {
	return NewCartesianPoint(len(coordinates), coordinates, name)
}

// Name returns the display label.
func (p CartesianPoint) Name() string { return p.name }

// Dimension returns the number of coordinates.
func (p CartesianPoint) Dimension() int { return p.dimension }

// Coordinates returns a copy of the coordinate vector.
func (p CartesianPoint) Coordinates() []float64 {
	out := make([]float64, len(p.coordinates))
	copy(out, p.coordinates)
	return out
}

// Coordinate returns the coordinate at index.
func (p CartesianPoint) Coordinate(index int) (float64, error) {
	if err := validateIndex(index, p.dimension); err != nil {
		return 0, err
	}
	return p.coordinates[index], nil
}

// SetCoordinate replaces the coordinate at index. It is the only mutation a
// CartesianPoint allows. The write goes to a fresh vector, so copies of p
// made before the call keep their values.
func (p *CartesianPoint) SetCoordinate(index int, value float64) error {
	if err := validateIndex(index, p.dimension); err != nil {
		return err
	}
	x := make([]float64, len(p.coordinates))
	copy(x, p.coordinates)
	x[index] = value
	p.coordinates = x
	return nil
}
