// Package geometry owns the n-dimensional point model and the
// Cartesian → generalized spherical conversion.
//
// Responsibilities: validated point types (CartesianPoint, PolarPoint),
// the shared dimension bounds, sign classification with a tolerance band,
// and the n-sphere parametrization in both directions.
// Key types: CartesianPoint, PolarPoint, ConvertOption.
//
// Dependency rule: geometry depends on nothing else in this module. Console
// scanning and printing live in internal/pointio.
package geometry
