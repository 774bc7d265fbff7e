package geometry

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// DegeneratePolicy selects what ToPolar does with an angle whose denominator
// is zero, i.e. every coordinate from the angle's position onward is zero.
type DegeneratePolicy int

const (
	// DegenerateZero defines the undefined angle as 0, as atan2(0, 0) does.
	DegenerateZero DegeneratePolicy = iota
	// DegenerateFail rejects the point with ErrDegenerateCoordinates.
	DegenerateFail
)

func (d DegeneratePolicy) String() string {
	switch d {
	case DegenerateZero:
		return "zero"
	case DegenerateFail:
		return "fail"
	default:
		return fmt.Sprintf("DegeneratePolicy(%d)", int(d))
	}
}

// ParseDegeneratePolicy accepts "zero" or "fail" (case-insensitive).
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero":
		return DegenerateZero, nil
	case "fail":
		return DegenerateFail, nil
	default:
		return 0, fmt.Errorf("unknown degenerate policy %q (want zero or fail)", s)
	}
}

type convertOptions struct {
	degenerate DegeneratePolicy
	workers    int
}

// ConvertOption tunes ToPolar and ConvertAll.
type ConvertOption func(*convertOptions)

// WithDegeneratePolicy sets the policy for undefined angles.
func WithDegeneratePolicy(p DegeneratePolicy) ConvertOption {
	return func(o *convertOptions) { o.degenerate = p }
}

// WithWorkers lets ConvertAll convert up to n points concurrently.
// Values below 2 keep the conversion sequential. ToPolar ignores it.
func WithWorkers(n int) ConvertOption {
	return func(o *convertOptions) { o.workers = n }
}

func newConvertOptions(opts []ConvertOption) convertOptions {
	o := convertOptions{degenerate: DegenerateZero, workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// cosineSlack absorbs rounding in x/‖x‖ that pushes a ratio just past ±1.
const cosineSlack = 1e-12

func clampCosine(c float64) float64 {
	switch {
	case c > 1 && c <= 1+cosineSlack:
		return 1
	case c < -1 && c >= -1-cosineSlack:
		return -1
	}
	return c
}

// ToPolar converts p to generalized spherical coordinates.
//
// For dimension d the radius is the Euclidean norm. Angle i (i < d-2) is
// acos(x[i] / ‖x[i:]‖). The last angle uses x[d-2] and x[d-1] and is folded
// into [0, 2π) by the sign of x[d-1]. A 1-dimensional point has no angles.
// Non-finite coordinates are rejected with ErrInvalidNumber.
func ToPolar(p CartesianPoint, opts ...ConvertOption) (PolarPoint, error) {
	if p.dimension == 0 {
		return PolarPoint{}, fmt.Errorf("%w: uninitialized point", ErrDimensionOutOfRange)
	}
	o := newConvertOptions(opts)
	x := p.coordinates
	d := p.dimension

	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return PolarPoint{}, fmt.Errorf("%s: x%d = %v: %w", p.name, i, v, ErrInvalidNumber)
		}
	}

	radius := floats.Norm(x, 2)
	phi := make([]float64, d-1)

	for i := 0; i < d-2; i++ {
		tail := floats.Norm(x[i:], 2)
		if tail == 0 {
			if o.degenerate == DegenerateFail {
				return PolarPoint{}, fmt.Errorf("%s: phi%d: x%d..x%d are all zero: %w",
					p.name, i, i, d-1, ErrDegenerateCoordinates)
			}
			continue
		}
		angle, err := AngleFromCosine(1, clampCosine(x[i]/tail))
		if err != nil {
			return PolarPoint{}, fmt.Errorf("%s: phi%d: %w", p.name, i, err)
		}
		phi[i] = angle
	}

	if d >= 2 {
		last := d - 2
		tail := math.Hypot(x[last], x[last+1])
		if tail == 0 {
			if o.degenerate == DegenerateFail {
				return PolarPoint{}, fmt.Errorf("%s: phi%d: x%d and x%d are zero: %w",
					p.name, last, last, last+1, ErrDegenerateCoordinates)
			}
		} else {
			sign, err := Sign(x[last+1])
			if err != nil {
				return PolarPoint{}, fmt.Errorf("%s: phi%d: %w", p.name, last, err)
			}
			angle, err := AngleFromCosine(sign, clampCosine(x[last]/tail))
			if err != nil {
				return PolarPoint{}, fmt.Errorf("%s: phi%d: %w", p.name, last, err)
			}
			phi[last] = angle
		}
	}

	return NewPolarPoint(d, radius, phi, p.name)
}

// ToCartesian maps p back to Cartesian coordinates:
//
//	x[i]   = r · sin(phi0)···sin(phi[i-1]) · cos(phi[i])   for i < d-1
//	x[d-1] = r · sin(phi0)···sin(phi[d-2])
//
// A 1-dimensional point maps to (r); the sign of the original coordinate is
// not recoverable.
func ToCartesian(p PolarPoint) CartesianPoint {
	x := make([]float64, p.dimension)
	scale := p.radius
	for i, angle := range p.angles {
		x[i] = scale * math.Cos(angle)
		scale *= math.Sin(angle)
	}
	if p.dimension > 0 {
		x[p.dimension-1] = scale
	}
	return CartesianPoint{dimension: p.dimension, coordinates: x, name: p.name}
}

// ConvertAll converts points in order and returns the results in the same
// order. The batch stops at the first failure and returns no partial result.
// With WithWorkers(n > 1) up to n points convert concurrently; the returned
// error is then the first failure observed, which need not be the lowest
// index.
func ConvertAll(ctx context.Context, points []CartesianPoint, opts ...ConvertOption) ([]PolarPoint, error) {
	o := newConvertOptions(opts)
	out := make([]PolarPoint, len(points))

	if o.workers < 2 {
		for i, p := range points {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			pp, err := ToPolar(p, opts...)
			if err != nil {
				return nil, fmt.Errorf("point %d: %w", i, err)
			}
			out[i] = pp
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, p := range points {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pp, err := ToPolar(p, opts...)
			if err != nil {
				return fmt.Errorf("point %d: %w", i, err)
			}
			out[i] = pp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
