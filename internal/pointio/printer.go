package pointio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/nsphere/internal/geometry"
	"github.com/banshee-data/nsphere/internal/units"
)

// DefaultPrecision is the number of significant digits Printer uses when
// none is configured.
const DefaultPrecision = 4

// Printer renders points as text, one value per line:
//
//	<name> (<d>-dim):
//	  r = <radius>
//	  phi0 = <angle>
//
// Values use %g-style formatting with a fixed number of significant digits.
type Printer struct {
	w          io.Writer
	precision  int
	angleUnits string
}

// NewPrinter writes to w. precision below 1 falls back to DefaultPrecision;
// angles are printed in angleUnits (see internal/units).
func NewPrinter(w io.Writer, precision int, angleUnits string) *Printer {
	if precision < 1 {
		precision = DefaultPrecision
	}
	if !units.IsValid(angleUnits) {
		angleUnits = units.Radians
	}
	return &Printer{w: w, precision: precision, angleUnits: angleUnits}
}

func (p *Printer) format(v float64) string {
	return strconv.FormatFloat(v, 'g', p.precision, 64)
}

func (p *Printer) writeCartesian(b *strings.Builder, pt geometry.CartesianPoint) {
	fmt.Fprintf(b, "\n%s (%d-dim):\n", pt.Name(), pt.Dimension())
	for i, x := range pt.Coordinates() {
		fmt.Fprintf(b, "  x%d = %s\n", i, p.format(x))
	}
}

func (p *Printer) writePolar(b *strings.Builder, pt geometry.PolarPoint) {
	suffix := ""
	if p.angleUnits == units.Degrees {
		suffix = " deg"
	}
	fmt.Fprintf(b, "\n%s (%d-dim):\n", pt.Name(), pt.Dimension())
	fmt.Fprintf(b, "  r = %s\n", p.format(pt.Radius()))
	for i, a := range units.ConvertAngles(pt.Angles(), p.angleUnits) {
		fmt.Fprintf(b, "  phi%d = %s%s\n", i, p.format(a), suffix)
	}
}

func (p *Printer) flush(b *strings.Builder) error {
	_, err := io.WriteString(p.w, b.String())
	return err
}

// PrintCartesian writes a single Cartesian point.
func (p *Printer) PrintCartesian(pt geometry.CartesianPoint) error {
	var b strings.Builder
	p.writeCartesian(&b, pt)
	return p.flush(&b)
}

// PrintPolar writes a single polar point.
func (p *Printer) PrintPolar(pt geometry.PolarPoint) error {
	var b strings.Builder
	p.writePolar(&b, pt)
	return p.flush(&b)
}

// PrintCartesianBatch writes a "Cartesian points:" heading and every point
// in order.
func (p *Printer) PrintCartesianBatch(points []geometry.CartesianPoint) error {
	var b strings.Builder
	b.WriteString("\nCartesian points:\n")
	for _, pt := range points {
		p.writeCartesian(&b, pt)
	}
	return p.flush(&b)
}

// PrintPolarBatch writes a "Polar points:" heading and every point in order.
func (p *Printer) PrintPolarBatch(points []geometry.PolarPoint) error {
	var b strings.Builder
	b.WriteString("\nPolar points:\n")
	for _, pt := range points {
		p.writePolar(&b, pt)
	}
	return p.flush(&b)
}
