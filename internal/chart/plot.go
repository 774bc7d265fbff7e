// Package chart renders converted points for a quick visual check: a PNG
// scatter drawn with gonum/plot and an HTML page drawn with go-echarts.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/nsphere/internal/geometry"
)

// ErrNoPoints is returned when there is nothing to draw.
var ErrNoPoints = errors.New("no points to chart")

// lastAngle returns the final angle of p, or 0 for a 1-dimensional point.
func lastAngle(p geometry.PolarPoint) float64 {
	if p.Dimension() < 2 {
		return 0
	}
	a, _ := p.Angle(p.Dimension() - 2)
	return a
}

// Projection places p in the plane of its last angle: (r·cos φ, r·sin φ).
func Projection(p geometry.PolarPoint) (x, y float64) {
	phi := lastAngle(p)
	return p.Radius() * math.Cos(phi), p.Radius() * math.Sin(phi)
}

// PlotPolar saves a PNG scatter of every point projected onto the plane of
// its last angle, one colour and legend entry per point.
func PlotPolar(points []geometry.PolarPoint, path string) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Polar points (%d)", len(points))
	p.X.Label.Text = "r·cos(φ last)"
	p.Y.Label.Text = "r·sin(φ last)"
	p.Add(plotter.NewGrid())

	colors := generateColors(len(points))
	for i, pt := range points {
		x, y := Projection(pt)
		sc, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
		if err != nil {
			return fmt.Errorf("point %q: %w", pt.Name(), err)
		}
		sc.GlyphStyle.Color = colors[i]
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(pt.Name(), sc)
	}
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save polar plot: %w", err)
	}
	return nil
}

// generateColors creates a palette of n distinct colors
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	if s == 0 {
		v := uint8(l * 255)
		return v, v, v
	}
	q := l + s - l*s
	if l < 0.5 {
		q = l * (1 + s)
	}
	p := 2*l - q
	return uint8(hueToRGB(p, q, h+1.0/3.0) * 255),
		uint8(hueToRGB(p, q, h) * 255),
		uint8(hueToRGB(p, q, h-1.0/3.0) * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
