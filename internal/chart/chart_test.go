package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/nsphere/internal/geometry"
	"github.com/banshee-data/nsphere/internal/units"
)

func samplePoints(t *testing.T) []geometry.PolarPoint {
	t.Helper()
	var out []geometry.PolarPoint
	for _, x := range [][]float64{{1, 0}, {0, -2}, {3}, {1, 1, 1}} {
		c, err := geometry.CartesianFromCoordinates(x, "")
		require.NoError(t, err)
		p, err := geometry.ToPolar(c)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestProjection(t *testing.T) {
	pts := samplePoints(t)

	x, y := Projection(pts[0])
	assert.InDelta(t, 1.0, x, 1e-12)
	assert.InDelta(t, 0.0, y, 1e-12)

	x, y = Projection(pts[1])
	assert.InDelta(t, 0.0, x, 1e-12)
	assert.InDelta(t, -2.0, y, 1e-12)

	// 1-dimensional points sit on the positive x axis
	x, y = Projection(pts[2])
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 0.0, y)

	// 3-D: last angle of (1,1,1) is π/4
	x, y = Projection(pts[3])
	assert.InDelta(t, math.Sqrt(3)*math.Cos(math.Pi/4), x, 1e-12)
	assert.InDelta(t, math.Sqrt(3)*math.Sin(math.Pi/4), y, 1e-12)
}

func TestPlotPolar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "polar.png")
	require.NoError(t, PlotPolar(samplePoints(t), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotPolar_NoPoints(t *testing.T) {
	err := PlotPolar(nil, filepath.Join(t.TempDir(), "empty.png"))
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestRenderPolarHTML(t *testing.T) {
	pts := samplePoints(t)
	named, err := geometry.NewPolarPoint(2, 4, []float64{math.Pi}, "west")
	require.NoError(t, err)
	pts = append(pts, named)

	var buf bytes.Buffer
	require.NoError(t, RenderPolarHTML(&buf, pts, units.Degrees))

	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "west")
	assert.Contains(t, html, "Last-angle projection")
}

func TestRenderPolarHTML_NoPoints(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, RenderPolarHTML(&buf, nil, units.Radians), ErrNoPoints)
	assert.Zero(t, buf.Len())
}

func TestGenerateColors(t *testing.T) {
	assert.Nil(t, generateColors(0))
	colors := generateColors(5)
	require.Len(t, colors, 5)
	assert.NotEqual(t, colors[0], colors[1])
}
