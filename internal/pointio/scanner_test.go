package pointio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/nsphere/internal/geometry"
)

func TestScanner_ScanAll(t *testing.T) {
	input := "2\nalpha 2 1 0\nbeta 3\n0.5 -1.25 3\n"
	s := NewScanner(strings.NewReader(input), nil, 10)

	points, err := s.ScanAll()
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "alpha", points[0].Name())
	assert.Equal(t, []float64{1, 0}, points[0].Coordinates())
	assert.Equal(t, "beta", points[1].Name())
	assert.Equal(t, 3, points[1].Dimension())
	assert.Equal(t, []float64{0.5, -1.25, 3}, points[1].Coordinates())
}

func TestScanner_Prompts(t *testing.T) {
	var prompts bytes.Buffer
	s := NewScanner(strings.NewReader("1 p 2 3 4"), &prompts, 10)

	_, err := s.ScanAll()
	require.NoError(t, err)

	want := "Enter the number of points: " +
		"\nEnter point's name: " +
		"Enter point's dimension (whole number): " +
		"Enter point's coordinates:\n" +
		"  x0 = " +
		"  x1 = "
	assert.Equal(t, want, prompts.String())
}

func TestScanner_ZeroPoints(t *testing.T) {
	points, err := NewScanner(strings.NewReader("0"), nil, 10).ScanAll()
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestScanner_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int
		wantErr error
	}{
		{"negative count", "-1", 10, ErrPointCountOutOfRange},
		{"count above max", "11", 10, ErrPointCountOutOfRange},
		{"count not a number", "two", 10, geometry.ErrInvalidNumber},
		{"dimension zero", "1 p 0", 10, geometry.ErrDimensionOutOfRange},
		{"dimension above max", "1 p 1025 1", 10, geometry.ErrDimensionOutOfRange},
		{"dimension fractional", "1 p 2.5 1 1", 10, geometry.ErrInvalidNumber},
		{"coordinate not a number", "1 p 2 1 x", 10, geometry.ErrInvalidNumber},
		{"coordinate NaN", "1 p 2 1 NaN", 10, geometry.ErrInvalidNumber},
		{"coordinate Inf", "1 p 2 +Inf 1", 10, geometry.ErrInvalidNumber},
		{"missing count", "", 10, io.ErrUnexpectedEOF},
		{"missing point", "2 p 1 1", 10, io.ErrUnexpectedEOF},
		{"missing coordinate", "1 p 3 1 2", 10, io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := NewScanner(strings.NewReader(tt.input), nil, tt.max).ScanAll()
			assert.Nil(t, points)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScanner_DimensionCheckedBeforeCoordinates(t *testing.T) {
	var prompts bytes.Buffer
	s := NewScanner(strings.NewReader("p 2000"), &prompts, 10)

	_, err := s.ScanPoint()
	assert.ErrorIs(t, err, geometry.ErrDimensionOutOfRange)
	assert.NotContains(t, prompts.String(), "coordinates")
}
