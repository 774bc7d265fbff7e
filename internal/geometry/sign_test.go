package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int
	}{
		{"zero", 0, 0},
		{"negative zero", math.Copysign(0, -1), 0},
		{"tiny positive inside band", 1e-9, 0},
		{"tiny negative inside band", -1e-9, 0},
		{"band edge", SignTolerance, 0},
		{"just outside band", 2e-8, 1},
		{"positive", 5.0, 1},
		{"negative", -5.0, -1},
		{"positive infinity", math.Inf(1), 1},
		{"negative infinity", math.Inf(-1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sign(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSign_NaN(t *testing.T) {
	_, err := Sign(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestAngleFromCosine(t *testing.T) {
	tests := []struct {
		name     string
		sign     int
		cosine   float64
		expected float64
	}{
		{"positive sign, cos 1", 1, 1, 0},
		{"positive sign, cos 0", 1, 0, math.Pi / 2},
		{"positive sign, cos -1", 1, -1, math.Pi},
		{"zero sign uses plain arccos", 0, 0, math.Pi / 2},
		{"negative sign, cos 0", -1, 0, 3 * math.Pi / 2},
		{"negative sign, cos -1", -1, -1, math.Pi},
		{"negative sign, cos 1 stays below 2π", -1, 1, 0},
		{"negative sign, cos 0.5", -1, 0.5, 2*math.Pi - math.Pi/3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AngleFromCosine(tt.sign, tt.cosine)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 2*math.Pi)
		})
	}
}

func TestAngleFromCosine_Domain(t *testing.T) {
	for _, c := range []float64{1.0000001, -1.5, math.NaN(), math.Inf(1)} {
		_, err := AngleFromCosine(1, c)
		assert.ErrorIs(t, err, ErrDomain, "cosine %v", c)
	}
}
