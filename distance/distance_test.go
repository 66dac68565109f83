package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, -4},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestEuclidean(t *testing.T) {
	assert.InDelta(t, 5, Euclidean([]float64{0, 0}, []float64{3, 4}), 1e-12)
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{1, 5, 3}, 3},
		{"Identical", []float64{1, 2}, []float64{1, 2}, 0},
		{"Negative", []float64{-1, 0}, []float64{1, 0}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chebyshev(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, []float64{1, -1, 0}, Sign([]float64{0.3, -2, 0}))
}

func TestToVertex(t *testing.T) {
	// (0.9,0.9) -> vertex (1,1): sqrt(0.01+0.01)
	assert.InDelta(t, 0.1414213562, ToVertex([]float64{0.9, 0.9}), 1e-9)
	// A vertex has zero distance to itself.
	assert.InDelta(t, 0, ToVertex([]float64{1, -1}), 1e-12)
}

func TestNormalizeL2InPlace(t *testing.T) {
	v := []float64{3, 4}
	ok := NormalizeL2InPlace(v)
	assert.True(t, ok)
	assert.InDelta(t, 0.6, v[0], 1e-12)
	assert.InDelta(t, 0.8, v[1], 1e-12)

	zero := []float64{0, 0}
	assert.False(t, NormalizeL2InPlace(zero))
	assert.False(t, NormalizeL2InPlace(nil))
}
