package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)
	assert.Equal(t, int64(4711), rng.Seed())

	v := rng.UniformVectors(8, 32)

	assert.Len(t, v, 8)
	assert.Len(t, v[0], 32)
	for _, vec := range v {
		for _, x := range vec {
			assert.Less(t, x, 1.0)
			assert.GreaterOrEqual(t, x, -1.0)
		}
	}
}

func TestUniformVectorsDeterministic(t *testing.T) {
	a := NewRNG(7).UniformVector(16)
	b := NewRNG(7).UniformVector(16)
	assert.Equal(t, a, b)
}

func TestDirection(t *testing.T) {
	rng := NewRNG(1)

	d := rng.Direction(5)
	require.Len(t, d, 5)

	var norm float64
	for _, x := range d {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-12)
}

func TestPerturb(t *testing.T) {
	rng := NewRNG(2)
	v := []float64{1, -1, 0}

	p := rng.Perturb(v, 0.1)
	require.Len(t, p, 3)

	for i := range v {
		assert.InDelta(t, v[i], p[i], 0.05)
	}
	// Input is untouched.
	assert.Equal(t, []float64{1, -1, 0}, v)
}
