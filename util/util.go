package util

import (
	"math"
	"math/rand"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// UniformVector generates a vector with components uniform in [-1, 1).
func (r *RNG) UniformVector(dim int) []float64 {
	v := make([]float64, dim)
	for i := range v {
		v[i] = 2*r.rand.Float64() - 1
	}
	return v
}

// UniformVectors generates num vectors with components uniform in [-1, 1).
func (r *RNG) UniformVectors(num, dim int) [][]float64 {
	vectors := make([][]float64, num)
	for i := range vectors {
		vectors[i] = r.UniformVector(dim)
	}
	return vectors
}

// Direction generates a unit vector uniformly distributed on the sphere.
// Used as the continuation direction when the caller does not supply one.
func (r *RNG) Direction(dim int) []float64 {
	v := make([]float64, dim)
	for {
		var norm float64
		for i := range v {
			v[i] = r.rand.NormFloat64()
			norm += v[i] * v[i]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for i := range v {
				v[i] /= norm
			}
			return v
		}
	}
}

// Perturb returns a copy of v with uniform noise in [-scale/2, scale/2)
// added to each component.
func (r *RNG) Perturb(v []float64, scale float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] + scale*(r.rand.Float64()-0.5)
	}
	return out
}
