package distance

import "math"

// Dot calculates the dot product of two vectors.
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Euclidean calculates the L2 (Euclidean) distance between two vectors.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Chebyshev calculates the L-infinity distance between two vectors:
// the maximum absolute componentwise difference.
func Chebyshev(a, b []float64) float64 {
	var max float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > max {
			max = d
		}
	}
	return max
}

// Sign returns the componentwise sign of v: -1, 0, or +1 per component.
// For points near a hypercube vertex this is the nearest vertex itself.
func Sign(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		switch {
		case x > 0:
			out[i] = 1
		case x < 0:
			out[i] = -1
		}
	}
	return out
}

// ToVertex calculates the Euclidean distance from v to its own sign
// projection, i.e. to the nearest vertex of the {-1,+1} hypercube
// (with zero components projected to zero).
func ToVertex(v []float64) float64 {
	return Euclidean(v, Sign(v))
}

// NormalizeL2InPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm.
func NormalizeL2InPlace(v []float64) bool {
	if len(v) == 0 {
		return false
	}
	norm2 := Dot(v, v)
	if norm2 == 0 {
		return false
	}
	inv := 1 / math.Sqrt(norm2)
	for i := range v {
		v[i] *= inv
	}
	return true
}
