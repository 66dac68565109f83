package pointset

import "github.com/hupe1980/fixgo/model"

// Set is an ordered, deduplicated collection of points sharing a common
// dimension. The zero value is an empty set of dimension 0.
//
// Sets are only ever constructed by Cluster, Union, or Difference, which
// enforce the no-near-duplicates invariant on construction.
type Set struct {
	dim    int
	points []model.Point
}

// Empty returns an empty set of the given dimension.
func Empty(dim int) Set {
	return Set{dim: dim}
}

// Len returns the number of points in the set.
func (s Set) Len() int { return len(s.points) }

// Dim returns the common dimension of the set's points.
func (s Set) Dim() int { return s.dim }

// At returns the i-th point. The returned point must not be mutated.
func (s Set) At(i int) model.Point { return s.points[i] }

// Points returns the points in order. The slice is fresh but the points
// are shared; treat them as read-only.
func (s Set) Points() []model.Point {
	out := make([]model.Point, len(s.points))
	copy(out, s.points)
	return out
}

// ContainsNear reports whether any point of the set satisfies the
// predicate against p.
func (s Set) ContainsNear(p model.Point, pred Predicate) bool {
	for _, q := range s.points {
		if pred(q, p) {
			return true
		}
	}
	return false
}
