package pointset

import (
	"github.com/hupe1980/fixgo/distance"
	"github.com/hupe1980/fixgo/model"
)

// DefaultTolerance is the canonical duplicate tolerance: two points whose
// componentwise difference stays below 2^-21 are the same fixed point.
const DefaultTolerance = 0x1p-21

// Predicate reports whether two points are near-duplicates, i.e. the same
// fixed point for deduplication purposes.
//
// Implementations must be symmetric. The predicate is always supplied by
// the caller; nothing in this package hard-codes a tolerance.
type Predicate func(a, b model.Point) bool

// WithinChebyshev returns a predicate that treats two points as equal when
// every component differs by less than tol.
func WithinChebyshev(tol float64) Predicate {
	return func(a, b model.Point) bool {
		return distance.Chebyshev(a, b) < tol
	}
}

// WithinEuclidean returns a predicate that treats two points as equal when
// their Euclidean distance is less than tol.
func WithinEuclidean(tol float64) Predicate {
	return func(a, b model.Point) bool {
		return distance.SquaredL2(a, b) < tol*tol
	}
}
