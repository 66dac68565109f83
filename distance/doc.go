// Package distance provides the vector distance calculations used by the
// equivalence predicates and the comparison reporter.
//
// All functions operate on float64 slices and assume both arguments have
// the same length (caller's responsibility).
package distance
