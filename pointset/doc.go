// Package pointset provides equivalence clustering and set algebra for
// point clouds under a caller-supplied near-duplicate predicate.
//
// A Set never contains two points that are equivalent under the predicate
// it was built with. Sets are value-like: every operation returns a new
// Set and never mutates its inputs.
package pointset
