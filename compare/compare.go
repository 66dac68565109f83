// Package compare computes overlap cardinalities, spatial dispersion
// statistics, and reference coverage between independently produced point
// sets, e.g. two solvers' outputs on the same network.
package compare

import (
	"github.com/hupe1980/fixgo/distance"
	"github.com/hupe1980/fixgo/model"
	"github.com/hupe1980/fixgo/pointset"
)

// Dispersion summarizes the spatial spread of one point set.
type Dispersion struct {
	// Centroid is the mean Euclidean distance of the set's points to the
	// set's centroid.
	Centroid float64 `json:"centroid"`
	// Vertex is the mean Euclidean distance of each point to its own sign
	// projection, i.e. to the nearest vertex of the {-1,+1} hypercube.
	Vertex float64 `json:"vertex"`
}

// Report is a read-only summary of two point sets. It is never mutated
// after creation.
type Report struct {
	// SizeA and SizeB are the input cardinalities.
	SizeA int `json:"size_a"`
	SizeB int `json:"size_b"`
	// UnionCount is |A ∪ B| under the predicate.
	UnionCount int `json:"union_count"`
	// InterCount is |A| + |B| - UnionCount. This is inclusion-exclusion
	// under the predicate, not a true pairwise intersection; it is an
	// approximation and documented as such.
	InterCount int `json:"inter_count"`
	// OnlyA is UnionCount - SizeB: points of the union not explained by B.
	OnlyA int `json:"only_a"`
	// OnlyB is UnionCount - SizeA: points of the union not explained by A.
	OnlyB int `json:"only_b"`
	// DispersionA and DispersionB are reported per input set, not merged.
	DispersionA Dispersion `json:"dispersion_a"`
	DispersionB Dispersion `json:"dispersion_b"`
}

// Compare summarizes the overlap and spread of a and b under pred.
func Compare(a, b pointset.Set, pred pointset.Predicate) Report {
	union := pointset.Union(a, b, pred)
	uc := union.Len()
	return Report{
		SizeA:       a.Len(),
		SizeB:       b.Len(),
		UnionCount:  uc,
		InterCount:  a.Len() + b.Len() - uc,
		OnlyA:       uc - b.Len(),
		OnlyB:       uc - a.Len(),
		DispersionA: Disperse(a),
		DispersionB: Disperse(b),
	}
}

// Disperse computes the dispersion statistics of a single set.
// An empty set has zero dispersion.
func Disperse(s pointset.Set) Dispersion {
	if s.Len() == 0 {
		return Dispersion{}
	}

	centroid := Centroid(s)
	var sumC, sumV float64
	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		sumC += distance.Euclidean(p, centroid)
		sumV += distance.ToVertex(p)
	}
	n := float64(s.Len())
	return Dispersion{
		Centroid: sumC / n,
		Vertex:   sumV / n,
	}
}

// Centroid returns the componentwise mean of the set's points.
func Centroid(s pointset.Set) model.Point {
	c := model.Zero(s.Dim())
	if s.Len() == 0 {
		return c
	}
	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		for j := range c {
			c[j] += p[j]
		}
	}
	inv := 1 / float64(s.Len())
	for j := range c {
		c[j] *= inv
	}
	return c
}
