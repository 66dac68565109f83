package pointset

import "github.com/hupe1980/fixgo/model"

// Cluster merges points into representative clusters under pred and
// returns the set of representatives.
//
// The first unassigned point in input order becomes a representative and
// absorbs every remaining unassigned point that is directly within
// tolerance of it; there is no transitive chaining through intermediate
// points. For a fixed input ordering and predicate the output is
// deterministic. Empty input yields an empty set.
func Cluster(points []model.Point, pred Predicate) Set {
	var out Set
	if len(points) > 0 {
		out.dim = points[0].Dim()
	}
	assigned := make([]bool, len(points))
	for i, p := range points {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		out.points = append(out.points, p.Clone())
		for j := i + 1; j < len(points); j++ {
			if !assigned[j] && pred(p, points[j]) {
				assigned[j] = true
			}
		}
	}
	return out
}

// Difference returns every point of a for which no point of b satisfies
// pred, preserving a's order. Neither input is mutated.
func Difference(a, b Set, pred Predicate) Set {
	out := Set{dim: a.dim}
	for _, p := range a.points {
		if !b.ContainsNear(p, pred) {
			out.points = append(out.points, p.Clone())
		}
	}
	return out
}

// Union concatenates a and b and clusters the result under pred. The
// element order of the result is not guaranteed to relate to the input
// order. Neither input is mutated.
func Union(a, b Set, pred Predicate) Set {
	merged := make([]model.Point, 0, a.Len()+b.Len())
	merged = append(merged, a.points...)
	merged = append(merged, b.points...)
	out := Cluster(merged, pred)
	if out.dim == 0 {
		if a.dim != 0 {
			out.dim = a.dim
		} else {
			out.dim = b.dim
		}
	}
	return out
}
