package discovery

import (
	"math"

	"github.com/hupe1980/fixgo/model"
	"github.com/hupe1980/fixgo/solver"
)

// AlphaMinSeeds extracts candidate seed points from a continuation trace:
// every trace state participating in a strictly increasing |alpha| triple
// (the pattern that brackets a local minimum of |alpha|) is returned.
// Local minima of |alpha| that do not change sign are exactly the places
// where a path can pass close to a fixed point without registering it.
func AlphaMinSeeds(trace []solver.TracePoint) []model.Point {
	if len(trace) < 3 {
		return nil
	}

	abs := make([]float64, len(trace))
	for i, tp := range trace {
		abs[i] = math.Abs(tp.Alpha)
	}

	mask := make([]bool, len(trace))
	for i := 0; i+2 < len(abs); i++ {
		if abs[i] < abs[i+1] && abs[i+1] < abs[i+2] {
			mask[i] = true
			mask[i+1] = true
			mask[i+2] = true
		}
	}

	var out []model.Point
	for i, m := range mask {
		if m {
			out = append(out, trace[i].Point.Clone())
		}
	}
	return out
}

// AugmentWithTrace returns an AugmentFunc that appends AlphaMinSeeds of
// the given trace to the initial set.
func AugmentWithTrace(trace []solver.TracePoint) AugmentFunc {
	return func(initial []model.Point) []model.Point {
		out := make([]model.Point, 0, len(initial))
		out = append(out, initial...)
		return append(out, AlphaMinSeeds(trace)...)
	}
}
