// Package solver defines the contracts fixgo expects from external
// root-finding procedures.
//
// The continuation solver and the baseline solver are two independent
// capabilities with fixed input/output contracts, not implementations of a
// shared solver hierarchy; callers depend only on the narrow contract they
// need. Both must be deterministic given identical inputs so that
// comparisons are reproducible.
package solver

import (
	"context"
	"time"

	"github.com/hupe1980/fixgo/model"
)

// DefaultStepBudget is the default maximum number of continuation steps
// per run.
const DefaultStepBudget = 1 << 20

// TracePoint is one state along a continuation path: the point visited and
// the homotopy parameter alpha at that step.
type TracePoint struct {
	Point model.Point `json:"point"`
	Alpha float64     `json:"alpha"`
}

// Diagnostics carries the per-run traces a continuation solver reports
// alongside its discovered points.
type Diagnostics struct {
	// Trace is the sequence of (point, alpha) states the path visited.
	Trace []TracePoint `json:"trace,omitempty"`
	// StepSizes holds the arc length of each step taken.
	StepSizes []float64 `json:"step_sizes,omitempty"`
	// SMins holds the per-step minimum singular values of the path Jacobian.
	SMins []float64 `json:"s_mins,omitempty"`
	// Residuals holds the per-point residuals of the discovered points.
	Residuals []float64 `json:"residuals,omitempty"`
}

// Steps returns the number of states along the path.
func (d *Diagnostics) Steps() int { return len(d.Trace) }

// PathLength returns the total arc length of the path.
func (d *Diagnostics) PathLength() float64 {
	var sum float64
	for _, s := range d.StepSizes {
		sum += s
	}
	return sum
}

// MinSMin returns the smallest per-step minimum singular value, or 0 if
// none were reported.
func (d *Diagnostics) MinSMin() float64 {
	if len(d.SMins) == 0 {
		return 0
	}
	min := d.SMins[0]
	for _, s := range d.SMins[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// TraverseResult is the outcome of one continuation run.
type TraverseResult struct {
	// Status is the canonical run outcome. A ClosedLoop or Failure status
	// is not an error: the run still contributes Points.
	Status model.Status `json:"status"`
	// Points holds the raw candidate fixed points discovered along the
	// path, before deduplication.
	Points []model.Point `json:"points"`
	// Diagnostics holds the path traces.
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Continuation follows a path of intermediate solutions from a seed toward
// true fixed points of the network's map.
//
// Traverse is synchronous and non-cancellable from fixgo's point of view
// beyond the passed context; it must be deterministic for identical inputs.
// A non-nil error reports that the solver itself broke down (as opposed to
// a Failure status, which is a normal run outcome).
type Continuation interface {
	Traverse(ctx context.Context, net *model.Network, seed model.Seed, direction []float64, stepBudget int) (*TraverseResult, error)
}

// BaselineResult is the outcome of one baseline solver run.
type BaselineResult struct {
	// Points holds the raw candidate fixed points, before deduplication.
	Points []model.Point `json:"points"`
	// Restarts is the number of restarts/iterations the solver performed
	// before its timeout expired.
	Restarts int `json:"restarts"`
}

// Baseline is the alternate root-finding procedure used as a second
// independent source of candidate points. The caller supplies the
// wall-clock timeout after which Solve must return with whatever it found.
type Baseline interface {
	Solve(ctx context.Context, net *model.Network, timeout time.Duration) (*BaselineResult, error)
}
