// Package discovery implements the seeded frontier exploration loop: it
// explains every point of a reference set in terms of points reachable by
// continuation from an initial result, expanding the found set until the
// frontier of unexplained reference points empties.
package discovery

import (
	"context"
	"fmt"

	fixgo "github.com/hupe1980/fixgo"
	"github.com/hupe1980/fixgo/model"
	"github.com/hupe1980/fixgo/pointset"
	"github.com/hupe1980/fixgo/queue"
	"github.com/hupe1980/fixgo/solver"
)

// AugmentFunc pre-processes the initial result set before the loop starts,
// e.g. by injecting extra candidate seeds derived from local extrema of an
// auxiliary trace. It must not mutate its input.
type AugmentFunc func(initial []model.Point) []model.Point

// Options configures a discovery run.
type Options struct {
	// Predicate decides when two points are the same fixed point.
	Predicate pointset.Predicate
	// Direction is the shared direction parameter passed to every
	// continuation run.
	Direction []float64
	// StepBudget bounds the number of continuation steps per run.
	StepBudget int
	// Augment pre-processes the initial found set. Nil means identity.
	Augment AugmentFunc
	// Logger receives per-step progress. Nil disables logging.
	Logger *fixgo.Logger
}

// DefaultOptions are the options used when none are supplied.
var DefaultOptions = Options{
	Predicate:  pointset.WithinChebyshev(pointset.DefaultTolerance),
	StepBudget: solver.DefaultStepBudget,
}

// Record is one history entry: the seed explored, the run status, and the
// deduplicated points the run produced.
type Record struct {
	Seed   model.Seed   `json:"seed"`
	Status model.Status `json:"status"`
	New    pointset.Set `json:"-"`
}

// Outcome is the terminal state of one discovery run.
type Outcome struct {
	// Found holds all points confirmed over the whole run.
	Found pointset.Set
	// History holds one record per frontier seed, in processing order.
	History []Record
	// ClosedLoops counts runs that ended in StatusClosedLoop; together
	// with Runs it calibrates how often continuation returns to its own
	// starting region without discovering new points.
	ClosedLoops int
	// Runs is the total number of continuation runs performed.
	Runs int
}

// Run explores the frontier of reference points not yet explained by the
// initial set, invoking the continuation solver once per frontier seed.
//
// Frontier seeds are processed FIFO; the processing order affects only the
// history log, never the final found set, because union and difference are
// order-insensitive. A solver error or Failure status aborts nothing: the
// seed still contributes itself to the found set and the loop continues.
// The loop terminates after at most |initial frontier| runs.
func Run(ctx context.Context, net *model.Network, cont solver.Continuation, initial, reference []model.Point, optFns ...func(o *Options)) (*Outcome, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	logger := opts.Logger
	if logger == nil {
		logger = fixgo.NoopLogger()
	}

	if err := validate(net, initial, reference); err != nil {
		return nil, err
	}

	seedPoints := initial
	if opts.Augment != nil {
		seedPoints = opts.Augment(initial)
	}
	found := pointset.Cluster(seedPoints, opts.Predicate)
	refSet := pointset.Cluster(reference, opts.Predicate)

	frontier := queue.NewFIFO(pointset.Difference(refSet, found, opts.Predicate).Points()...)

	out := &Outcome{}
	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, _ := frontier.Pop()
		seed := model.NewSeed(next)

		status := model.StatusFailure
		var raw []model.Point
		res, err := cont.Traverse(ctx, net, seed, opts.Direction, opts.StepBudget)
		if err == nil {
			status = res.Status
			raw = res.Points
		}
		logger.LogRun(ctx, "", status.String(), len(raw), err)

		// The seed itself is always part of the run's output, so a run
		// that produced nothing else still explains its own seed.
		raw = append([]model.Point{next}, raw...)
		newPoints := pointset.Cluster(raw, opts.Predicate)

		found = pointset.Union(found, newPoints, opts.Predicate)
		// Newly found points can retroactively satisfy pending frontier
		// entries.
		frontier.Filter(func(p model.Point) bool {
			return !newPoints.ContainsNear(p, opts.Predicate)
		})

		out.History = append(out.History, Record{Seed: seed, Status: status, New: newPoints})
		out.Runs++
		if status == model.StatusClosedLoop {
			out.ClosedLoops++
		}
		logger.LogFrontier(ctx, out.Runs, status.String(), found.Len(), frontier.Len())
	}

	out.Found = found
	return out, nil
}

func validate(net *model.Network, initial, reference []model.Point) error {
	if err := net.Validate(); err != nil {
		return err
	}
	for i, p := range initial {
		if p.Dim() != net.N {
			return fmt.Errorf("%w: initial point %d has dimension %d, want %d", model.ErrDimensionMismatch, i, p.Dim(), net.N)
		}
	}
	for i, p := range reference {
		if p.Dim() != net.N {
			return fmt.Errorf("%w: reference point %d has dimension %d, want %d", model.ErrDimensionMismatch, i, p.Dim(), net.N)
		}
	}
	return nil
}
