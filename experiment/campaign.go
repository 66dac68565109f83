package experiment

import (
	"context"
	"errors"

	"github.com/hupe1980/fixgo"
	"github.com/hupe1980/fixgo/batch"
	"github.com/hupe1980/fixgo/checkpoint"
	"github.com/hupe1980/fixgo/model"
	"github.com/hupe1980/fixgo/pointset"
	"github.com/hupe1980/fixgo/resource"
	"github.com/hupe1980/fixgo/solver"
	"github.com/hupe1980/fixgo/util"
)

// ErrMissingDependency indicates that a job needs the record of an earlier
// job that has not run yet, e.g. baseline before traverse.
var ErrMissingDependency = errors.New("missing dependency record")

// Options configures a campaign.
type Options struct {
	// Predicate decides when two points are the same fixed point.
	Predicate pointset.Predicate

	// Direction is the continuation direction shared by all traverse runs.
	// Nil draws a random unit direction per network from RandSeed.
	Direction []float64

	// StepBudget bounds continuation steps per run.
	StepBudget int

	// RandSeed seeds the per-network random directions. Fixed default so
	// reruns are reproducible.
	RandSeed int64

	// Workers bounds concurrent jobs per batch. 0 or 1 is sequential.
	Workers int

	// Policy selects batch error handling. Defaults to recording failures.
	Policy batch.Policy

	// Controller, if set, adds campaign-wide worker slots, launch pacing,
	// and a memory budget for in-flight traces.
	Controller *resource.Controller

	// Logger for progress. Defaults to a no-op logger.
	Logger *fixgo.Logger
}

// DefaultOptions are the default campaign options.
var DefaultOptions = Options{
	Predicate:  pointset.WithinChebyshev(pointset.DefaultTolerance),
	StepBudget: solver.DefaultStepBudget,
	RandSeed:   4711,
	Workers:    1,
	Policy:     batch.PolicyRecord,
}

// Campaign runs experiment jobs over suites of networks, checkpointing
// every stage to its store.
type Campaign struct {
	store  checkpoint.Store
	cont   solver.Continuation
	base   solver.Baseline
	opts   Options
	logger *fixgo.Logger
}

// NewCampaign creates a campaign. base may be nil if no baseline or
// comparison jobs will run.
func NewCampaign(store checkpoint.Store, cont solver.Continuation, base solver.Baseline, optFns ...func(o *Options)) *Campaign {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	logger := opts.Logger
	if logger == nil {
		logger = fixgo.NoopLogger()
	}
	return &Campaign{
		store:  store,
		cont:   cont,
		base:   base,
		opts:   opts,
		logger: logger,
	}
}

// direction returns the continuation direction for net: the configured one,
// or a deterministic random unit vector derived from RandSeed and the
// network identity.
func (c *Campaign) direction(net *model.Network) []float64 {
	if c.opts.Direction != nil {
		return c.opts.Direction
	}
	seed := c.opts.RandSeed + int64(net.N)*100003 + int64(net.Sample)
	return util.NewRNG(seed).Direction(net.N)
}

func (c *Campaign) batchOptions() func(o *batch.Options) {
	return func(o *batch.Options) {
		o.Workers = c.opts.Workers
		o.Policy = c.opts.Policy
		o.Controller = c.opts.Controller
		o.Logger = c.logger
	}
}

// RunTraverse runs the traverse job for every network of the suite and
// checkpoints the batch result list.
func (c *Campaign) RunTraverse(ctx context.Context, suite *Suite) ([]batch.Result[*TraverseRecord], error) {
	jobs := make([]batch.Job[*TraverseRecord], 0, len(suite.Networks))
	for _, net := range suite.Networks {
		jobs = append(jobs, batch.Job[*TraverseRecord]{
			Key: TraverseKey(suite.ID, net.N, net.Sample),
			Do: func(ctx context.Context) (*TraverseRecord, error) {
				return c.Traverse(ctx, suite.ID, net)
			},
		})
	}
	return batch.RunAndCheckpoint(ctx, c.store, TraverseBatchKey(suite.ID), jobs, c.batchOptions())
}

// RunBaseline runs the baseline job for every network of the suite.
// The suite's traverse batch must have run first.
func (c *Campaign) RunBaseline(ctx context.Context, suite *Suite) ([]batch.Result[*BaselineRecord], error) {
	jobs := make([]batch.Job[*BaselineRecord], 0, len(suite.Networks))
	for _, net := range suite.Networks {
		jobs = append(jobs, batch.Job[*BaselineRecord]{
			Key: BaselineKey(suite.ID, net.N, net.Sample),
			Do: func(ctx context.Context) (*BaselineRecord, error) {
				return c.Baseline(ctx, suite.ID, net)
			},
		})
	}
	return batch.RunAndCheckpoint(ctx, c.store, BaselineBatchKey(suite.ID), jobs, c.batchOptions())
}

// RunComparison runs the traverse-vs-baseline comparison for every network
// of the suite. Both solver batches must have run first.
func (c *Campaign) RunComparison(ctx context.Context, suite *Suite) ([]batch.Result[*ComparisonRecord], error) {
	jobs := make([]batch.Job[*ComparisonRecord], 0, len(suite.Networks))
	for _, net := range suite.Networks {
		jobs = append(jobs, batch.Job[*ComparisonRecord]{
			Key: ComparisonKey(suite.ID, net.N, net.Sample),
			Do: func(ctx context.Context) (*ComparisonRecord, error) {
				return c.Comparison(ctx, suite.ID, net)
			},
		})
	}
	return batch.RunAndCheckpoint(ctx, c.store, ComparisonBatchKey(suite.ID), jobs, c.batchOptions())
}

// RunDiscovery runs the frontier discovery job for every network of the
// suite. The suite's traverse batch must have run first.
func (c *Campaign) RunDiscovery(ctx context.Context, suite *Suite) ([]batch.Result[*DiscoveryRecord], error) {
	jobs := make([]batch.Job[*DiscoveryRecord], 0, len(suite.Networks))
	for _, net := range suite.Networks {
		jobs = append(jobs, batch.Job[*DiscoveryRecord]{
			Key: DiscoveryKey(suite.ID, net.N, net.Sample),
			Do: func(ctx context.Context) (*DiscoveryRecord, error) {
				return c.Discovery(ctx, suite.ID, net)
			},
		})
	}
	return batch.RunAndCheckpoint(ctx, c.store, DiscoveryBatchKey(suite.ID), jobs, c.batchOptions())
}

// BaselineComparison runs the full campaign over one suite: traverse batch,
// then baseline batch, then comparison batch. Each batch resumes from its
// own checkpoints, so rerunning after an interruption is cheap.
func (c *Campaign) BaselineComparison(ctx context.Context, suite *Suite) ([]batch.Result[*ComparisonRecord], error) {
	if _, err := c.RunTraverse(ctx, suite); err != nil {
		return nil, err
	}
	if _, err := c.RunBaseline(ctx, suite); err != nil {
		return nil, err
	}
	return c.RunComparison(ctx, suite)
}

// AggregateDiscovery sums closed-loop and total run counts over a suite's
// discovery results, skipping failed jobs.
func AggregateDiscovery(results []batch.Result[*DiscoveryRecord]) (closedLoops, runs int) {
	for _, r := range results {
		if r.Failed() || r.Value == nil {
			continue
		}
		closedLoops += r.Value.ClosedLoops
		runs += r.Value.Runs
	}
	return closedLoops, runs
}
