package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fixgo"
	"github.com/hupe1980/fixgo/checkpoint"
	"github.com/hupe1980/fixgo/resource"
)

// Policy controls how job errors are handled.
type Policy int

const (
	// PolicyRecord records job errors in the result list and keeps going.
	// This is the default: one diverging solver run must not sink a
	// multi-hour campaign.
	PolicyRecord Policy = iota

	// PolicyFailFast cancels the batch on the first job error.
	PolicyFailFast
)

// Job is one unit of work identified by a stable key.
type Job[T any] struct {
	Key string
	Do  func(ctx context.Context) (T, error)
}

// Result is the recorded outcome of one job. Errors are carried as strings
// so result lists survive an encode/decode round trip.
type Result[T any] struct {
	Key   string `json:"key"`
	Value T      `json:"value"`
	Error string `json:"error,omitempty"`
}

// Failed reports whether the job ended in an error.
func (r Result[T]) Failed() bool {
	return r.Error != ""
}

// Options holds batch configuration.
type Options struct {
	// Workers is the maximum number of jobs in flight. 0 or 1 runs
	// jobs sequentially.
	Workers int

	// Policy selects error handling. Defaults to PolicyRecord.
	Policy Policy

	// Controller, if set, gates job launches on shared worker slots and
	// launch pacing in addition to the Workers limit.
	Controller *resource.Controller

	// Logger for batch progress. Defaults to a no-op logger.
	Logger *fixgo.Logger
}

// DefaultOptions are the default batch options.
var DefaultOptions = Options{
	Workers: 1,
	Policy:  PolicyRecord,
}

// Run executes jobs with bounded concurrency and returns one result per job
// in submission order, regardless of completion order.
//
// Under PolicyRecord a job error lands in its Result and the batch keeps
// going; Run itself fails only on context cancellation. Under PolicyFailFast
// the first job error cancels the remaining jobs and is returned.
func Run[T any](ctx context.Context, jobs []Job[T], optFns ...func(o *Options)) ([]Result[T], error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = fixgo.NoopLogger()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	results := make([]Result[T], len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if opts.Controller != nil {
				if err := opts.Controller.AcquireWorker(gctx); err != nil {
					return err
				}
				defer opts.Controller.ReleaseWorker()
			}

			value, err := job.Do(gctx)
			if err != nil {
				// Cancellation is never a job outcome to record.
				if gctx.Err() != nil {
					return gctx.Err()
				}
				if opts.Policy == PolicyFailFast {
					return fmt.Errorf("job %s: %w", job.Key, err)
				}
				results[i] = Result[T]{Key: job.Key, Error: err.Error()}
				opts.Logger.LogRun(gctx, job.Key, "failed", 0, err)
				return nil
			}

			results[i] = Result[T]{Key: job.Key, Value: value}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunAndCheckpoint executes jobs like Run and persists the result list to
// store under key. If a result list from an earlier run exists, jobs whose
// previous result succeeded are skipped and their results carried over.
//
// Store failures are always fatal, whatever the Policy: a campaign that
// cannot record its progress must not pretend to make any.
func RunAndCheckpoint[T any](ctx context.Context, store checkpoint.Store, key string, jobs []Job[T], optFns ...func(o *Options)) ([]Result[T], error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = fixgo.NoopLogger()
	}

	previous := make(map[string]Result[T])

	var stored []Result[T]
	if err := store.Get(ctx, key, &stored); err == nil {
		for _, r := range stored {
			if !r.Failed() {
				previous[r.Key] = r
			}
		}
	} else if !errors.Is(err, checkpoint.ErrNotFound) {
		return nil, fmt.Errorf("load batch checkpoint %s: %w", key, err)
	}

	pending := make([]Job[T], 0, len(jobs))
	for _, job := range jobs {
		if _, ok := previous[job.Key]; !ok {
			pending = append(pending, job)
		}
	}

	start := time.Now()

	ran, err := Run(ctx, pending, optFns...)
	if err != nil {
		return nil, err
	}

	fresh := make(map[string]Result[T], len(ran))
	for _, r := range ran {
		fresh[r.Key] = r
	}

	// Final list follows submission order, whether a result was
	// carried over or computed in this run.
	results := make([]Result[T], 0, len(jobs))
	failed := 0
	for _, job := range jobs {
		r, ok := previous[job.Key]
		if !ok {
			r = fresh[job.Key]
		}
		if r.Failed() {
			failed++
		}
		results = append(results, r)
	}

	if err := store.Put(ctx, key, results); err != nil {
		opts.Logger.LogCheckpoint(ctx, key, err)
		return nil, fmt.Errorf("write batch checkpoint %s: %w", key, err)
	}
	opts.Logger.LogBatch(ctx, key, len(jobs), failed, time.Since(start))

	return results, nil
}
