package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/fixgo/checkpoint"
	"github.com/hupe1980/fixgo/compare"
	"github.com/hupe1980/fixgo/model"
	"github.com/hupe1980/fixgo/pointset"
)

// Baseline runs one baseline solver job. The solver's wall-clock timeout is
// the runtime recorded by the companion traverse job, so both procedures
// get the same budget on the same network. The traverse job must therefore
// be complete before the baseline runs.
func (c *Campaign) Baseline(ctx context.Context, suiteID string, net *model.Network) (*BaselineRecord, error) {
	if c.base == nil {
		return nil, fmt.Errorf("campaign has no baseline solver")
	}
	if err := net.Validate(); err != nil {
		return nil, err
	}
	key := BaselineKey(suiteID, net.N, net.Sample)
	logger := c.logger.WithKey(key)

	var rec BaselineRecord
	err := c.store.Get(ctx, key, &rec)
	switch {
	case err == nil && rec.Complete:
		logger.DebugContext(ctx, "baseline already complete, skipping")
		return &rec, nil
	case err != nil && !errors.Is(err, checkpoint.ErrNotFound):
		return nil, fmt.Errorf("resume baseline %s: %w", key, err)
	}

	// The timeout comes from the companion traverse record.
	travKey := TraverseKey(suiteID, net.N, net.Sample)
	var trav TraverseRecord
	if err := c.store.Get(ctx, travKey, &trav); err != nil {
		if errors.Is(err, checkpoint.ErrNotFound) {
			return nil, fmt.Errorf("%w: traverse record %s (run traverse first)", ErrMissingDependency, travKey)
		}
		return nil, fmt.Errorf("read traverse record %s: %w", travKey, err)
	}
	if !trav.Complete {
		return nil, fmt.Errorf("%w: traverse record %s is incomplete", ErrMissingDependency, travKey)
	}

	// Stage 1: raw run.
	start := time.Now()
	res, err := c.base.Solve(ctx, net, trav.Runtime)
	if err != nil {
		return nil, fmt.Errorf("baseline %s: %w", key, err)
	}
	rec = BaselineRecord{
		Key:      key,
		N:        net.N,
		Sample:   net.Sample,
		Timeout:  trav.Runtime,
		Runtime:  time.Since(start),
		Restarts: res.Restarts,
		RawCount: len(res.Points),
	}
	logger.LogRun(ctx, key, "done", rec.RawCount, nil)
	if err := c.store.Put(ctx, key, &rec); err != nil {
		return nil, fmt.Errorf("checkpoint baseline %s: %w", key, err)
	}

	// Stage 2: deduplicate and store arrays.
	postStart := time.Now()
	unique := pointset.Cluster(res.Points, c.opts.Predicate)
	rec.PostRuntime = time.Since(postStart)
	rec.UniqueCount = unique.Len()

	arrays := BaselineArrays{Unique: unique.Points()}
	if err := c.store.Put(ctx, ArraysKey(key), &arrays); err != nil {
		return nil, fmt.Errorf("checkpoint baseline arrays %s: %w", key, err)
	}
	if err := c.store.Put(ctx, key, &rec); err != nil {
		return nil, fmt.Errorf("checkpoint baseline %s: %w", key, err)
	}

	// Stage 3: coverage of the known fixed points.
	rec.KnownFound = compare.CoverageCount(net.Known, unique, c.opts.Predicate)
	rec.Complete = true
	if err := c.store.Put(ctx, key, &rec); err != nil {
		return nil, fmt.Errorf("checkpoint baseline %s: %w", key, err)
	}
	logger.LogCheckpoint(ctx, key, nil)

	return &rec, nil
}
