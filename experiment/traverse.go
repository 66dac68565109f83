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

// Traverse runs one continuation job: raw solver run, deduplication, and
// known-point coverage, overwriting the job's checkpoint after each stage.
//
// A record already marked Complete is returned unchanged without touching
// the solver.
func (c *Campaign) Traverse(ctx context.Context, suiteID string, net *model.Network) (*TraverseRecord, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	key := TraverseKey(suiteID, net.N, net.Sample)
	logger := c.logger.WithKey(key)

	var rec TraverseRecord
	err := c.store.Get(ctx, key, &rec)
	switch {
	case err == nil && rec.Complete:
		logger.DebugContext(ctx, "traverse already complete, skipping")
		return &rec, nil
	case err != nil && !errors.Is(err, checkpoint.ErrNotFound):
		return nil, fmt.Errorf("resume traverse %s: %w", key, err)
	}

	// Stage 1: raw run from the origin.
	seed := model.NewSeed(model.Zero(net.N))
	start := time.Now()
	res, err := c.cont.Traverse(ctx, net, seed, c.direction(net), c.opts.StepBudget)
	if err != nil {
		return nil, fmt.Errorf("traverse %s: %w", key, err)
	}
	rec = TraverseRecord{
		Key:        key,
		N:          net.N,
		Sample:     net.Sample,
		Status:     res.Status,
		Runtime:    time.Since(start),
		Steps:      res.Diagnostics.Steps(),
		PathLength: res.Diagnostics.PathLength(),
		MinSMin:    res.Diagnostics.MinSMin(),
		RawCount:   len(res.Points),
	}
	logger.LogRun(ctx, key, rec.Status.String(), rec.RawCount, nil)
	if err := c.store.Put(ctx, key, &rec); err != nil {
		return nil, fmt.Errorf("checkpoint traverse %s: %w", key, err)
	}

	// Large traces count against the campaign memory budget while they
	// are post-processed and serialized.
	traceBytes := int64(len(res.Diagnostics.Trace)) * int64(net.N+1) * 8
	if err := c.opts.Controller.AcquireMemory(ctx, traceBytes); err != nil {
		return nil, err
	}
	defer c.opts.Controller.ReleaseMemory(traceBytes)

	// Stage 2: deduplicate and store arrays.
	postStart := time.Now()
	unique := pointset.Cluster(res.Points, c.opts.Predicate)
	rec.PostRuntime = time.Since(postStart)
	rec.UniqueCount = unique.Len()

	arrays := TraverseArrays{Unique: unique.Points(), Trace: res.Diagnostics.Trace}
	if err := c.store.Put(ctx, ArraysKey(key), &arrays); err != nil {
		return nil, fmt.Errorf("checkpoint traverse arrays %s: %w", key, err)
	}
	if err := c.store.Put(ctx, key, &rec); err != nil {
		return nil, fmt.Errorf("checkpoint traverse %s: %w", key, err)
	}

	// Stage 3: coverage of the known fixed points.
	rec.KnownFound = compare.CoverageCount(net.Known, unique, c.opts.Predicate)
	rec.Complete = true
	if err := c.store.Put(ctx, key, &rec); err != nil {
		return nil, fmt.Errorf("checkpoint traverse %s: %w", key, err)
	}
	logger.LogCheckpoint(ctx, key, nil)

	return &rec, nil
}
