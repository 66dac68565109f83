package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/fixgo/checkpoint"
	"github.com/hupe1980/fixgo/compare"
	"github.com/hupe1980/fixgo/discovery"
	"github.com/hupe1980/fixgo/model"
)

// Discovery runs one frontier discovery job: starting from the traverse
// job's deduplicated points, it explores until every known fixed point of
// the network is explained. Alpha-minimum candidates harvested from the
// traverse trace augment the initial set before the loop starts.
func (c *Campaign) Discovery(ctx context.Context, suiteID string, net *model.Network) (*DiscoveryRecord, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	key := DiscoveryKey(suiteID, net.N, net.Sample)
	logger := c.logger.WithKey(key)

	var rec DiscoveryRecord
	err := c.store.Get(ctx, key, &rec)
	switch {
	case err == nil && rec.Complete:
		logger.DebugContext(ctx, "discovery already complete, skipping")
		return &rec, nil
	case err != nil && !errors.Is(err, checkpoint.ErrNotFound):
		return nil, fmt.Errorf("resume discovery %s: %w", key, err)
	}

	travKey := TraverseKey(suiteID, net.N, net.Sample)
	var arrays TraverseArrays
	if err := c.store.Get(ctx, ArraysKey(travKey), &arrays); err != nil {
		if errors.Is(err, checkpoint.ErrNotFound) {
			return nil, fmt.Errorf("%w: arrays for %s (run traverse first)", ErrMissingDependency, travKey)
		}
		return nil, fmt.Errorf("read arrays for %s: %w", travKey, err)
	}

	start := time.Now()
	out, err := discovery.Run(ctx, net, c.cont, arrays.Unique, net.Known, func(o *discovery.Options) {
		o.Predicate = c.opts.Predicate
		o.Direction = c.direction(net)
		o.StepBudget = c.opts.StepBudget
		o.Augment = discovery.AugmentWithTrace(arrays.Trace)
		o.Logger = logger
	})
	if err != nil {
		return nil, fmt.Errorf("discovery %s: %w", key, err)
	}

	rec = DiscoveryRecord{
		Key:         key,
		N:           net.N,
		Sample:      net.Sample,
		Runtime:     time.Since(start),
		Runs:        out.Runs,
		ClosedLoops: out.ClosedLoops,
		FoundCount:  out.Found.Len(),
		KnownFound:  compare.CoverageCount(net.Known, out.Found, c.opts.Predicate),
	}
	if err := c.store.Put(ctx, key, &rec); err != nil {
		return nil, fmt.Errorf("checkpoint discovery %s: %w", key, err)
	}

	if err := c.store.Put(ctx, ArraysKey(key), &DiscoveryArrays{Found: out.Found.Points()}); err != nil {
		return nil, fmt.Errorf("checkpoint discovery arrays %s: %w", key, err)
	}

	rec.Complete = true
	if err := c.store.Put(ctx, key, &rec); err != nil {
		return nil, fmt.Errorf("checkpoint discovery %s: %w", key, err)
	}
	logger.LogCheckpoint(ctx, key, nil)

	return &rec, nil
}
