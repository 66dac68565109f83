package experiment

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/fixgo/checkpoint"
	"github.com/hupe1980/fixgo/compare"
	"github.com/hupe1980/fixgo/model"
	"github.com/hupe1980/fixgo/pointset"
)

// Comparison runs one traverse-vs-baseline comparison: it loads both jobs'
// deduplicated point sets and records overlap counts and dispersion, with
// the traverse set as side A and the baseline set as side B.
func (c *Campaign) Comparison(ctx context.Context, suiteID string, net *model.Network) (*ComparisonRecord, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	key := ComparisonKey(suiteID, net.N, net.Sample)
	logger := c.logger.WithKey(key)

	var rec ComparisonRecord
	err := c.store.Get(ctx, key, &rec)
	switch {
	case err == nil && rec.Complete:
		logger.DebugContext(ctx, "comparison already complete, skipping")
		return &rec, nil
	case err != nil && !errors.Is(err, checkpoint.ErrNotFound):
		return nil, fmt.Errorf("resume comparison %s: %w", key, err)
	}

	travSet, err := c.loadUnique(ctx, TraverseKey(suiteID, net.N, net.Sample))
	if err != nil {
		return nil, err
	}
	baseSet, err := c.loadUnique(ctx, BaselineKey(suiteID, net.N, net.Sample))
	if err != nil {
		return nil, err
	}

	rec = ComparisonRecord{
		Key:      key,
		N:        net.N,
		Sample:   net.Sample,
		Report:   compare.Compare(travSet, baseSet, c.opts.Predicate),
		Complete: true,
	}
	if err := c.store.Put(ctx, key, &rec); err != nil {
		return nil, fmt.Errorf("checkpoint comparison %s: %w", key, err)
	}
	logger.LogCheckpoint(ctx, key, nil)

	return &rec, nil
}

// loadUnique reads the deduplicated point list a solver job stored under
// its arrays key and rebuilds the set.
func (c *Campaign) loadUnique(ctx context.Context, jobKey string) (pointset.Set, error) {
	var arrays struct {
		Unique []model.Point `json:"unique"`
	}
	if err := c.store.Get(ctx, ArraysKey(jobKey), &arrays); err != nil {
		if errors.Is(err, checkpoint.ErrNotFound) {
			return pointset.Set{}, fmt.Errorf("%w: arrays for %s", ErrMissingDependency, jobKey)
		}
		return pointset.Set{}, fmt.Errorf("read arrays for %s: %w", jobKey, err)
	}
	return pointset.Cluster(arrays.Unique, c.opts.Predicate), nil
}
