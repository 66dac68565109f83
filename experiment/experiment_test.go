package experiment

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fixgo/checkpoint"
	"github.com/hupe1980/fixgo/model"
	"github.com/hupe1980/fixgo/solver"
)

// stubContinuation returns the network's known fixed points, twice each, so
// post-processing has duplicates to remove.
type stubContinuation struct {
	calls atomic.Int32
}

func (s *stubContinuation) Traverse(_ context.Context, net *model.Network, seed model.Seed, _ []float64, _ int) (*solver.TraverseResult, error) {
	s.calls.Add(1)

	var points []model.Point
	trace := []solver.TracePoint{{Point: seed.Point, Alpha: 0}}
	for _, p := range net.Known {
		points = append(points, p.Clone(), p.Clone())
		trace = append(trace, solver.TracePoint{Point: p.Clone(), Alpha: 1})
	}
	return &solver.TraverseResult{
		Status: model.StatusSuccess,
		Points: points,
		Diagnostics: solver.Diagnostics{
			Trace:     trace,
			StepSizes: []float64{0.5, 0.5},
			SMins:     []float64{0.9, 0.3},
		},
	}, nil
}

// stubBaseline returns the first known fixed point only and remembers the
// timeout it was given.
type stubBaseline struct {
	calls       atomic.Int32
	lastTimeout atomic.Int64
}

func (s *stubBaseline) Solve(_ context.Context, net *model.Network, timeout time.Duration) (*solver.BaselineResult, error) {
	s.calls.Add(1)
	s.lastTimeout.Store(int64(timeout))

	var points []model.Point
	if len(net.Known) > 0 {
		points = append(points, net.Known[0].Clone())
	}
	return &solver.BaselineResult{Points: points, Restarts: 7}, nil
}

func testNetwork(n, sample int) *model.Network {
	w := make([][]float64, n)
	known := make([]model.Point, n)
	for i := range w {
		w[i] = make([]float64, n)
		w[i][i] = 2

		p := model.Zero(n)
		p[i] = 0.9
		known[i] = p
	}
	return &model.Network{N: n, Sample: sample, W: w, Known: known}
}

func testSuite(id string) *Suite {
	return &Suite{
		ID: id,
		Networks: []*model.Network{
			testNetwork(2, 0),
			testNetwork(2, 1),
			testNetwork(3, 0),
		},
	}
}

func TestTraverseStages(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewMemoryStore()
	cont := &stubContinuation{}
	c := NewCampaign(store, cont, nil)

	net := testNetwork(2, 0)
	rec, err := c.Traverse(ctx, "base", net)
	require.NoError(t, err)

	assert.Equal(t, "traverse_base_N_2_s_0", rec.Key)
	assert.Equal(t, model.StatusSuccess, rec.Status)
	assert.Equal(t, 4, rec.RawCount)
	assert.Equal(t, 2, rec.UniqueCount)
	assert.Equal(t, 2, rec.KnownFound)
	assert.Equal(t, 3, rec.Steps)
	assert.InDelta(t, 1.0, rec.PathLength, 1e-12)
	assert.InDelta(t, 0.3, rec.MinSMin, 1e-12)
	assert.Greater(t, rec.Runtime, time.Duration(0))
	assert.True(t, rec.Complete)

	// Arrays are stored under the derived key.
	var arrays TraverseArrays
	require.NoError(t, store.Get(ctx, ArraysKey(rec.Key), &arrays))
	assert.Len(t, arrays.Unique, 2)
	assert.Len(t, arrays.Trace, 3)
}

func TestTraverseResume(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewMemoryStore()
	cont := &stubContinuation{}
	c := NewCampaign(store, cont, nil)

	net := testNetwork(2, 0)
	first, err := c.Traverse(ctx, "base", net)
	require.NoError(t, err)

	// The second run must come from the checkpoint, not the solver.
	second, err := c.Traverse(ctx, "base", net)
	require.NoError(t, err)

	assert.Equal(t, int32(1), cont.calls.Load())
	assert.Equal(t, first, second)
}

func TestBaselineTimeoutFromTraverse(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewMemoryStore()
	cont := &stubContinuation{}
	base := &stubBaseline{}
	c := NewCampaign(store, cont, base)

	net := testNetwork(2, 0)
	trav, err := c.Traverse(ctx, "base", net)
	require.NoError(t, err)

	rec, err := c.Baseline(ctx, "base", net)
	require.NoError(t, err)

	assert.Equal(t, trav.Runtime, rec.Timeout)
	assert.Equal(t, trav.Runtime, time.Duration(base.lastTimeout.Load()))
	assert.Equal(t, 7, rec.Restarts)
	assert.Equal(t, 1, rec.UniqueCount)
	assert.Equal(t, 1, rec.KnownFound)
	assert.True(t, rec.Complete)
}

func TestBaselineRequiresTraverse(t *testing.T) {
	ctx := context.Background()
	c := NewCampaign(checkpoint.NewMemoryStore(), &stubContinuation{}, &stubBaseline{})

	_, err := c.Baseline(ctx, "base", testNetwork(2, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestComparisonJob(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewMemoryStore()
	c := NewCampaign(store, &stubContinuation{}, &stubBaseline{})

	net := testNetwork(2, 0)
	_, err := c.Traverse(ctx, "base", net)
	require.NoError(t, err)
	_, err = c.Baseline(ctx, "base", net)
	require.NoError(t, err)

	rec, err := c.Comparison(ctx, "base", net)
	require.NoError(t, err)

	// Traverse found both known points, baseline only the first.
	assert.Equal(t, 2, rec.SizeA)
	assert.Equal(t, 1, rec.SizeB)
	assert.Equal(t, 2, rec.UnionCount)
	assert.Equal(t, 1, rec.InterCount)
	assert.Equal(t, 1, rec.OnlyA)
	assert.Equal(t, 0, rec.OnlyB)
	assert.True(t, rec.Complete)
}

func TestComparisonRequiresBothSolvers(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewMemoryStore()
	c := NewCampaign(store, &stubContinuation{}, &stubBaseline{})

	net := testNetwork(2, 0)
	_, err := c.Traverse(ctx, "base", net)
	require.NoError(t, err)

	_, err = c.Comparison(ctx, "base", net)
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestDiscoveryJob(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewMemoryStore()
	cont := &stubContinuation{}
	c := NewCampaign(store, cont, nil)

	net := testNetwork(2, 0)
	_, err := c.Traverse(ctx, "base", net)
	require.NoError(t, err)

	rec, err := c.Discovery(ctx, "base", net)
	require.NoError(t, err)

	// The traverse set already explains every known point, so the
	// frontier starts empty and no extra runs happen.
	assert.Equal(t, 0, rec.Runs)
	assert.Equal(t, 2, rec.FoundCount)
	assert.Equal(t, 2, rec.KnownFound)
	assert.True(t, rec.Complete)

	var arrays DiscoveryArrays
	require.NoError(t, store.Get(ctx, ArraysKey(rec.Key), &arrays))
	assert.Len(t, arrays.Found, 2)
}

func TestDiscoveryRequiresTraverse(t *testing.T) {
	ctx := context.Background()
	c := NewCampaign(checkpoint.NewMemoryStore(), &stubContinuation{}, nil)

	_, err := c.Discovery(ctx, "base", testNetwork(2, 0))
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestBaselineComparisonCampaign(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewMemoryStore()
	cont := &stubContinuation{}
	base := &stubBaseline{}
	c := NewCampaign(store, cont, base, func(o *Options) { o.Workers = 2 })

	suite := testSuite("base")
	results, err := c.BaselineComparison(ctx, suite)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Results follow the suite's network order.
	assert.Equal(t, "tvb_base_N_2_s_0", results[0].Key)
	assert.Equal(t, "tvb_base_N_2_s_1", results[1].Key)
	assert.Equal(t, "tvb_base_N_3_s_0", results[2].Key)
	for _, r := range results {
		require.False(t, r.Failed())
		assert.True(t, r.Value.Complete)
	}

	// Batch-level result lists were checkpointed for all three phases.
	for _, key := range []string{"traverse_base", "baseline_base", "tvb_base"} {
		keys, err := store.List(ctx, key)
		require.NoError(t, err)
		assert.Contains(t, keys, key)
	}

	travCalls := cont.calls.Load()
	baseCalls := base.calls.Load()

	// Rerunning the whole campaign touches no solver again.
	again, err := c.BaselineComparison(ctx, suite)
	require.NoError(t, err)
	assert.Equal(t, results, again)
	assert.Equal(t, travCalls, cont.calls.Load())
	assert.Equal(t, baseCalls, base.calls.Load())
}

func TestAggregateDiscovery(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewMemoryStore()
	cont := &stubContinuation{}
	c := NewCampaign(store, cont, nil)

	suite := testSuite("agg")
	_, err := c.RunTraverse(ctx, suite)
	require.NoError(t, err)

	results, err := c.RunDiscovery(ctx, suite)
	require.NoError(t, err)

	closed, runs := AggregateDiscovery(results)
	assert.Equal(t, 0, closed)
	assert.Equal(t, 0, runs)
}

func TestSuiteSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := checkpoint.NewMemoryStore()

	want := testSuite("roundtrip")
	require.NoError(t, SaveSuite(ctx, store, want))

	got, err := LoadSuite(ctx, store, "roundtrip")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	net, ok := got.Network(3, 0)
	require.True(t, ok)
	assert.Equal(t, 3, net.N)

	_, ok = got.Network(5, 0)
	assert.False(t, ok)
}

func TestSuiteValidate(t *testing.T) {
	s := &Suite{Networks: []*model.Network{testNetwork(2, 0)}}
	assert.Error(t, s.Validate(), "missing ID")

	s.ID = "ok"
	assert.NoError(t, s.Validate())

	s.Networks[0].Known = append(s.Networks[0].Known, model.Zero(5))
	assert.ErrorIs(t, s.Validate(), model.ErrDimensionMismatch)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "traverse_base_N_4_s_2", TraverseKey("base", 4, 2))
	assert.Equal(t, "baseline_base_N_4_s_2", BaselineKey("base", 4, 2))
	assert.Equal(t, "tvb_base_N_4_s_2", ComparisonKey("base", 4, 2))
	assert.Equal(t, "discovery_base_N_4_s_2", DiscoveryKey("base", 4, 2))
	assert.Equal(t, "traverse_base_N_4_s_2_arrays", ArraysKey(TraverseKey("base", 4, 2)))
	assert.Equal(t, "suite_base", SuiteKey("base"))
}
