package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fixgo/model"
	"github.com/hupe1980/fixgo/pointset"
)

func set(pred pointset.Predicate, vals ...[]float64) pointset.Set {
	pts := make([]model.Point, len(vals))
	for i, v := range vals {
		pts[i] = model.Point(v)
	}
	return pointset.Cluster(pts, pred)
}

func TestCompareCounts(t *testing.T) {
	pred := pointset.WithinEuclidean(0.01)
	a := set(pred, []float64{1, 0}, []float64{0, 1})
	b := set(pred, []float64{1, 0}, []float64{5, 5})

	rep := Compare(a, b, pred)

	assert.Equal(t, 2, rep.SizeA)
	assert.Equal(t, 2, rep.SizeB)
	assert.Equal(t, 3, rep.UnionCount)
	assert.Equal(t, 1, rep.InterCount)
	assert.Equal(t, 1, rep.OnlyA)
	assert.Equal(t, 1, rep.OnlyB)

	// Exact inclusion-exclusion identity.
	assert.Equal(t, rep.UnionCount, rep.SizeA+rep.SizeB-rep.InterCount)
}

func TestCompareDisjoint(t *testing.T) {
	pred := pointset.WithinEuclidean(0.01)
	a := set(pred, []float64{1, 0})
	b := set(pred, []float64{0, 1})

	rep := Compare(a, b, pred)
	assert.Equal(t, 2, rep.UnionCount)
	assert.Equal(t, 0, rep.InterCount)
	assert.Equal(t, 1, rep.OnlyA)
	assert.Equal(t, 1, rep.OnlyB)
}

func TestCompareIdentical(t *testing.T) {
	pred := pointset.WithinEuclidean(0.01)
	a := set(pred, []float64{1, 0}, []float64{0, 1})

	rep := Compare(a, a, pred)
	assert.Equal(t, 2, rep.UnionCount)
	assert.Equal(t, 2, rep.InterCount)
	assert.Equal(t, 0, rep.OnlyA)
	assert.Equal(t, 0, rep.OnlyB)
}

func TestCompareEmpty(t *testing.T) {
	pred := pointset.WithinEuclidean(0.01)
	a := set(pred, []float64{1, 0})
	empty := pointset.Empty(2)

	rep := Compare(a, empty, pred)
	assert.Equal(t, 1, rep.UnionCount)
	assert.Equal(t, 0, rep.InterCount)
	assert.Equal(t, Dispersion{}, rep.DispersionB)
}

func TestCentroid(t *testing.T) {
	pred := pointset.WithinEuclidean(0.01)
	s := set(pred, []float64{1, 0}, []float64{-1, 0}, []float64{0, 3})

	c := Centroid(s)
	assert.InDelta(t, 0, c[0], 1e-12)
	assert.InDelta(t, 1, c[1], 1e-12)
}

func TestDisperse(t *testing.T) {
	pred := pointset.WithinEuclidean(0.01)

	t.Run("SymmetricPair", func(t *testing.T) {
		// Centroid is the origin; both points are 1 away from it, and both
		// are at distance 0 from their own vertex.
		s := set(pred, []float64{1, 0, 0}, []float64{-1, 0, 0})
		d := Disperse(s)
		assert.InDelta(t, 1, d.Centroid, 1e-12)
		assert.InDelta(t, 0, d.Vertex, 1e-12)
	})

	t.Run("NearVertex", func(t *testing.T) {
		s := set(pred, []float64{0.9, 0.9})
		d := Disperse(s)
		assert.InDelta(t, 0, d.Centroid, 1e-12)
		assert.InDelta(t, 0.1414213562, d.Vertex, 1e-9)
	})
}

func TestCoverage(t *testing.T) {
	pred := pointset.WithinEuclidean(0.01)
	known := []model.Point{{1, 0}, {0, 1}, {-1, -1}}
	found := set(pred, []float64{1, 0.0001}, []float64{-1, -1})

	bm := Coverage(known, found, pred)
	require.EqualValues(t, 2, bm.GetCardinality())
	assert.True(t, bm.Contains(0))
	assert.False(t, bm.Contains(1))
	assert.True(t, bm.Contains(2))

	assert.Equal(t, 2, CoverageCount(known, found, pred))
}
