package compare

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/fixgo/model"
	"github.com/hupe1980/fixgo/pointset"
)

// Coverage returns a bitmap of the indices of known points that are
// explained by the found set under pred: bit j is set when some found
// point is a near-duplicate of known[j].
func Coverage(known []model.Point, found pointset.Set, pred pointset.Predicate) *roaring.Bitmap {
	bm := roaring.New()
	for j, p := range known {
		if found.ContainsNear(p, pred) {
			bm.Add(uint32(j))
		}
	}
	return bm
}

// CoverageCount returns how many known points the found set explains.
func CoverageCount(known []model.Point, found pointset.Set, pred pointset.Predicate) int {
	return int(Coverage(known, found, pred).GetCardinality())
}
