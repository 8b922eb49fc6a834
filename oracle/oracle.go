package oracle

import (
	"sync"

	"github.com/tidwall/rtree"

	"github.com/beerpath/burp/csr"
)

// Oracle is the set of in-path block-pairs for a single POI, indexed
// spatially so queries run in R-tree time rather than scanning every
// pair. Block-pairs are owned by the pairs slice (an arena); the R-tree
// leaves carry only the integer index of their owning pair, the
// "weak reference" idiom this module uses in place of Rust's Weak<T>
// (pruning a pair from pairs would leave a stale leaf index behind, but
// the builder never prunes after insertion — only before, during split
// classification).
type Oracle struct {
	poi int

	mu    sync.RWMutex
	tree  rtree.RTree[int]
	pairs []*BlockPair
}

// NewOracle returns an empty oracle for poi.
func NewOracle(poi int) *Oracle {
	return &Oracle{poi: poi}
}

// POI returns the node id this oracle answers detour queries for.
func (o *Oracle) POI() int { return o.poi }

// Size returns the number of block-pairs stored in the oracle.
func (o *Oracle) Size() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.pairs)
}

// addBlockPair pushes bp onto the arena and inserts one R-tree leaf for
// each of its S and T rectangles, both carrying bp's arena index.
// Rejects (no-op) a block-pair already present by pointer identity,
// the invariant the build maintains: no block-pair is ever inserted
// twice.
func (o *Oracle) addBlockPair(bp *BlockPair) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, existing := range o.pairs {
		if existing == bp {
			return
		}
	}

	idx := len(o.pairs)
	o.pairs = append(o.pairs, bp)
	o.tree.Insert(rectMin(bp.SBlock), rectMax(bp.SBlock), idx)
	o.tree.Insert(rectMin(bp.TBlock), rectMax(bp.TBlock), idx)
}

// GetBlockPairs locates every block-pair whose S rectangle contains
// sCoord and whose T rectangle also contains tCoord, deduplicated by
// identity.
func (o *Oracle) GetBlockPairs(sCoord, tCoord csr.Point) []*BlockPair {
	o.mu.RLock()
	defer o.mu.RUnlock()

	seen := make(map[int]struct{})
	var out []*BlockPair
	point := [2]float64{sCoord.X, sCoord.Y}
	o.tree.Search(point, point, func(min, max [2]float64, idx int) bool {
		if _, dup := seen[idx]; dup {
			return true
		}
		bp := o.pairs[idx]
		if bp.SBlock.Contains(sCoord) && bp.TBlock.Contains(tCoord) {
			seen[idx] = struct{}{}
			out = append(out, bp)
		}
		return true
	})
	return out
}

// GetPOIs projects GetBlockPairs to the set of POI ids that certify a
// beer path for (sCoord, tCoord). For a single-POI Oracle this is
// either empty or {o.poi}; OracleCollection.Query unions this across
// every oracle it owns.
func (o *Oracle) GetPOIs(sCoord, tCoord csr.Point) []int {
	pairs := o.GetBlockPairs(sCoord, tCoord)
	seen := make(map[int]struct{}, len(pairs))
	var out []int
	for _, bp := range pairs {
		if _, dup := seen[bp.POI]; dup {
			continue
		}
		seen[bp.POI] = struct{}{}
		out = append(out, bp.POI)
	}
	return out
}

// GetBlocksAt returns every live block-pair whose S or T rectangle
// contains coord, for visualization and debugging rather than serving
// queries.
func (o *Oracle) GetBlocksAt(coord csr.Point) []*BlockPair {
	o.mu.RLock()
	defer o.mu.RUnlock()

	seen := make(map[int]struct{})
	var out []*BlockPair
	point := [2]float64{coord.X, coord.Y}
	o.tree.Search(point, point, func(min, max [2]float64, idx int) bool {
		if _, dup := seen[idx]; dup {
			return true
		}
		seen[idx] = struct{}{}
		out = append(out, o.pairs[idx])
		return true
	})
	return out
}

func rectMin(r csr.Rect) [2]float64 { return [2]float64{r.MinX, r.MinY} }
func rectMax(r csr.Rect) [2]float64 { return [2]float64{r.MaxX, r.MaxY} }

// Pairs returns every block-pair stored in the oracle, in arena order.
// Exposed for serialization; the R-tree itself is never persisted, it
// is rebuilt from this slice on load via Restore.
func (o *Oracle) Pairs() []*BlockPair {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]*BlockPair, len(o.pairs))
	copy(out, o.pairs)
	return out
}

// Restore rebuilds an Oracle for poi from a previously-persisted
// block-pair slice, re-inserting each pair's R-tree leaves. The
// duplicate-by-identity guard in addBlockPair is moot here since every
// pair in pairs is distinct by construction.
func Restore(poi int, pairs []*BlockPair) *Oracle {
	o := NewOracle(poi)
	for _, bp := range pairs {
		o.addBlockPair(bp)
	}
	return o
}
