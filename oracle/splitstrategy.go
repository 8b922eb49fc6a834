package oracle

import (
	"math/rand"

	"github.com/beerpath/burp/csr"
	"github.com/beerpath/burp/pathing"
)

// SplitStrategy turns an undecided block-pair into its children. Both
// strategies discard any candidate sub-block containing no graph node,
// since a block-pair with an empty block violates the invariant
// newBlockPair relies on.
type SplitStrategy interface {
	split(bp *BlockPair, g Graph, cache *pathing.Cache, rng *rand.Rand) []*BlockPair
}

// Simple quarters both S and T independently (both axes at once),
// pairing every surviving S-quadrant with every surviving T-quadrant —
// up to 16 children.
type Simple struct{}

func (Simple) split(bp *BlockPair, g Graph, cache *pathing.Cache, rng *rand.Rand) []*BlockPair {
	sQuads := bp.SBlock.QuarterSplit()
	tQuads := bp.TBlock.QuarterSplit()
	sChildren := occupied(sQuads[:], g)
	tChildren := occupied(tQuads[:], g)
	return pairUp(sChildren, tChildren, bp, g, cache, rng)
}

// Minimal splits only the block with the larger diameter-sum (r_af+r_ab
// vs r_bf+r_bb is smaller on the kept side), along that block's longer
// axis, and pairs each half with the other, untouched block.
type Minimal struct{}

func (Minimal) split(bp *BlockPair, g Graph, cache *pathing.Cache, rng *rand.Rand) []*BlockPair {
	rS := bp.V.RAF + bp.V.RAB
	rT := bp.V.RBF + bp.V.RBB

	var sChildren, tChildren []csr.Rect
	if rS < rT {
		// S is the tighter block; split T instead.
		a, b := bp.TBlock.BisectLongAxis()
		sChildren = []csr.Rect{bp.SBlock}
		tChildren = occupied([]csr.Rect{a, b}, g)
	} else {
		a, b := bp.SBlock.BisectLongAxis()
		sChildren = occupied([]csr.Rect{a, b}, g)
		tChildren = []csr.Rect{bp.TBlock}
	}
	return pairUp(sChildren, tChildren, bp, g, cache, rng)
}

func occupied(blocks []csr.Rect, g Graph) []csr.Rect {
	var kept []csr.Rect
	for _, b := range blocks {
		if len(g.LocateInEnvelope(b)) > 0 {
			kept = append(kept, b)
		}
	}
	return kept
}

func pairUp(sBlocks, tBlocks []csr.Rect, bp *BlockPair, g Graph, cache *pathing.Cache, rng *rand.Rand) []*BlockPair {
	children := make([]*BlockPair, 0, len(sBlocks)*len(tBlocks))
	for _, s := range sBlocks {
		for _, t := range tBlocks {
			children = append(children, newBlockPair(s, t, bp.POI, bp.Epsilon, g, cache, rng))
		}
	}
	return children
}
