package oracle

import (
	"math"
	"math/rand"

	"github.com/beerpath/burp/csr"
	"github.com/beerpath/burp/pathing"
)

// Values is the cached metric tuple V of a BlockPair: a
// representative node in each block, three shortest-path costs, and
// the four within-block radii.
type Values struct {
	S, T               int
	DST, DSP, DPT      float64
	RAF, RAB, RBF, RBB float64
}

// BlockPair is a record (S, T, poi, V): two axis-aligned rectangles
// annotated with a POI and the cached metrics used by the classifier.
type BlockPair struct {
	SBlock, TBlock csr.Rect
	POI            int
	Epsilon        float64
	V              Values
}

// newBlockPair constructs a block-pair, choosing representative nodes
// uniformly at random from each block and computing V via the graph's
// Dijkstra cache. Panics if either block contains no graph node — an
// invariant the splitting operation (and the initial bounding-rect
// root) must never violate.
func newBlockPair(sBlock, tBlock csr.Rect, poi int, epsilon float64, g Graph, cache *pathing.Cache, rng *rand.Rand) *BlockPair {
	sCandidates := g.LocateInEnvelope(sBlock)
	tCandidates := g.LocateInEnvelope(tBlock)
	if len(sCandidates) == 0 || len(tCandidates) == 0 {
		panic("oracle: empty block passed to newBlockPair; a bug in the splitting operation")
	}

	s := sCandidates[rng.Intn(len(sCandidates))]
	t := tCandidates[rng.Intn(len(tCandidates))]

	fromS, err := cache.Query(g, s, map[int]struct{}{t: {}, poi: {}}, csr.Outgoing)
	if err != nil {
		panic(err)
	}
	fromPOI, err := cache.Query(g, poi, map[int]struct{}{t: {}}, csr.Outgoing)
	if err != nil {
		panic(err)
	}

	rAF, _ := pathing.Radius(g, s, sBlock, csr.Outgoing)
	rAB, _ := pathing.Radius(g, s, sBlock, csr.Incoming)
	rBF, _ := pathing.Radius(g, t, tBlock, csr.Outgoing)
	rBB, _ := pathing.Radius(g, t, tBlock, csr.Incoming)

	return &BlockPair{
		SBlock:  sBlock,
		TBlock:  tBlock,
		POI:     poi,
		Epsilon: epsilon,
		V: Values{
			S:   s,
			T:   t,
			DST: pathCost(fromS, t),
			DSP: pathCost(fromS, poi),
			DPT: pathCost(fromPOI, t),
			RAF: rAF.Cost(),
			RAB: rAB.Cost(),
			RBF: rBF.Cost(),
			RBB: rBB.Cost(),
		},
	}
}

func pathCost(res *pathing.Result, to int) float64 {
	n, ok := res.Get(to)
	if !ok {
		return math.Inf(1)
	}
	return n.Cost
}
