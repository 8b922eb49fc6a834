package oracle

import (
	"math/rand"
	"time"

	"github.com/beerpath/burp/csr"
	"github.com/beerpath/burp/pathing"
)

// buildConfig holds the parameters a build run is configured with.
type buildConfig struct {
	merge    bool
	seed     int64
	strategy SplitStrategy
}

// Option configures BuildForNode / BuildForNodes.
type Option func(*buildConfig)

// WithMerge enables merge-based compression: a parent whose children
// are all in-path collapses into a single kept leaf, and a parent whose
// children are all not-in-path is discarded entirely.
func WithMerge(merge bool) Option {
	return func(c *buildConfig) { c.merge = merge }
}

// WithSeed fixes the random source driving representative-node choice,
// for reproducible builds (at the cost of possibly-pathological radii
// versus a fresh random seed each run).
func WithSeed(seed int64) Option {
	return func(c *buildConfig) { c.seed = seed }
}

// WithSplitStrategy selects the strategy used to subdivide undecided
// block-pairs. Defaults to Simple.
func WithSplitStrategy(s SplitStrategy) Option {
	return func(c *buildConfig) { c.strategy = s }
}

func newBuildConfig(opts []Option) buildConfig {
	cfg := buildConfig{strategy: Simple{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	return cfg
}

// BuildForNode builds the oracle for a single POI over the given ε and
// graph, returning both the oracle and the split-tree recording the
// recursion.
func BuildForNode(poi int, epsilon float64, g Graph, opts ...Option) (*Oracle, *SplitTree, error) {
	cfg := newBuildConfig(opts)
	rng := rand.New(rand.NewSource(cfg.seed))
	cache := pathing.NewCache()

	root := g.BoundingRect()
	if root.Empty() {
		return nil, nil, ErrEmptyGraph
	}

	b := &builder{oracle: NewOracle(poi), tree: newSplitTree(), g: g, cache: cache, rng: rng, cfg: cfg}

	rootPair := newBlockPair(root, root, poi, epsilon, g, cache, rng)
	rootIdx := b.tree.addRoot(rootPair)
	b.process(rootIdx)

	return b.oracle, b.tree, nil
}

// BuildForNodes builds one oracle per POI in pois, returning every
// oracle populated into an OracleCollection plus each POI's split-tree.
// No work is shared between POIs: each gets its own Dijkstra cache.
func BuildForNodes(pois []int, epsilon float64, g Graph, opts ...Option) (*OracleCollection, map[int]*SplitTree, error) {
	collection := NewOracleCollection()
	trees := make(map[int]*SplitTree, len(pois))
	for _, poi := range pois {
		oracle, tree, err := BuildForNode(poi, epsilon, g, opts...)
		if err != nil {
			return nil, nil, err
		}
		collection.Insert(oracle)
		trees[poi] = tree
	}
	return collection, trees, nil
}

type builder struct {
	oracle *Oracle
	tree   *SplitTree
	g      Graph
	cache  *pathing.Cache
	rng    *rand.Rand
	cfg    buildConfig
}

// process classifies and (if undecided) recursively subdivides the
// block-pair at idx. Returns +1 if in-path, -1 if not-in-path, 0 if
// undecided (children, if any, have already been inserted into the
// oracle where kept).
func (b *builder) process(idx int) int {
	bp := b.tree.Pair(idx)

	if bp.InPath() {
		b.tree.setKept(idx, true)
		return 1
	}

	if bp.NotInPath() {
		if b.cfg.merge {
			b.tree.dropChildren(idx)
		}
		return -1
	}

	// Undecided with both blocks already down to a single node: further
	// splitting only quarters geometry around that one node forever
	// without ever changing its occupancy, so this is the disconnected-
	// components terminal case, not a block to refine. Exclude it and
	// stop recursing rather than inserting an uncertified pair.
	if singleNode(bp.SBlock, b.g) && singleNode(bp.TBlock, b.g) {
		return 0
	}

	children := b.cfg.strategy.split(bp, b.g, b.cache, b.rng)
	if len(children) == 0 {
		// Splitting produced nothing to recurse into; exclude rather
		// than insert a pair that was never certified by InPath.
		return 0
	}

	childIdxs := make([]int, len(children))
	for i, child := range children {
		childIdxs[i] = b.tree.addChild(idx, child)
	}

	results := make([]int, len(childIdxs))
	for i, ci := range childIdxs {
		results[i] = b.process(ci)
	}

	if b.cfg.merge && allEqual(results, 1) {
		b.tree.setKept(idx, true)
		b.tree.dropChildren(idx)
		return 1
	}
	if b.cfg.merge && allEqual(results, -1) {
		b.tree.dropChildren(idx)
		return -1
	}

	for _, ci := range childIdxs {
		if b.tree.Kept(ci) {
			b.oracle.addBlockPair(b.tree.Pair(ci))
		}
	}
	return 0
}

// singleNode reports whether r's envelope contains exactly one graph
// node, the point past which neither split strategy can shrink a block
// any further in node-occupancy terms.
func singleNode(r csr.Rect, g Graph) bool {
	return len(g.LocateInEnvelope(r)) == 1
}

func allEqual(results []int, want int) bool {
	for _, r := range results {
		if r != want {
			return false
		}
	}
	return true
}
