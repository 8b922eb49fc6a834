package spatial

import (
	"math"
	"sync"

	"github.com/tidwall/geoindex"
	"github.com/tidwall/geoindex/rbang"

	"github.com/beerpath/burp/csr"
)

// Nearest-neighbor search starts with a small envelope around the query
// point and doubles it until a provably-nearest hit is found or the
// envelope exceeds maxSearchRadius (meaning the tree holds nothing
// within reach).
const (
	initialSearchRadius = 1e-3
	maxSearchRadius      = 1e9
)

// nodeItem is the payload stored in the R-tree: a node id plus the
// coordinate it was indexed under, so index hits translate straight
// back to graph node ids.
type nodeItem struct {
	id int
	pt csr.Point
}

// Rect implements geoindex.Item: node items are indexed as degenerate
// (point) rectangles.
func (n nodeItem) Rect(ctx interface{}) (min, max [2]float64) {
	p := [2]float64{n.pt.X, n.pt.Y}
	return p, p
}

// Graph pairs a csr.Graph with a spatial index over its node
// coordinates. It embeds *csr.Graph, so it already satisfies
// csr.DirectedGraph and csr.CoordGraph.
type Graph struct {
	*csr.Graph

	mu    sync.RWMutex
	index geoindex.Index
}

type buildConfig struct {
	filter func(id int) bool
}

// Option configures New's initial bulk load.
type Option func(*buildConfig)

// WithNodeFilter restricts the initial bulk load to nodes for which
// filter returns true; nodes excluded this way can still be added later
// via Insert.
func WithNodeFilter(filter func(id int) bool) Option {
	return func(c *buildConfig) { c.filter = filter }
}

// New bulk-loads every node of g (or the subset opts selects) into a
// fresh R-tree.
func New(g *csr.Graph, opts ...Option) *Graph {
	cfg := buildConfig{filter: func(int) bool { return true }}
	for _, opt := range opts {
		opt(&cfg)
	}

	sg := &Graph{Graph: g, index: &rbang.RTree{}}
	for _, id := range g.NodeIDs() {
		if !cfg.filter(id) {
			continue
		}
		pt, _ := g.Coord(id)
		sg.index.Insert(nodeItem{id: id, pt: pt})
	}
	return sg
}

// Insert adds id (already present in the underlying csr.Graph) to the
// spatial index. Call after csr.Graph.AddNode so the index stays in
// sync with the graph.
func (g *Graph) Insert(id int) error {
	pt, ok := g.Graph.Coord(id)
	if !ok {
		return ErrNodeNotFound
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.index.Insert(nodeItem{id: id, pt: pt})
	return nil
}

// Remove deletes id from the spatial index (the underlying graph node
// is untouched; callers remove it separately if desired).
func (g *Graph) Remove(id int) error {
	pt, ok := g.Graph.Coord(id)
	if !ok {
		return ErrNodeNotFound
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.index.Delete(nodeItem{id: id, pt: pt})
	return nil
}

// Len returns the number of indexed nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.index.Len()
}

// BoundingRect returns the minimum rectangle enclosing every indexed node.
func (g *Graph) BoundingRect() csr.Rect {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.index.Len() == 0 {
		return csr.Rect{MinX: 1, MinY: 1, MaxX: -1, MaxY: -1}
	}
	min, max := g.index.Bounds()
	return csr.Rect{MinX: min[0], MinY: min[1], MaxX: max[0], MaxY: max[1]}
}

// LocateInEnvelope returns every indexed node id whose coordinate falls
// within r, satisfying pathing.RegionGraph.
func (g *Graph) LocateInEnvelope(r csr.Rect) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var ids []int
	g.index.Search([2]float64{r.MinX, r.MinY}, [2]float64{r.MaxX, r.MaxY}, func(item geoindex.Item) bool {
		ids = append(ids, item.(nodeItem).id)
		return true
	})
	return ids
}

// NearestNode returns the node id closest to p by Euclidean distance,
// and that distance. Reports false if the index is empty.
func (g *Graph) NearestNode(p csr.Point) (int, float64, bool) {
	return g.nearest(p, math.Inf(1))
}

// NearestNodeBound is NearestNode bounded to candidates within maxDist;
// it reports false when the nearest node lies farther than maxDist.
func (g *Graph) NearestNodeBound(p csr.Point, maxDist float64) (int, float64, bool) {
	return g.nearest(p, maxDist)
}

func (g *Graph) nearest(p csr.Point, maxDist float64) (int, float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.index.Len() == 0 {
		return 0, 0, false
	}

	bestID := -1
	bestDist := maxDist
	for radius := initialSearchRadius; ; radius *= 2 {
		min := [2]float64{p.X - radius, p.Y - radius}
		max := [2]float64{p.X + radius, p.Y + radius}
		g.index.Search(min, max, func(item geoindex.Item) bool {
			ni := item.(nodeItem)
			if d := euclid(p, ni.pt); d <= bestDist {
				bestDist = d
				bestID = ni.id
			}
			return true
		})
		// Any point outside this envelope is at least radius away, so a
		// hit no farther than the envelope's own half-width cannot be
		// beaten by anything still unexamined.
		if bestID >= 0 && bestDist <= radius {
			break
		}
		if radius >= maxSearchRadius {
			break
		}
	}
	if bestID < 0 {
		return 0, 0, false
	}
	return bestID, bestDist, true
}

func euclid(a, b csr.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
