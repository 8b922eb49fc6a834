package pathing

import "math"

// noPred marks a result-node with no predecessor (the source, or an
// unresolved entry).
const noPred = -1

// ResultNode is one entry of a DijkstraResult: a node id, its
// predecessor on the shortest path from the source (or none), and its
// finalized cost from the source. A Result keys its entries by node id
// alone.
type ResultNode struct {
	ID      int
	Pred    int
	HasPred bool
	Cost    float64
}

// Result is a DijkstraResult: a partial shortest-path tree keyed by
// node id, rooted at Source.
type Result struct {
	Source int
	nodes  map[int]ResultNode
}

func newResult(source int) *Result {
	return &Result{Source: source, nodes: make(map[int]ResultNode)}
}

// Get returns the result-node for v, if it was reached.
func (r *Result) Get(v int) (ResultNode, bool) {
	n, ok := r.nodes[v]
	return n, ok
}

// Cost returns the shortest-path cost from Source to v, or +Inf if v
// was not reached.
func (r *Result) Cost(v int) float64 {
	if n, ok := r.nodes[v]; ok {
		return n.Cost
	}
	return math.Inf(1)
}

// Len reports how many nodes this result has finalized.
func (r *Result) Len() int { return len(r.nodes) }

// Path is an ordered sequence of (node id, accumulated cost) pairs from
// a Dijkstra source. A zero-length path (source only) is legal and has
// cost zero; an empty Path (no Nodes) never occurs.
type Path struct {
	Nodes []int
	Costs []float64
}

// Cost returns the path's total accumulated cost, i.e. the last entry's
// cumulative cost.
func (p Path) Cost() float64 {
	if len(p.Costs) == 0 {
		return math.Inf(1)
	}
	return p.Costs[len(p.Costs)-1]
}

// Path reconstructs the path to v by walking predecessors backwards
// from v to Source. Reports false if v was not reached, or if any
// intermediate predecessor is missing from the result (an undefined
// path).
func (r *Result) Path(v int) (Path, bool) {
	n, ok := r.nodes[v]
	if !ok {
		return Path{}, false
	}

	var ids []int
	cur := n
	for {
		ids = append(ids, cur.ID)
		if !cur.HasPred {
			break
		}
		next, ok := r.nodes[cur.Pred]
		if !ok {
			return Path{}, false
		}
		cur = next
	}

	// ids was built backwards from v to Source; reverse it.
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	costs := make([]float64, len(ids))
	for i, id := range ids {
		costs[i] = r.nodes[id].Cost
	}
	return Path{Nodes: ids, Costs: costs}, true
}
