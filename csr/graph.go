package csr

import "sort"

// adjacency is one direction's CSR storage: offsets has NodeCount()+1
// entries, offsets[i]..offsets[i+1] indexes into targets/weights for
// node i's slice.
type adjacency struct {
	offsets []int
	targets []int
	weights []float64
}

func newAdjacency(n int) adjacency {
	return adjacency{offsets: make([]int, n+1)}
}

func (a *adjacency) degree(u int) int {
	return a.offsets[u+1] - a.offsets[u]
}

func (a *adjacency) slice(u int) ([]int, []float64) {
	lo, hi := a.offsets[u], a.offsets[u+1]
	return a.targets[lo:hi], a.weights[lo:hi]
}

// Graph is an immutable-shape CSR directed weighted graph over dense
// nonnegative integer node ids. Node count equals len(values); holes
// (zero-degree nodes) are permitted.
type Graph struct {
	values []NodeValue
	out    adjacency
	in     adjacency
}

// Build constructs a Graph from an edge list in O(V+E): out/in degrees
// are counted, two exclusive prefix sums yield the offset arrays, then a
// single scatter pass fills targets/weights. Node count is max node id
// referenced (by edge or by len(values)-1) plus one.
//
// values supplies the per-node payload; edges referencing an id beyond
// len(values) extend the node set with zero-value payloads.
func Build(values []NodeValue, edges []Edge) (*Graph, error) {
	n := len(values)
	for _, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, ErrNodeNotFound
		}
		if e.W < 0 {
			return nil, ErrNegativeWeight
		}
		if e.U+1 > n {
			n = e.U + 1
		}
		if e.V+1 > n {
			n = e.V + 1
		}
	}

	vals := make([]NodeValue, n)
	copy(vals, values)

	outDeg := make([]int, n)
	inDeg := make([]int, n)
	for _, e := range edges {
		outDeg[e.U]++
		inDeg[e.V]++
	}

	out := newAdjacency(n)
	in := newAdjacency(n)
	for i := 0; i < n; i++ {
		out.offsets[i+1] = out.offsets[i] + outDeg[i]
		in.offsets[i+1] = in.offsets[i] + inDeg[i]
	}
	out.targets = make([]int, out.offsets[n])
	out.weights = make([]float64, out.offsets[n])
	in.targets = make([]int, in.offsets[n])
	in.weights = make([]float64, in.offsets[n])

	outCursor := append([]int(nil), out.offsets[:n]...)
	inCursor := append([]int(nil), in.offsets[:n]...)
	for _, e := range edges {
		oi := outCursor[e.U]
		out.targets[oi] = e.V
		out.weights[oi] = e.W
		outCursor[e.U]++

		ii := inCursor[e.V]
		in.targets[ii] = e.U
		in.weights[ii] = e.W
		inCursor[e.V]++
	}

	if out.offsets[n] != in.offsets[n] {
		return nil, ErrOffsetCorrupt
	}

	return &Graph{values: vals, out: out, in: in}, nil
}

// NodeCount returns the number of node ids in [0, NodeCount()).
func (g *Graph) NodeCount() int { return len(g.values) }

// Has reports whether id is a valid node id.
func (g *Graph) Has(id int) bool { return id >= 0 && id < len(g.values) }

// Value returns the node's payload, or false if id is out of range.
func (g *Graph) Value(id int) (NodeValue, bool) {
	if !g.Has(id) {
		return NodeValue{}, false
	}
	return g.values[id], true
}

// Coord returns the node's planar coordinate.
func (g *Graph) Coord(id int) (Point, bool) {
	v, ok := g.Value(id)
	if !ok {
		return Point{}, false
	}
	return v.Coord, true
}

// SetPOI appends (overwrites) the POI payload of an existing node.
// The coordinate, set once at insertion, is left untouched; only the
// POI payload is mutable after a node exists.
func (g *Graph) SetPOI(id int, poi POIData) error {
	if !g.Has(id) {
		return ErrNodeNotFound
	}
	g.values[id].POI = poi
	return nil
}

// OutDegree returns the number of outgoing edges from id, or 0 if id is
// out of range.
func (g *Graph) OutDegree(id int) int {
	if !g.Has(id) {
		return 0
	}
	return g.out.degree(id)
}

// InDegree returns the number of incoming edges to id, or 0 if id is out
// of range.
func (g *Graph) InDegree(id int) int {
	if !g.Has(id) {
		return 0
	}
	return g.in.degree(id)
}

// OutNeighbors returns id's outgoing (to, weight) pairs in CSR order.
func (g *Graph) OutNeighbors(id int) []WeightedTarget {
	if !g.Has(id) {
		return nil
	}
	return weightedSlice(&g.out, id)
}

// InNeighbors returns id's incoming (from, weight) pairs in CSR order.
func (g *Graph) InNeighbors(id int) []WeightedTarget {
	if !g.Has(id) {
		return nil
	}
	return weightedSlice(&g.in, id)
}

func weightedSlice(a *adjacency, id int) []WeightedTarget {
	targets, weights := a.slice(id)
	out := make([]WeightedTarget, len(targets))
	for i, t := range targets {
		out[i] = WeightedTarget{To: t, Weight: weights[i]}
	}
	return out
}

// Neighbors returns the union of outgoing and incoming targets for id,
// de-duplicated by target id (first occurrence wins).
func (g *Graph) Neighbors(id int) []int {
	if !g.Has(id) {
		return nil
	}
	seen := make(map[int]struct{})
	var result []int
	outT, _ := g.out.slice(id)
	for _, t := range outT {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	inT, _ := g.in.slice(id)
	for _, t := range inT {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}

// Edges visits each stored directed edge exactly once, in ascending
// source-id order, by walking the out-CSR.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for u := 0; u < len(g.values); u++ {
		targets, weights := g.out.slice(u)
		for i, v := range targets {
			edges = append(edges, Edge{U: u, V: v, W: weights[i]})
		}
	}
	return edges
}

// HasEdge reports whether the directed edge (u, v) exists, and its
// weight if so.
func (g *Graph) HasEdge(u, v int) (float64, bool) {
	if !g.Has(u) {
		return 0, false
	}
	targets, weights := g.out.slice(u)
	for i, t := range targets {
		if t == v {
			return weights[i], true
		}
	}
	return 0, false
}

// AddNode appends a node with the given payload and returns its id.
// Both CSRs gain a duplicate of their last offset (a zero-degree node).
func (g *Graph) AddNode(value NodeValue) int {
	g.values = append(g.values, value)
	lastOut := g.out.offsets[len(g.out.offsets)-1]
	g.out.offsets = append(g.out.offsets, lastOut)
	lastIn := g.in.offsets[len(g.in.offsets)-1]
	g.in.offsets = append(g.in.offsets, lastIn)
	return len(g.values) - 1
}

// AddEdge inserts (u, v, w) into both CSRs, rejecting parallel edges
// between the same ordered pair. Returns false without mutating the
// graph if the edge already exists.
//
// Complexity: O(N) — inserting into the middle of a CSR requires
// shifting every offset strictly past the insertion point.
func (g *Graph) AddEdge(u, v int, w float64) bool {
	if !g.Has(u) || !g.Has(v) {
		return false
	}
	if _, dup := g.HasEdge(u, v); dup {
		return false
	}
	insertInto(&g.out, u, v, w)
	insertInto(&g.in, v, u, w)
	return true
}

// insertInto inserts (target, w) at the start of owner's slice and
// shifts every offset strictly greater than owner right by one.
func insertInto(a *adjacency, owner, target int, w float64) {
	pos := a.offsets[owner]
	a.targets = append(a.targets, 0)
	copy(a.targets[pos+1:], a.targets[pos:len(a.targets)-1])
	a.targets[pos] = target

	a.weights = append(a.weights, 0)
	copy(a.weights[pos+1:], a.weights[pos:len(a.weights)-1])
	a.weights[pos] = w

	for i := owner + 1; i < len(a.offsets); i++ {
		a.offsets[i]++
	}
}

// RemoveEdge deletes the directed edge (u, v) from both CSRs, returning
// its weight, or (0, false) if no such edge exists.
func (g *Graph) RemoveEdge(u, v int) (float64, bool) {
	if !g.Has(u) || !g.Has(v) {
		return 0, false
	}
	w, ok := removeFrom(&g.out, u, v)
	if !ok {
		return 0, false
	}
	removeFrom(&g.in, v, u)
	return w, true
}

// removeFrom scans owner's slice for target, removing the first match
// and decrementing all offsets strictly past it by one.
func removeFrom(a *adjacency, owner, target int) (float64, bool) {
	lo, hi := a.offsets[owner], a.offsets[owner+1]
	idx := -1
	for i := lo; i < hi; i++ {
		if a.targets[i] == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false
	}
	w := a.weights[idx]
	a.targets = append(a.targets[:idx], a.targets[idx+1:]...)
	a.weights = append(a.weights[:idx], a.weights[idx+1:]...)
	for i := owner + 1; i < len(a.offsets); i++ {
		a.offsets[i]--
	}
	return w, true
}

// RemoveNode removes every edge incident to id (both directions), then
// splices its slice out of both CSRs, renumbers later target ids down
// by one, drops its payload, and shifts later offsets by its removed
// degree.
func (g *Graph) RemoveNode(id int) error {
	if !g.Has(id) {
		return ErrNodeNotFound
	}

	// Remove every incident edge first so splicing the node's own slice
	// only has to deal with the node's own (now-empty) row.
	for _, v := range append([]int(nil), sliceCopy(&g.out, id)...) {
		g.RemoveEdge(id, v)
	}
	for _, u := range append([]int(nil), sliceCopy(&g.in, id)...) {
		g.RemoveEdge(u, id)
	}

	spliceOut(&g.out, id)
	spliceOut(&g.in, id)
	g.values = append(g.values[:id], g.values[id+1:]...)
	return nil
}

func sliceCopy(a *adjacency, id int) []int {
	targets, _ := a.slice(id)
	return append([]int(nil), targets...)
}

// spliceOut removes node id's own (by now empty) row from the offset
// array and renumbers every target id greater than id down by one.
func spliceOut(a *adjacency, id int) {
	a.offsets = append(a.offsets[:id], a.offsets[id+1:]...)
	for i := range a.targets {
		if a.targets[i] > id {
			a.targets[i]--
		}
	}
}

// NodeIDs returns every valid node id in ascending order.
func (g *Graph) NodeIDs() []int {
	ids := make([]int, len(g.values))
	for i := range ids {
		ids[i] = i
	}
	sort.Ints(ids)
	return ids
}
