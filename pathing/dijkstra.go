package pathing

import (
	"container/heap"
	"fmt"

	"github.com/beerpath/burp/csr"
)

// Dijkstra computes shortest-path costs (and predecessors) from source
// to every member of targets, in the given direction, over g. It stops
// once every target has been finalized or the frontier empties —
// whichever comes first — so the returned Result is a partial
// shortest-path tree, not necessarily a full SSSP.
//
// A non-nil empty targets set has nothing left to wait for, so the loop
// breaks immediately after finalizing source itself — only a nil
// targets set (via DijkstraFull) runs a full SSSP. Callers that only
// want source's own entry should pass a non-nil empty set rather than
// nil.
//
// Dijkstra panics only via the underlying runner's internal invariant
// checks; negative weights are reported as ErrNegativeWeight rather
// than silently mishandled, since the algorithm's correctness depends
// on non-negative weights.
func Dijkstra(g csr.DirectedGraph, source int, targets map[int]struct{}, dir csr.Direction) (*Result, error) {
	if !g.Has(source) {
		return nil, ErrSourceNotFound
	}

	r := &runner{
		g:         g,
		dir:       dir,
		result:    newResult(source),
		remaining: cloneTargets(targets),
		full:      targets == nil,
		visited:   make(map[int]struct{}),
		best:      make(map[int]float64),
		pending:   make(map[int]int),
	}
	r.best[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &item{id: source, cost: 0})
	delete(r.remaining, source)

	if err := r.run(); err != nil {
		return nil, err
	}
	return r.result, nil
}

// DijkstraFull computes shortest-path costs from source to every
// reachable node in g.
func DijkstraFull(g csr.DirectedGraph, source int, dir csr.Direction) (*Result, error) {
	return Dijkstra(g, source, nil, dir)
}

func cloneTargets(targets map[int]struct{}) map[int]struct{} {
	clone := make(map[int]struct{}, len(targets))
	for id := range targets {
		clone[id] = struct{}{}
	}
	return clone
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	g         csr.DirectedGraph
	dir       csr.Direction
	result    *Result
	remaining map[int]struct{}
	full      bool
	visited   map[int]struct{}
	best      map[int]float64
	pending   map[int]int
	pq        nodePQ
}

// run is the main loop: pop the minimum, relax its neighbors, repeat
// until the frontier is empty or every requested target has been
// visited.
func (r *runner) run() error {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item)
		if _, done := r.visited[it.id]; done {
			continue
		}
		if it.cost > r.best[it.id] {
			continue // stale lazy-decrease-key entry
		}

		// Relax neighbors before finalizing: a node must propagate its
		// shortest cost to its neighbors before the loop can decide whether
		// to stop, even if it turns out to be the last target needed.
		if err := r.relax(it.id, it.cost); err != nil {
			return err
		}

		r.visited[it.id] = struct{}{}
		pred := noPred
		hasPred := false
		if p, ok := r.predOf(it.id); ok {
			pred = p
			hasPred = true
		}
		r.result.nodes[it.id] = ResultNode{ID: it.id, Pred: pred, HasPred: hasPred, Cost: it.cost}
		delete(r.remaining, it.id)

		if !r.full && len(r.remaining) == 0 {
			break
		}
	}
	return nil
}

func (r *runner) predOf(id int) (int, bool) {
	n, ok := r.pending[id]
	return n, ok
}

func (r *runner) relax(u int, costU float64) error {
	for _, nb := range r.neighborsOf(u) {
		if nb.Weight < 0 {
			return fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, u, nb.To, nb.Weight)
		}
		if _, done := r.visited[nb.To]; done {
			continue
		}
		cand := costU + nb.Weight
		if old, ok := r.best[nb.To]; ok && cand >= old {
			continue
		}
		r.best[nb.To] = cand
		r.pending[nb.To] = u
		heap.Push(&r.pq, &item{id: nb.To, cost: cand})
	}
	return nil
}

func (r *runner) neighborsOf(u int) []csr.WeightedTarget {
	switch r.dir {
	case csr.Outgoing:
		return r.g.OutNeighbors(u)
	case csr.Incoming:
		return r.g.InNeighbors(u)
	default:
		out := r.g.OutNeighbors(u)
		in := r.g.InNeighbors(u)
		combined := make([]csr.WeightedTarget, 0, len(out)+len(in))
		combined = append(combined, out...)
		combined = append(combined, in...)
		return combined
	}
}

// item is one priority-queue entry: a candidate (node, cost) pair.
type item struct {
	id   int
	cost float64
}

// nodePQ is a min-heap of *item ordered by ascending cost, using the
// lazy-decrease-key pattern: superseded entries are left in place and
// skipped on pop.
type nodePQ []*item

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
