package pathing

import (
	"github.com/beerpath/burp/csr"
)

// RegionGraph is the capability the radius primitive needs beyond
// csr.DirectedGraph: a way to enumerate the node ids lying inside a
// rectangle, normally backed by the spatial package's R-tree.
type RegionGraph interface {
	csr.DirectedGraph
	csr.CoordGraph
	LocateInEnvelope(r csr.Rect) []int
}

// Radius returns the path from v to the farthest (by shortest-path
// cost, in the given direction) graph node inside R, or false if v is
// not itself inside R or no node answers.
//
// Returning the witnessing Path (not just its scalar cost) lets the
// oracle builder serialize and display the route that determined a
// block-pair's radius.
func Radius(g RegionGraph, v int, r csr.Rect, dir csr.Direction) (Path, bool) {
	vc, ok := g.Coord(v)
	if !ok || !r.Contains(vc) {
		return Path{}, false
	}

	candidates := g.LocateInEnvelope(r)
	targets := make(map[int]struct{}, len(candidates))
	inRegion := false
	for _, id := range candidates {
		targets[id] = struct{}{}
		if id == v {
			inRegion = true
		}
	}
	if !inRegion {
		return Path{}, false
	}

	result, err := Dijkstra(g, v, targets, dir)
	if err != nil {
		return Path{}, false
	}

	bestID := -1
	bestCost := -1.0
	for id := range targets {
		n, ok := result.Get(id)
		if !ok {
			continue
		}
		if n.Cost > bestCost {
			bestCost = n.Cost
			bestID = id
		}
	}
	if bestID < 0 {
		return Path{}, false
	}
	return result.Path(bestID)
}
