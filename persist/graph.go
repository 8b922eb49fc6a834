package persist

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/beerpath/burp/csr"
)

// EncodeGraph writes g plus its POI node-id set to w as a ".gmp"
// document. Fails with ErrNoBoundingRect if g has no nodes — an empty
// graph is never a meaningful build input.
func EncodeGraph(w io.Writer, g *csr.Graph, poiNodes []int) error {
	ids := g.NodeIDs()
	coords := make([]csr.Point, len(ids))
	for i, id := range ids {
		coords[i], _ = g.Coord(id)
	}
	if csr.BoundPoints(coords).Empty() {
		return ErrNoBoundingRect
	}

	wire := graphWire{POINodes: append([]int(nil), poiNodes...)}
	for _, id := range ids {
		v, _ := g.Value(id)
		wire.Nodes = append(wire.Nodes, nodeValueWire{X: v.Coord.X, Y: v.Coord.Y, POI: v.POI})
	}
	for _, e := range g.Edges() {
		wire.Edges = append(wire.Edges, edgeWire{U: e.U, V: e.V, W: e.W})
	}

	return msgpack.NewEncoder(w).Encode(&wire)
}

// DecodeGraph reads a ".gmp" document from r and rebuilds the graph
// plus its POI node-id set.
func DecodeGraph(r io.Reader) (*csr.Graph, []int, error) {
	var wire graphWire
	if err := msgpack.NewDecoder(r).Decode(&wire); err != nil {
		return nil, nil, err
	}

	values := make([]csr.NodeValue, len(wire.Nodes))
	for i, n := range wire.Nodes {
		values[i] = csr.NodeValue{Coord: csr.Point{X: n.X, Y: n.Y}, POI: n.POI}
	}
	edges := make([]csr.Edge, len(wire.Edges))
	for i, e := range wire.Edges {
		edges[i] = csr.Edge{U: e.U, V: e.V, W: e.W}
	}

	g, err := csr.Build(values, edges)
	if err != nil {
		return nil, nil, err
	}
	return g, wire.POINodes, nil
}
