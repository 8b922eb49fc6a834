package pathing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beerpath/burp/csr"
)

// bruteRegion is a minimal RegionGraph that answers LocateInEnvelope by a
// linear scan, enough to exercise Radius without pulling in the spatial
// package's R-tree.
type bruteRegion struct {
	*csr.Graph
}

func (b bruteRegion) LocateInEnvelope(r csr.Rect) []int {
	var out []int
	for _, id := range b.Graph.NodeIDs() {
		c, ok := b.Graph.Coord(id)
		if ok && r.Contains(c) {
			out = append(out, id)
		}
	}
	return out
}

func TestRadius_PicksFarthestWithinRect(t *testing.T) {
	vals := []csr.NodeValue{
		{Coord: csr.Point{X: 0, Y: 0}},
		{Coord: csr.Point{X: 1, Y: 0}},
		{Coord: csr.Point{X: 2, Y: 0}},
		{Coord: csr.Point{X: 100, Y: 100}}, // outside the rect
	}
	edges := []csr.Edge{
		{U: 0, V: 1, W: 1},
		{U: 1, V: 2, W: 1},
	}
	g, err := csr.Build(vals, edges)
	require.NoError(t, err)

	rg := bruteRegion{g}
	rect := csr.Rect{MinX: -1, MinY: -1, MaxX: 3, MaxY: 1}

	p, ok := Radius(rg, 0, rect, csr.Outgoing)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2}, p.Nodes)
	require.Equal(t, 2.0, p.Cost())
}

func TestRadius_SourceOutsideRect_Fails(t *testing.T) {
	vals := []csr.NodeValue{
		{Coord: csr.Point{X: 0, Y: 0}},
		{Coord: csr.Point{X: 1, Y: 0}},
	}
	g, err := csr.Build(vals, []csr.Edge{{U: 0, V: 1, W: 1}})
	require.NoError(t, err)

	rg := bruteRegion{g}
	rect := csr.Rect{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}

	_, ok := Radius(rg, 0, rect, csr.Outgoing)
	require.False(t, ok)
}

func TestRadius_NoOtherNodeInRect_ReturnsSourceOnly(t *testing.T) {
	vals := []csr.NodeValue{
		{Coord: csr.Point{X: 0, Y: 0}},
		{Coord: csr.Point{X: 100, Y: 100}},
	}
	g, err := csr.Build(vals, nil)
	require.NoError(t, err)

	rg := bruteRegion{g}
	rect := csr.Rect{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}

	p, ok := Radius(rg, 0, rect, csr.Outgoing)
	require.True(t, ok)
	require.Equal(t, []int{0}, p.Nodes)
	require.Equal(t, 0.0, p.Cost())
}
