package csr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func triangleValues() []NodeValue {
	return []NodeValue{
		{Coord: Point{0, 0}},
		{Coord: Point{10, 0}},
		{Coord: Point{5, 8.66}},
	}
}

func TestBuild_Consistency(t *testing.T) {
	edges := []Edge{
		{U: 0, V: 1, W: 10},
		{U: 1, V: 0, W: 10},
		{U: 1, V: 2, W: 10},
		{U: 2, V: 1, W: 10},
		{U: 0, V: 2, W: 10},
		{U: 2, V: 0, W: 10},
	}
	g, err := Build(triangleValues(), edges)
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())

	for _, e := range edges {
		w, ok := g.HasEdge(e.U, e.V)
		require.True(t, ok)
		require.Equal(t, e.W, w)

		found := false
		for _, t2 := range g.InNeighbors(e.V) {
			if t2.To == e.U {
				found = true
				require.Equal(t, e.W, t2.Weight)
			}
		}
		require.True(t, found, "in-CSR missing mirror of %v", e)
	}
}

func TestAddEdge_RejectsDuplicate(t *testing.T) {
	g, err := Build(triangleValues(), []Edge{{U: 0, V: 1, W: 1}})
	require.NoError(t, err)

	before := g.Edges()
	ok := g.AddEdge(0, 1, 99)
	require.False(t, ok)
	require.Equal(t, before, g.Edges())
}

func TestAddEdge_ThenHasEdge(t *testing.T) {
	g, err := Build(triangleValues(), nil)
	require.NoError(t, err)

	require.True(t, g.AddEdge(0, 1, 5))
	w, ok := g.HasEdge(0, 1)
	require.True(t, ok)
	require.Equal(t, 5.0, w)
}

func TestRemoveEdge(t *testing.T) {
	g, err := Build(triangleValues(), []Edge{{U: 0, V: 1, W: 3}})
	require.NoError(t, err)

	w, ok := g.RemoveEdge(0, 1)
	require.True(t, ok)
	require.Equal(t, 3.0, w)

	_, ok = g.HasEdge(0, 1)
	require.False(t, ok)

	_, ok = g.RemoveEdge(0, 1)
	require.False(t, ok)
}

func TestRemoveNode_ShiftsIDsDown(t *testing.T) {
	edges := []Edge{
		{U: 0, V: 1, W: 1},
		{U: 1, V: 2, W: 1},
		{U: 0, V: 2, W: 1},
	}
	g, err := Build(triangleValues(), edges)
	require.NoError(t, err)

	require.NoError(t, g.RemoveNode(1))
	require.Equal(t, 2, g.NodeCount())

	// node that was id 2 is now id 1; edge 0->2 became 0->1.
	_, ok := g.HasEdge(0, 1)
	require.True(t, ok)
	_, ok = g.HasEdge(0, 2)
	require.False(t, ok)
}

func TestNeighbors_DedupUnion(t *testing.T) {
	edges := []Edge{
		{U: 0, V: 1, W: 1},
		{U: 1, V: 0, W: 1},
	}
	g, err := Build(triangleValues(), edges)
	require.NoError(t, err)

	n := g.Neighbors(0)
	require.Equal(t, []int{1}, n)
}

func TestHas_OutOfRangeNeverPanics(t *testing.T) {
	g, err := Build(triangleValues(), nil)
	require.NoError(t, err)

	require.False(t, g.Has(-1))
	require.False(t, g.Has(99))
	_, ok := g.Value(99)
	require.False(t, ok)
	require.Nil(t, g.Neighbors(99))
}

func TestBuild_RejectsNegativeWeight(t *testing.T) {
	_, err := Build(triangleValues(), []Edge{{U: 0, V: 1, W: -1}})
	require.ErrorIs(t, err, ErrNegativeWeight)
}
