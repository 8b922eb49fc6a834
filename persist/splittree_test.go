package persist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beerpath/burp/oracle"
)

func sampleSplitTreeRecords() []oracle.SplitTreeNode {
	root := sampleBlockPair()
	child := sampleBlockPair()
	child.POI = 7
	return []oracle.SplitTreeNode{
		{Pair: root, Kept: false, Parent: -1},
		{Pair: child, Kept: true, Parent: 0},
	}
}

func TestSplitTreeRoundTrip_PreservesShapeAndPayload(t *testing.T) {
	tree := oracle.RestoreSplitTree(sampleSplitTreeRecords())

	var buf bytes.Buffer
	require.NoError(t, EncodeSplitTree(&buf, tree))

	got, err := DecodeSplitTree(&buf)
	require.NoError(t, err)
	require.Equal(t, tree.Len(), got.Len())

	require.Equal(t, -1, got.Parent(0))
	require.Equal(t, 0, got.Parent(1))
	require.Equal(t, []int{1}, got.Children(0))
	require.False(t, got.Kept(0))
	require.True(t, got.Kept(1))
	require.Equal(t, 7, got.Pair(1).POI)
}

func TestSplitTreesRoundTrip_PreservesPerPOIMap(t *testing.T) {
	trees := map[int]*oracle.SplitTree{
		1: oracle.RestoreSplitTree(sampleSplitTreeRecords()),
		2: oracle.RestoreSplitTree(sampleSplitTreeRecords()),
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeSplitTrees(&buf, trees))

	got, err := DecodeSplitTrees(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 2, got[1].Len())
	require.Equal(t, 2, got[2].Len())
}
