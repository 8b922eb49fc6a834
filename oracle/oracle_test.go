package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beerpath/burp/csr"
)

func TestOracle_AddBlockPair_RejectsDuplicateByIdentity(t *testing.T) {
	o := NewOracle(0)
	bp := &BlockPair{
		SBlock: csr.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		TBlock: csr.Rect{MinX: 10, MinY: 10, MaxX: 11, MaxY: 11},
		POI:    0,
	}

	o.addBlockPair(bp)
	o.addBlockPair(bp)
	require.Equal(t, 1, o.Size())
}

func TestOracle_GetBlockPairs_RequiresBothRectsToContain(t *testing.T) {
	o := NewOracle(7)
	bp := &BlockPair{
		SBlock: csr.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		TBlock: csr.Rect{MinX: 10, MinY: 9, MaxX: 11, MaxY: 12},
		POI:    7,
	}
	o.addBlockPair(bp)

	found := o.GetBlockPairs(csr.Point{X: 0.6, Y: 0.8}, csr.Point{X: 10.5, Y: 10})
	require.Equal(t, []*BlockPair{bp}, found)

	notFound := o.GetBlockPairs(csr.Point{X: 0.6, Y: 0.8}, csr.Point{X: 500, Y: 500})
	require.Empty(t, notFound)
}

func TestOracle_GetPOIs_ProjectsToPOIField(t *testing.T) {
	o := NewOracle(7)
	bp := &BlockPair{
		SBlock: csr.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		TBlock: csr.Rect{MinX: 10, MinY: 9, MaxX: 11, MaxY: 12},
		POI:    7,
	}
	o.addBlockPair(bp)

	pois := o.GetPOIs(csr.Point{X: 0.6, Y: 0.8}, csr.Point{X: 10.5, Y: 10})
	require.Equal(t, []int{7}, pois)
}

func TestOracle_GetBlocksAt_MatchesEitherBlock(t *testing.T) {
	o := NewOracle(0)
	bp := &BlockPair{
		SBlock: csr.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		TBlock: csr.Rect{MinX: 10, MinY: 9, MaxX: 11, MaxY: 12},
	}
	o.addBlockPair(bp)

	require.Len(t, o.GetBlocksAt(csr.Point{X: 0.5, Y: 0.5}), 1)
	require.Len(t, o.GetBlocksAt(csr.Point{X: 10.5, Y: 10}), 1)
	require.Empty(t, o.GetBlocksAt(csr.Point{X: 1000, Y: 1000}))
}
