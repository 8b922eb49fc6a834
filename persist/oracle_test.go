package persist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beerpath/burp/csr"
	"github.com/beerpath/burp/oracle"
)

func sampleBlockPair() *oracle.BlockPair {
	return &oracle.BlockPair{
		SBlock:  csr.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		TBlock:  csr.Rect{MinX: 10, MinY: 10, MaxX: 11, MaxY: 11},
		POI:     3,
		Epsilon: 0.25,
		V:       oracle.Values{S: 0, T: 4, DST: 5, DSP: 2, DPT: 3, RAF: 0.5, RAB: 0.5, RBF: 0.1, RBB: 0.1},
	}
}

func TestOracleRoundTrip_PreservesQueryBehavior(t *testing.T) {
	bp := sampleBlockPair()
	o := oracle.Restore(3, []*oracle.BlockPair{bp})

	var buf bytes.Buffer
	require.NoError(t, EncodeOracle(&buf, o))

	got, err := DecodeOracle(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, got.POI())
	require.Equal(t, 1, got.Size())

	pois := got.GetPOIs(csr.Point{X: 0.5, Y: 0.5}, csr.Point{X: 10.5, Y: 10.5})
	require.Equal(t, []int{3}, pois)
}

func TestCollectionRoundTrip_PreservesEveryOracle(t *testing.T) {
	c := oracle.NewOracleCollection()
	c.Insert(oracle.Restore(1, []*oracle.BlockPair{sampleBlockPair()}))
	c.Insert(oracle.Restore(2, nil))

	var buf bytes.Buffer
	require.NoError(t, EncodeCollection(&buf, c))

	got, err := DecodeCollection(&buf)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 2}, got.POIs())

	o1, ok := got.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, o1.Size())

	o2, ok := got.Get(2)
	require.True(t, ok)
	require.Equal(t, 0, o2.Size())
}
