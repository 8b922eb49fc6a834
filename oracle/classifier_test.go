package oracle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInPath_HoldsForZeroRadiusCollinearPoints(t *testing.T) {
	// Single-node blocks (r_* = 0): the classifier reduces to comparing
	// d_sp+d_pt against d_st*(1+eps) directly. At eps=0 the collinear
	// detour sits exactly on that bound, and both comparisons are
	// non-strict, so not-in-path holds as well.
	v := Values{DST: 10, DSP: 4, DPT: 6}
	require.True(t, v.inPath(0.0))
	require.True(t, v.notInPath(0.0))
}

func TestInPath_FalseWhenDetourExceedsTolerance(t *testing.T) {
	v := Values{DST: 10, DSP: 4, DPT: 7}
	require.False(t, v.inPath(0.0))
}

func TestInPath_DivisorGuard_ZeroOrNegativeForcesFalse(t *testing.T) {
	v := Values{DST: 5, RAF: 3, RBB: 3, DSP: 1, DPT: 1}
	require.False(t, v.inPath(1.0))
}

func TestNotInPath_HoldsForImpossibleDetour(t *testing.T) {
	v := Values{DST: 1, DSP: 100, DPT: 100}
	require.True(t, v.notInPath(0.25))
	require.False(t, v.inPath(0.25))
}

func TestClassifier_InfiniteCost_NeverDecides(t *testing.T) {
	v := Values{DST: math.Inf(1), DSP: 4, DPT: 6}
	require.False(t, v.inPath(0.5))
	require.False(t, v.notInPath(0.5))
}

func TestClassifier_NeverBothTrue(t *testing.T) {
	// None of these sits exactly on the shared zero-radius bound, the one
	// place both predicates hold (see the collinear test above).
	cases := []Values{
		{DST: 10, DSP: 4, DPT: 6},
		{DST: 1, DSP: 100, DPT: 100},
		{DST: 5, RAF: 3, RBB: 3, DSP: 1, DPT: 1},
		{DST: 7, DSP: 2, DPT: 3, RAF: 1, RAB: 1, RBF: 1, RBB: 1},
	}
	for _, v := range cases {
		require.False(t, v.inPath(0.1) && v.notInPath(0.1))
	}
}
