package bracket_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jubranakram/root-finding-algorithms/bracket"
)

type objFunc func(float64) float64

func (f objFunc) Obj(x float64) float64 { return f(x) }

// TestIncrementalSearchQuadratic verifies the scan brackets both roots of
// x^2 - 7x + 10 (roots at 2 and 5)
func TestIncrementalSearchQuadratic(t *testing.T) {
	f := objFunc(func(x float64) float64 { return x*x - 7*x + 10 })

	n, intervals, err := bracket.IncrementalSearch(f, -4, 8, 0.8)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Len(t, intervals, n)

	roots := []float64{2, 5}
	for i, iv := range intervals {
		require.Less(t, iv.Lower, roots[i], "interval %d should contain root %v", i, roots[i])
		require.Greater(t, iv.Upper, roots[i], "interval %d should contain root %v", i, roots[i])
		require.LessOrEqual(t, f.Obj(iv.Lower)*f.Obj(iv.Upper), 0.0,
			"interval %d endpoints should straddle a sign change", i)
	}
}

// TestIncrementalSearchExactZero verifies a sample point landing exactly on
// a root emits the heuristic interval around the hit
func TestIncrementalSearchExactZero(t *testing.T) {
	f := objFunc(func(x float64) float64 { return x })

	n, intervals, err := bracket.IncrementalSearch(f, -1, 1, 0.5)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, bracket.Interval{Lower: -0.5, Upper: 0.5}, intervals[0])
}

// TestIncrementalSearchNoRoots verifies a function without sign changes
// yields an empty scan
func TestIncrementalSearchNoRoots(t *testing.T) {
	f := objFunc(func(x float64) float64 { return x*x + 1 })

	n, intervals, err := bracket.IncrementalSearch(f, -4, 4, 0.5)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Empty(t, intervals)
}

func TestIncrementalSearchNonPositiveStep(t *testing.T) {
	f := objFunc(func(x float64) float64 { return x })

	for _, step := range []float64{0, -0.1} {
		n, intervals, err := bracket.IncrementalSearch(f, -1, 1, step)
		require.ErrorIs(t, err, bracket.ErrNonPositiveStep)
		require.Zero(t, n)
		require.Nil(t, intervals)
	}
}

// TestIncrementalSearchCountMatchesList checks the count/list agreement on
// a function with several crossings
func TestIncrementalSearchCountMatchesList(t *testing.T) {
	// (x-1)(x-3)(x-6) has roots at 1, 3 and 6
	f := objFunc(func(x float64) float64 { return (x - 1) * (x - 3) * (x - 6) })

	n, intervals, err := bracket.IncrementalSearch(f, 0.1, 7.1, 0.7)
	require.NoError(t, err)
	require.Len(t, intervals, n)
	require.Equal(t, 3, n)
	for i, iv := range intervals {
		require.LessOrEqual(t, f.Obj(iv.Lower)*f.Obj(iv.Upper), 0.0,
			"interval %d endpoints should straddle a sign change", i)
	}
}
