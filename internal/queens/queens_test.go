package queens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEightQueensSolutionCount(t *testing.T) {
	count, err := Count(8, 0)
	require.NoError(t, err)
	assert.Equal(t, 92, count, "8-queens has exactly 92 distinct solutions")
}

func TestEightQueensSolutionIsValid(t *testing.T) {
	solution, ok, err := Solve(8)
	require.NoError(t, err)
	require.True(t, ok)
	assertNonAttacking(t, 8, solution)
}

func TestFourQueensSolutionCount(t *testing.T) {
	// The classic small cases: n=4 has 2 solutions, n=2 and n=3 have none.
	count, err := Count(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSmallUnsolvableBoards(t *testing.T) {
	for _, n := range []int{2, 3} {
		_, ok, err := Solve(n)
		require.NoError(t, err)
		assert.Falsef(t, ok, "n=%d should have no solution", n)
	}
}

func TestCountStopsEarly(t *testing.T) {
	count, err := Count(8, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}

func assertNonAttacking(t *testing.T, n int, solution []Placement) {
	t.Helper()
	require.Len(t, solution, n)

	rows := make(map[int]bool)
	cols := make(map[int]bool)
	diag := make(map[int]bool)
	antiDiag := make(map[int]bool)

	for _, p := range solution {
		assert.False(t, rows[p.Row], "two queens share a row")
		assert.False(t, cols[p.Col], "two queens share a column")
		assert.False(t, diag[p.Row+p.Col], "two queens share a diagonal")
		assert.False(t, antiDiag[p.Row-p.Col], "two queens share an anti-diagonal")
		rows[p.Row] = true
		cols[p.Col] = true
		diag[p.Row+p.Col] = true
		antiDiag[p.Row-p.Col] = true
	}
}
