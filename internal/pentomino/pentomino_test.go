package pentomino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationCounts(t *testing.T) {
	// 'x' (plus sign) has a single orientation and 'i' (straight line) two;
	// an asymmetric piece such as 'l' has all 8.
	assert.Len(t, rotations(shapes['x']), 1)
	assert.Len(t, rotations(shapes['i']), 2)
	assert.Len(t, rotations(shapes['l']), 8)
}

func TestRowCount(t *testing.T) {
	// original_source/examples/pentominos.py documents 1568 total
	// placements across all twelve pieces and their orientations.
	assert.Len(t, rows(), 1568)
}

func TestSolveFindsATiling(t *testing.T) {
	tiling, ok, err := Solve()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, tiling, 12)

	seenPieces := make(map[byte]bool)
	seenCells := make(map[Cell]bool)
	for _, p := range tiling {
		assert.False(t, seenPieces[p.Piece], "piece %c placed twice", p.Piece)
		seenPieces[p.Piece] = true
		assert.Len(t, p.Cells, 5)
		for _, c := range p.Cells {
			assert.False(t, seenCells[c], "cell %v covered twice", c)
			seenCells[c] = true
		}
	}
	assert.Len(t, seenPieces, 12)
	assert.Len(t, seenCells, 60)
}

func TestTilingCount(t *testing.T) {
	count, err := Count(0)
	require.NoError(t, err)
	assert.Equal(t, 520, count)
}

func TestCountStopsEarly(t *testing.T) {
	count, err := Count(5)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestGridCoversWholeBoard(t *testing.T) {
	tiling, ok, err := Solve()
	require.NoError(t, err)
	require.True(t, ok)

	grid := tiling.Grid()
	blank := 0
	for _, row := range grid {
		for _, ch := range row {
			if ch == 0 {
				blank++
			}
		}
	}
	assert.Zero(t, blank, "every square should be either a piece letter or '.'")
}
