package pentomino

import "github.com/kjhughes/xcover/internal/cover"

// Tiling solves or enumerates Dana Scott's pentomino problem, one placement
// per piece.
type Tiling []Placement

// Solve returns the first tiling the search finds, or ok=false if somehow
// none exists (it always does for this board).
func Solve() (Tiling, bool, error) {
	s, err := cover.New(rows())
	if err != nil {
		return nil, false, err
	}
	for solution := range s.Solutions() {
		return Tiling(solution), true, nil
	}
	return nil, false, nil
}

// Count reports the number of distinct tilings, stopping early once max
// have been found if max > 0. The full board has 520 distinct tilings
// (counting rotations and reflections as distinct, per the original).
func Count(max int) (int, error) {
	s, err := cover.New(rows())
	if err != nil {
		return 0, err
	}

	count := 0
	for range s.Solutions() {
		count++
		if max > 0 && count >= max {
			break
		}
	}
	return count, nil
}

// Grid renders a tiling as an 8x8 picture, one letter per occupied square
// and '.' for the four removed center squares, matching the original's
// solution_str.
func (t Tiling) Grid() [boardSize][boardSize]byte {
	var grid [boardSize][boardSize]byte
	for y := range boardSize {
		for x := range boardSize {
			grid[y][x] = '.'
		}
	}
	for _, placement := range t {
		for _, c := range placement.Cells {
			grid[c.Y][c.X] = placement.Piece
		}
	}
	return grid
}
