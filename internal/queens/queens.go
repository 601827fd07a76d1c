// Package queens reduces the N-Queens problem to exact cover, grounded in
// original_source/examples/eightqueens.py: row and column constraints are
// primary (every row and every column must hold exactly one queen), while
// the two diagonal directions are secondary, since — unlike rows and
// columns — not every diagonal need hold a queen.
package queens

import "github.com/kjhughes/xcover/internal/cover"

// item is one exact-cover column: a row, column, diagonal, or anti-diagonal
// constraint on an n x n board.
type item struct {
	kind byte // 'r', 'c', 'd', or 'a'
	n    int
}

// Placement is a single queen's board position.
type Placement struct {
	Row, Col int
}

// rows builds the matrix over 6n-2 items for an n x n board (n rows, n
// columns, 2n-1 diagonals, 2n-1 anti-diagonals): one row per candidate
// square, covering that square's row, column, diagonal, and anti-diagonal.
func rows(n int) ([]cover.Row[item, Placement], []item) {
	matrix := make([]cover.Row[item, Placement], 0, n*n)
	for r := range n {
		for c := range n {
			matrix = append(matrix, cover.Row[item, Placement]{
				Items: []item{
					{'r', r},
					{'c', c},
					{'d', r + c},
					{'a', r - c + n - 1},
				},
				Payload: Placement{Row: r, Col: c},
			})
		}
	}

	secondary := make([]item, 0, 2*(2*n-1))
	for i := range 2*n - 1 {
		secondary = append(secondary, item{'d', i}, item{'a', i})
	}
	return matrix, secondary
}

// Solve returns the first set of n mutually non-attacking queens found on
// an n x n board, in the deterministic order the core engine produces, or
// ok=false if n admits no solution (e.g. n in {2, 3}).
func Solve(n int) (solution []Placement, ok bool, err error) {
	matrix, secondary := rows(n)
	s, err := cover.NewSecondary(matrix, secondary)
	if err != nil {
		return nil, false, err
	}
	for sol := range s.Solutions() {
		return sol, true, nil
	}
	return nil, false, nil
}

// Count reports the number of distinct n-queens solutions, stopping early
// once max have been found if max > 0.
func Count(n, max int) (int, error) {
	matrix, secondary := rows(n)
	s, err := cover.NewSecondary(matrix, secondary)
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
