package sudoku

import "github.com/kjhughes/xcover/internal/cover"

// placement is the payload of one exact-cover row: filling cell (Row, Col)
// with Val. It is returned verbatim by internal/cover for every row chosen
// in a solution.
type placement struct {
	Row, Col int
	Val      int8
}

// The 324 primary items are grouped into four constraint families of 81,
// numbered exactly as kpitt-sudoku/internal/solver/dancing_links.go's
// buildMatrix/createRowNodes did it: one constraint per cell, then one per
// (row, digit), (column, digit), and (box, digit) pair. There are no
// secondary items in the Sudoku reduction (original_source/examples/
// sudoku.py's four-element tuples are all plain, uncategorized columns).
func cellItem(r, c int) int                { return r*9 + c }
func rowItem(r int, val int8) int          { return 81 + r*9 + int(val-1) }
func colItem(c int, val int8) int          { return 162 + c*9 + int(val-1) }
func boxItem(box int, val int8) int        { return 243 + box*9 + int(val-1) }
func boxOf(r, c int) int                   { return (r/3)*3 + c/3 }

// rows builds the exact-cover matrix rows for the puzzle's current state:
// one row per (cell, candidate digit) combination, so already-solved cells
// contribute exactly one row (their given/placed value) and unsolved cells
// contribute one row per remaining candidate.
func (p *Puzzle) rows() []cover.Row[int, placement] {
	rows := make([]cover.Row[int, placement], 0, 9*9*9)

	addRow := func(r, c int, val int8) {
		box := boxOf(r, c)
		rows = append(rows, cover.Row[int, placement]{
			Items:   []int{cellItem(r, c), rowItem(r, val), colItem(c, val), boxItem(box, val)},
			Payload: placement{Row: r, Col: c, Val: val},
		})
	}

	for r := range 9 {
		for c := range 9 {
			cell := p.Grid[r][c]
			if cell.IsSolved() {
				addRow(r, c, cell.Value())
				continue
			}
			for val := int8(1); val <= 9; val++ {
				if cell.HasCandidate(val) {
					addRow(r, c, val)
				}
			}
		}
	}

	return rows
}
