package sudoku

import "github.com/kjhughes/xcover/internal/cover"

// Solve attempts to solve the puzzle via exact cover and applies the first
// solution found to the grid in place. It reports whether a solution was
// found; the puzzle is left unmodified if none exists.
func (p *Puzzle) Solve() (bool, error) {
	s, err := cover.New(p.rows())
	if err != nil {
		return false, err
	}

	for solution := range s.Solutions() {
		for _, pl := range solution {
			if !p.Grid[pl.Row][pl.Col].IsSolved() {
				p.PlaceValue(pl.Row, pl.Col, pl.Val)
			}
		}
		return true, nil
	}
	return false, nil
}

// CountSolutions reports how many distinct solutions the puzzle's current
// state admits, stopping as soon as max have been found (or counting all of
// them if max <= 0). A well-posed puzzle has exactly one.
func (p *Puzzle) CountSolutions(max int) (int, error) {
	s, err := cover.New(p.rows())
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
