package sudoku

import "testing"

// wikipediaPuzzle is the same public-domain puzzle
// kpitt-sudoku/internal/solver/dancing_links_test.go uses, courtesy
// Lawrence Leonard Gilbert via Wikipedia (also the sample puzzle in
// original_source/examples/sudoku.py).
var wikipediaPuzzle = [9][9]int8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func newWikipediaPuzzle() *Puzzle {
	p := NewPuzzle()
	for r := range 9 {
		for c := range 9 {
			if v := wikipediaPuzzle[r][c]; v != 0 {
				p.GivenValue(r, c, v)
			}
		}
	}
	return p
}

func TestSolveWikipediaPuzzle(t *testing.T) {
	p := newWikipediaPuzzle()

	solved, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if !solved {
		t.Fatal("expected puzzle to be solvable")
	}
	if !p.IsSolved() {
		t.Fatal("puzzle reports unsolved after a successful Solve")
	}

	if err := validateSolved(p); err != nil {
		t.Fatalf("solution is invalid: %v", err)
	}
}

func TestSolveIsUnique(t *testing.T) {
	p := newWikipediaPuzzle()
	count, err := p.CountSolutions(2)
	if err != nil {
		t.Fatalf("CountSolutions returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one solution, got %d", count)
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	p := NewPuzzle()
	for r := range 9 {
		for c := range 9 {
			p.GivenValue(r, c, wikipediaSolution[r][c])
		}
	}

	solved, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if !solved {
		t.Fatal("expected an already-solved puzzle to solve trivially")
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	p := NewPuzzle()
	// Two givens of the same digit in the same row violate the row
	// constraint; the reduction still builds (each given is still its own
	// single-candidate row), but no exact cover exists.
	p.GivenValue(0, 0, 5)
	p.GivenValue(0, 1, 5)

	solved, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if solved {
		t.Fatal("expected an unsatisfiable puzzle to fail to solve")
	}
}

var wikipediaSolution = [9][9]int8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// validateSolved checks every row, column, and box constraint directly
// against the grid, independent of the solver that produced it.
func validateSolved(p *Puzzle) error {
	for i := range 9 {
		if err := checkHouse(func(j int) *Cell { return p.Grid[i][j] }); err != nil {
			return err
		}
		if err := checkHouse(func(j int) *Cell { return p.Grid[j][i] }); err != nil {
			return err
		}
		boxRow, boxCol := i/3, i%3
		if err := checkHouse(func(j int) *Cell {
			return p.Grid[boxRow*3+j/3][boxCol*3+j%3]
		}); err != nil {
			return err
		}
	}
	return nil
}

func checkHouse(at func(int) *Cell) error {
	var seen [10]bool
	for i := range 9 {
		cell := at(i)
		if !cell.IsSolved() {
			return errNotSolved{cell.Row, cell.Col}
		}
		v := cell.Value()
		if v < 1 || v > 9 || seen[v] {
			return errDuplicate{v}
		}
		seen[v] = true
	}
	return nil
}

type errNotSolved struct{ Row, Col int }

func (e errNotSolved) Error() string { return "cell not solved" }

type errDuplicate struct{ Val int8 }

func (e errDuplicate) Error() string { return "duplicate value in house" }
