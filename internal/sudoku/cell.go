package sudoku

import "github.com/kjhughes/xcover/internal/set"

type Cell struct {
	Row, Col int
	IsGiven  bool

	value      int8
	Candidates *set.Set[int8]
}

func NewCell(r, c int) *Cell {
	return &Cell{
		Row: r, Col: c,
		Candidates: set.NewSet[int8](1, 2, 3, 4, 5, 6, 7, 8, 9),
	}
}

// IsSolved returns true if a solved value has been placed in this cell.
func (c *Cell) IsSolved() bool {
	return c.value > 0
}

func (c *Cell) Value() int8 {
	return c.value
}

// PlaceValue places a solved value into the cell, clearing any remaining
// candidates.
func (c *Cell) PlaceValue(val int8) {
	c.value = val
	c.Candidates.Clear()
}

// GivenValue places an initial value into the cell, marking it as a given
// value that cannot be changed.  This is used for the initial puzzle setup.
func (c *Cell) GivenValue(val int8) {
	c.IsGiven = true
	c.PlaceValue(val)
}

func (c *Cell) HasCandidate(val int8) bool {
	return c.Candidates.Contains(val)
}

func (c *Cell) RemoveCandidate(val int8) {
	c.Candidates.Remove(val)
}
