package pentomino

import "github.com/kjhughes/xcover/internal/set"

const boardSize = 8

// board lists the 60 legal squares of a standard 8x8 board with its
// center four squares removed, the classic board Dana Scott studied.
func board() *set.Set[Cell] {
	b := set.NewSet[Cell]()
	for x := range boardSize {
		for y := range boardSize {
			if x >= 3 && x < 5 && y >= 3 && y < 5 {
				continue
			}
			b.Add(Cell{x, y})
		}
	}
	return b
}

// positions lists every translation of shape that lands entirely within
// world, scanning left-to-right, top-to-bottom.
func positions(shape []Cell, width, height int, world *set.Set[Cell]) [][]Cell {
	var out [][]Cell
	for y := range height {
		for x := range width {
			translated := make([]Cell, len(shape))
			fits := true
			for i, c := range shape {
				tc := Cell{x + c.X, y + c.Y}
				if !world.Contains(tc) {
					fits = false
					break
				}
				translated[i] = tc
			}
			if fits {
				out = append(out, translated)
			}
		}
	}
	return out
}
