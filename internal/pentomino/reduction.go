package pentomino

import "github.com/kjhughes/xcover/internal/cover"

// item is one exact-cover column: either "place piece named Piece
// somewhere" or "cover board square At". The zero byte never names a
// piece, so Piece == 0 unambiguously marks a square item.
type item struct {
	Piece byte
	At    Cell
}

func pieceItem(name byte) item { return item{Piece: name} }
func cellItem(c Cell) item     { return item{At: c} }

// Placement is one piece's chosen position: its name and the board squares
// it occupies.
type Placement struct {
	Piece byte
	Cells []Cell
}

// rows enumerates every (piece, orientation, position) triple as one
// exact-cover row, exactly as the original's matrix() does: one row per
// legal placement of one piece, covering that piece's name item and the
// squares it occupies.
func rows() []cover.Row[item, Placement] {
	b := board()

	var matrix []cover.Row[item, Placement]
	for _, name := range Names() {
		for _, rotation := range rotations(shapes[name]) {
			for _, pos := range positions(rotation, boardSize, boardSize, b) {
				items := make([]item, 0, len(pos)+1)
				items = append(items, pieceItem(name))
				for _, c := range pos {
					items = append(items, cellItem(c))
				}
				matrix = append(matrix, cover.Row[item, Placement]{
					Items:   items,
					Payload: Placement{Piece: name, Cells: append([]Cell(nil), pos...)},
				})
			}
		}
	}
	return matrix
}
