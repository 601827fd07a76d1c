package pentomino

import "sort"

// xflip, yflip, and transpose are the three primitive operations the
// original composes into the 8 possible orientations of a pentomino. The
// "4 -" reflection point matches the original: every piece's canonical
// shape fits within a 5x5 bounding box, indices 0..4.
func xflip(shape []Cell) []Cell {
	out := make([]Cell, len(shape))
	for i, c := range shape {
		out[i] = Cell{4 - c.X, c.Y}
	}
	return out
}

func yflip(shape []Cell) []Cell {
	out := make([]Cell, len(shape))
	for i, c := range shape {
		out[i] = Cell{c.X, 4 - c.Y}
	}
	return out
}

func transpose(shape []Cell) []Cell {
	out := make([]Cell, len(shape))
	for i, c := range shape {
		out[i] = Cell{c.Y, c.X}
	}
	return out
}

// align translates shape so its minimum x and y are both 0, then sorts its
// cells into a canonical order, making two congruent shapes compare equal.
func align(shape []Cell) []Cell {
	minX, minY := shape[0].X, shape[0].Y
	for _, c := range shape[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	out := make([]Cell, len(shape))
	for i, c := range shape {
		out[i] = Cell{c.X - minX, c.Y - minY}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func sameShape(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// rotations lists the distinct orientations of shape under the dihedral
// group of the square (up to 8, fewer for shapes with symmetry, like 'x'
// and 'i'), each aligned to the origin.
func rotations(shape []Cell) [][]Cell {
	candidates := [][]Cell{
		shape,
		transpose(xflip(shape)),
		xflip(yflip(shape)),
		transpose(yflip(shape)),
		xflip(shape),
		yflip(shape),
		transpose(shape),
		transpose(xflip(yflip(shape))),
	}

	out := make([][]Cell, 0, 8)
	for _, c := range candidates {
		aligned := align(c)
		seen := false
		for _, existing := range out {
			if sameShape(existing, aligned) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, aligned)
		}
	}
	return out
}
