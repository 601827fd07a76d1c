// Package pentomino reduces Dana Scott's classic problem to exact cover:
// tile a standard 8x8 board with its center four squares removed using one
// of each of the twelve pentominoes, grounded in
// original_source/examples/pentominos.py. The universe has 72 items (12
// piece names, 60 legal squares), all primary — every piece must be placed
// exactly once, and every legal square must be covered exactly once.
package pentomino

// Cell is a board coordinate, (x, y) with x the column and y the row, to
// match the original's convention.
type Cell struct {
	X, Y int
}

// shapes lists each pentomino's cells in one canonical orientation, keyed
// by its conventional single-letter name. Copied verbatim from the
// original's pentominos dict.
var shapes = map[byte][]Cell{
	'f': {{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
	'i': {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}},
	'l': {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 3}},
	'n': {{1, 0}, {1, 1}, {0, 2}, {1, 2}, {0, 3}},
	'p': {{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}},
	't': {{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}},
	'u': {{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}},
	'v': {{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}},
	'w': {{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}},
	'x': {{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}},
	'y': {{1, 0}, {0, 1}, {1, 1}, {1, 2}, {1, 3}},
	'z': {{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}},
}

// Names lists the twelve piece letters in a fixed, sorted order.
func Names() []byte {
	names := make([]byte, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}
