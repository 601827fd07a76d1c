// Package cover implements Knuth's Algorithm X over a toroidal dancing-links
// mesh: a general-purpose exact cover solver generic over item labels and row
// payloads.
//
// Callers supply a list of rows, each a set of item labels, plus an optional
// set of labels to treat as secondary (covered at most once rather than
// exactly once). The package assigns each label a stable internal index,
// builds the four-directional linked mesh, and returns a lazy sequence of
// solutions: every selection of rows whose items union to cover each primary
// label exactly once and each secondary label at most once.
//
// The package knows nothing about the puzzles its callers reduce to exact
// cover — see the sibling internal/sudoku, internal/queens, and
// internal/pentomino packages for examples.
package cover
