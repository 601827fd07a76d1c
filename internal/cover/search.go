package cover

import "iter"

// Solver drives repeated exact-cover search over a mesh built once from a
// caller's row list. The zero value is not usable; construct one with New or
// NewSecondary.
type Solver[L comparable, P any] struct {
	mesh *mesh[L, P]
}

// New builds the matrix for rows, treating every item referenced in rows as
// primary (must be covered exactly once).
func New[L comparable, P any](rows []Row[L, P]) (*Solver[L, P], error) {
	return NewSecondary[L, P](rows, nil)
}

// NewSecondary builds the matrix for rows, treating the labels listed in
// secondary as at-most-once items and every other referenced label as
// primary. secondary may be nil or empty, in which case NewSecondary behaves
// like New.
func NewSecondary[L comparable, P any](rows []Row[L, P], secondary []L) (*Solver[L, P], error) {
	m, err := build(rows, secondary)
	if err != nil {
		return nil, err
	}
	return &Solver[L, P]{mesh: m}, nil
}

// Solutions returns a lazy sequence of exact covers. Each yielded value is
// the set of row payloads chosen for one solution, ordered as the rows were
// pushed during search. Ranging over the full sequence, or breaking out of
// the range early, both leave the mesh restored to its post-build state: in
// the break case because range-over-func runs the suspended search's
// pending uncover calls as it unwinds, the same way a caller-cancelled
// coroutine would.
//
// Solutions may be called more than once on the same Solver; each call is an
// independent traversal starting from the mesh's quiescent state.
func (s *Solver[L, P]) Solutions() iter.Seq[[]P] {
	return func(yield func([]P) bool) {
		s.mesh.stack = s.mesh.stack[:0]
		s.mesh.search(yield)
	}
}

// Enumerator is an explicit pull cursor over the sequence Solutions
// produces, built on the standard library's iter.Pull instead of a
// hand-rolled coroutine or manual stack.
type Enumerator[P any] struct {
	next func() ([]P, bool)
	stop func()
}

// Enumerate returns a manual pull cursor over s.Solutions(). Callers must
// call Stop when done with the cursor — including after it reports
// exhaustion — to release the goroutine iter.Pull parks the search in.
func (s *Solver[L, P]) Enumerate() *Enumerator[P] {
	next, stop := iter.Pull(s.Solutions())
	return &Enumerator[P]{next: next, stop: stop}
}

// Next advances the enumerator. It returns the next solution and true, or a
// nil solution and false once the search is exhausted. Calling Next again
// after exhaustion is benign and keeps returning false.
func (e *Enumerator[P]) Next() ([]P, bool) {
	return e.next()
}

// Stop releases the enumerator's resources and unwinds any suspended search
// state. Safe to call more than once.
func (e *Enumerator[P]) Stop() {
	e.stop()
}

// Coverings returns a lazy sequence of exact covers over rows, treating
// every referenced item as primary. It is a convenience constructor over
// New.
func Coverings[L comparable, P any](rows []Row[L, P]) (iter.Seq[[]P], error) {
	s, err := New(rows)
	if err != nil {
		return nil, err
	}
	return s.Solutions(), nil
}

// CoveringsSecondary is Coverings with secondary marking the items that may
// be covered at most once instead of exactly once.
func CoveringsSecondary[L comparable, P any](rows []Row[L, P], secondary []L) (iter.Seq[[]P], error) {
	s, err := NewSecondary(rows, secondary)
	if err != nil {
		return nil, err
	}
	return s.Solutions(), nil
}

// search implements Algorithm X: select the primary item on the root ring
// with the smallest column size, try each row covering it in top-to-bottom
// (insertion) order, and recurse. It returns false the instant
// yield reports the consumer is done, unwinding any covers applied at this
// level before propagating that false upward; it returns true when this
// level's search space is exhausted normally.
func (m *mesh[L, P]) search(yield func([]P) bool) bool {
	if m.root.right == &m.root.node {
		// No primary item remains: the current stack is a complete
		// solution.
		solution := make([]P, len(m.stack))
		copy(solution, m.stack)
		return yield(solution)
	}

	h := m.chooseColumn()
	if h.size == 0 {
		// Dead branch: no row can ever cover this item. Leave it
		// uncovered — there is nothing to undo — and report normal
		// exhaustion of this level.
		return true
	}

	m.cover(h)
	for r := h.down; r != &h.node; r = r.down {
		m.stack = append(m.stack, r.payload)
		for j := r.right; j != r; j = j.right {
			m.cover(j.header)
		}

		if !m.search(yield) {
			for j := r.left; j != r; j = j.left {
				m.uncover(j.header)
			}
			m.stack = m.stack[:len(m.stack)-1]
			m.uncover(h)
			return false
		}

		for j := r.left; j != r; j = j.left {
			m.uncover(j.header)
		}
		m.stack = m.stack[:len(m.stack)-1]
	}

	m.uncover(h)
	return true
}

// chooseColumn implements the S-heuristic: the primary header on the root
// ring with the smallest size, ties broken by the first one encountered
// walking right from the root.
func (m *mesh[L, P]) chooseColumn() *header[L, P] {
	best := m.root.right.header
	for c := m.root.right.right; c != &m.root.node; c = c.right {
		if c.header.size < best.size {
			best = c.header
		}
	}
	return best
}

// cover splices h out of the root ring, then for every row that has a cell
// in h's column, splices every other cell in that row out of its own
// vertical ring.
func (m *mesh[L, P]) cover(h *header[L, P]) {
	h.right.left = h.left
	h.left.right = h.right

	for i := h.down; i != &h.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.header.size--
		}
	}
}

// uncover is cover's exact inverse, traversed in the reverse direction: up
// then left, restoring each spliced node from its own still-intact
// neighbour pointers (the dancing-links trick).
func (m *mesh[L, P]) uncover(h *header[L, P]) {
	for i := h.up; i != &h.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.header.size++
			j.down.up = j
			j.up.down = j
		}
	}

	h.right.left = &h.node
	h.left.right = &h.node
}
