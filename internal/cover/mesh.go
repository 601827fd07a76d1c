package cover

// node is one occurrence of an item in a row: one cell in the toroidal mesh,
// linked into both its row's horizontal ring and its item's vertical ring.
//
// header embeds node so that every header doubles as the anchor node of its
// own vertical ring (mirroring the row-of-nodes style of
// kpitt-sudoku/internal/solver/dancing_links.go's Node/ColumnNode), and the
// root doubles as the anchor of the horizontal ring of primary headers.
type node[L comparable, P any] struct {
	left, right, up, down *node[L, P]
	header                *header[L, P]
	payload               P
}

// header anchors one item's vertical ring and carries the running count of
// active cells in that ring (the S-heuristic's branch-size signal). A
// secondary header is self-looped horizontally, so it is never reachable by
// walking the root ring and is therefore never chosen as a branch item, but
// its vertical ring and size are maintained identically to a primary one.
type header[L comparable, P any] struct {
	node[L, P]
	size    int
	label   L
	primary bool
}

// mesh is the toroidal constraint matrix built from a caller's row list. It
// is owned exclusively by the Solver that built it.
type mesh[L comparable, P any] struct {
	root    header[L, P]
	headers []*header[L, P]
	stack   []P
}

// Row is one caller-supplied row of the exact cover matrix: a non-empty set
// of item labels, plus the payload returned verbatim in any solution that
// selects this row.
type Row[L comparable, P any] struct {
	Items   []L
	Payload P
}

// build assigns each referenced label a stable index, links the root ring of
// primary headers, and threads the vertical/horizontal cell rings for every
// row, in input order.
func build[L comparable, P any](rows []Row[L, P], secondary []L) (*mesh[L, P], error) {
	m := &mesh[L, P]{}
	m.root.left = &m.root.node
	m.root.right = &m.root.node
	m.root.header = &m.root

	index := make(map[L]*header[L, P])
	order := make([]L, 0, len(rows))

	isSecondary := make(map[L]bool, len(secondary))
	for _, label := range secondary {
		isSecondary[label] = true
	}

	register := func(label L) *header[L, P] {
		if h, ok := index[label]; ok {
			return h
		}
		h := &header[L, P]{label: label, primary: !isSecondary[label]}
		h.header = h
		h.up = &h.node
		h.down = &h.node
		index[label] = h
		order = append(order, label)
		return h
	}

	// An item declared secondary but never referenced by any row is still
	// permitted and materialises as an empty-column secondary header.
	for _, label := range secondary {
		register(label)
	}

	primaryCount := 0
	for ri, row := range rows {
		if len(row.Items) == 0 {
			return nil, emptyRowError(ri)
		}

		seen := make(map[L]bool, len(row.Items))
		var first, prev *node[L, P]
		for _, label := range row.Items {
			if seen[label] {
				return nil, duplicateItemError(ri, label)
			}
			seen[label] = true

			h := register(label)
			cell := &node[L, P]{header: h, payload: row.Payload}

			// Append to the bottom of the item's vertical ring.
			cell.up = h.up
			cell.down = &h.node
			h.up.down = cell
			h.up = cell
			h.size++

			// Link into the row's horizontal ring, in listed order.
			if first == nil {
				first = cell
				cell.left = cell
				cell.right = cell
			} else {
				cell.left = prev
				cell.right = first
				prev.right = cell
				first.left = cell
			}
			prev = cell
		}
	}

	m.headers = make([]*header[L, P], 0, len(order))
	for _, label := range order {
		h := index[label]
		m.headers = append(m.headers, h)
		if h.primary {
			primaryCount++
			// Splice h to the left of the root, i.e. append to the tail of
			// the horizontal ring.
			h.left = m.root.left
			h.right = &m.root.node
			m.root.left.right = &h.node
			m.root.left = &h.node
		} else {
			h.left = &h.node
			h.right = &h.node
		}
	}

	// The solution stack never grows past the number of primary items: each
	// selected row covers at least one not-yet-covered primary item, and
	// search terminates the instant none remain. Preallocating here keeps
	// the stack from reallocating during search; search still allocates one
	// new slice per emitted solution, the copy it hands to yield.
	m.stack = make([]P, 0, primaryCount)

	return m, nil
}
