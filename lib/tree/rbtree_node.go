package tree

// rbNode is a fixed size record owned by the arena.
// Links are handles, a missing child is the sentinel.
type rbNode[T any] struct {
	val    T
	parent handle
	left   handle
	right  handle
	gen    uint32
	color  RBColor
	live   bool
}

func (arena *nodeArena[T]) root() handle {
	return arena.node(sentinel).left
}

// setRoot keeps both sentinel children pointing at the root.
func (arena *nodeArena[T]) setRoot(h handle) {
	s := arena.node(sentinel)
	s.left, s.right = h, h
	if h != sentinel {
		arena.node(h).parent = sentinel
	}
}

func (arena *nodeArena[T]) isRed(h handle) bool {
	return arena.node(h).color == Red
}

func (arena *nodeArena[T]) isBlack(h handle) bool {
	return arena.node(h).color == Black
}

func (arena *nodeArena[T]) direction(h handle) RBDirection {
	if h == sentinel {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] sentinel without direction")
	}
	p := arena.node(h).parent
	if p == sentinel {
		return Root
	}
	if arena.node(p).left == h {
		return Left
	}
	return Right
}

func (arena *nodeArena[T]) minimum(h handle) handle {
	for l := arena.node(h).left; l != sentinel; l = arena.node(h).left {
		h = l
	}
	return h
}

func (arena *nodeArena[T]) maximum(h handle) handle {
	for r := arena.node(h).right; r != sentinel; r = arena.node(h).right {
		h = r
	}
	return h
}

// The succ node of the current node is its next node in sorted order.
// Backtracking off the root lands on the sentinel, because both of
// the sentinel children are the root. From the sentinel itself the
// right child is the root, so succ(sentinel) is the minimum.
func (arena *nodeArena[T]) successor(h handle) handle {
	if r := arena.node(h).right; r != sentinel {
		return arena.minimum(r)
	}
	// Backtrack to the first ancestor reached from its left.
	p := arena.node(h).parent
	for arena.node(p).left != h {
		h, p = p, arena.node(p).parent
	}
	return p
}

// The pred node of the current node is its previous node in sorted order.
// Mirror of successor, pred(sentinel) is the maximum.
func (arena *nodeArena[T]) predecessor(h handle) handle {
	if l := arena.node(h).left; l != sentinel {
		return arena.maximum(l)
	}
	p := arena.node(h).parent
	for arena.node(p).right != h {
		h, p = p, arena.node(p).parent
	}
	return p
}
