package tree

var (
	_ Position[int] = Iterator[int]{}
	_ Position[int] = ConstIterator[int]{}
)

// cursor is a node position bound to the arena that owns the
// node. The generation snapshot detects a position whose node
// has been erased, even if the slot was reused afterward.
type cursor[T any] struct {
	arena *nodeArena[T]
	h     handle
	gen   uint32
}

func newCursor[T any](arena *nodeArena[T], h handle) cursor[T] {
	return cursor[T]{
		arena: arena,
		h:     h,
		gen:   arena.node(h).gen,
	}
}

func (c cursor[T]) state() error {
	if c.arena == nil || !c.arena.alive(c.h, c.gen) {
		return ErrIteratorInvalidated
	}
	if c.h == sentinel {
		return ErrIteratorAtEnd
	}
	return nil
}

// Valid reports whether the position could be dereferenced.
func (c cursor[T]) Valid() bool {
	return c.state() == nil
}

// Err reports why the position could not be dereferenced.
// It is nil for a live element.
func (c cursor[T]) Err() error {
	return c.state()
}

// Value returns a copy of the stored value.
// It panics with a *PreconditionError at End() or on a position
// whose node has been erased.
func (c cursor[T]) Value() T {
	return c.mustDeref("Value").val
}

func (c cursor[T]) mustDeref(op string) *rbNode[T] {
	if err := c.state(); err != nil {
		panic(newPreconditionError(op, err, 2))
	}
	return c.arena.node(c.h)
}

func (c *cursor[T]) mustMove(op string) {
	if c.arena == nil || !c.arena.alive(c.h, c.gen) {
		panic(newPreconditionError(op, ErrIteratorInvalidated, 2))
	}
}

// Next moves to the successor. The last element moves to End()
// and End() wraps around to the first element.
func (c *cursor[T]) Next() {
	c.mustMove("Next")
	c.h = c.arena.successor(c.h)
	c.gen = c.arena.node(c.h).gen
}

// Prev moves to the predecessor. End() moves to the last element
// and the first element moves to End().
func (c *cursor[T]) Prev() {
	c.mustMove("Prev")
	c.h = c.arena.predecessor(c.h)
	c.gen = c.arena.node(c.h).gen
}

func (c cursor[T]) same(o cursor[T]) bool {
	return c.arena == o.arena && c.h == o.h
}

// Iterator is a mutable position. Ref exposes the stored value
// in place, the caller must not change the part of the value
// that takes part in the ordering.
type Iterator[T any] struct {
	cursor[T]
}

func (it Iterator[T]) position() cursor[T] {
	return it.cursor
}

func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.same(o.cursor)
}

func (it Iterator[T]) Ref() *T {
	return &it.mustDeref("Ref").val
}

// Const widens to a read-only position. There is no way back.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// ConstIterator is a read-only position.
type ConstIterator[T any] struct {
	cursor[T]
}

func (it ConstIterator[T]) position() cursor[T] {
	return it.cursor
}

func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool {
	return it.same(o.cursor)
}

// ReverseIterator walks from the last element to the first.
// The sentinel ends the walk in both directions, so REnd()
// shares the position of End().
type ReverseIterator[T any] struct {
	cur cursor[T]
}

func (it *ReverseIterator[T]) Next() {
	it.cur.mustMove("Next")
	it.cur.h = it.cur.arena.predecessor(it.cur.h)
	it.cur.gen = it.cur.arena.node(it.cur.h).gen
}

func (it *ReverseIterator[T]) Prev() {
	it.cur.mustMove("Prev")
	it.cur.h = it.cur.arena.successor(it.cur.h)
	it.cur.gen = it.cur.arena.node(it.cur.h).gen
}

func (it ReverseIterator[T]) Value() T {
	return it.cur.mustDeref("Value").val
}

func (it ReverseIterator[T]) Valid() bool {
	return it.cur.Valid()
}

func (it ReverseIterator[T]) Err() error {
	return it.cur.Err()
}

func (it ReverseIterator[T]) Equal(o ReverseIterator[T]) bool {
	return it.cur.same(o.cur)
}

// Base returns the forward position right after the current
// element, RBegin().Base() is End() and REnd().Base() is Begin().
func (it ReverseIterator[T]) Base() Iterator[T] {
	it.cur.mustMove("Base")
	return Iterator[T]{newCursor(it.cur.arena, it.cur.arena.successor(it.cur.h))}
}
