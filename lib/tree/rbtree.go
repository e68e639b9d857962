package tree

import (
	"go.uber.org/zap"

	"github.com/benz9527/xrbtree/lib/infra"
)

// RBTree is an ordered, unique-value container.
// It is not thread safe, callers serialize mutations themselves.
//
// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes (the sentinel) are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//
//	NIL nodes goes through the same number of black nodes. (black-violation)
//
// p5. The root is black.
//
// Node records live in an arena and are linked by handles. The
// sentinel (handle 0) terminates every leaf and is the parent of
// the root, both of its children point at the root.
type RBTree[T any] struct {
	arena     *nodeArena[T]
	less      infra.Less[T]
	logger    *zap.Logger
	stats     *rbtreeStats
	begin     handle // cached minimum, the sentinel if empty
	count     int64
	maxNodes  int64
	chunkSize uint32
	isDesc    bool
}

func NewRBTree[T infra.OrderedKey](opts ...RBTreeOpt[T]) *RBTree[T] {
	return NewRBTreeFunc[T](infra.OrderedLess[T](), opts...)
}

// NewRBTreeFunc builds a tree ordered by less.
func NewRBTreeFunc[T any](less infra.Less[T], opts ...RBTreeOpt[T]) *RBTree[T] {
	if less == nil {
		panic("[rbtree] nil less function")
	}
	tree := &RBTree[T]{
		less:   less,
		logger: zap.NewNop(),
		begin:  sentinel,
	}
	for _, o := range opts {
		o(tree)
	}
	if tree.isDesc {
		tree.less = tree.less.Reverse()
	}
	tree.arena = newNodeArena[T](tree.chunkSize, tree.maxNodes, tree.logger)
	tree.stats.RecordArenaCapacity(tree.arena.capacity())
	return tree
}

func (tree *RBTree[T]) Len() int64 {
	return tree.count
}

func (tree *RBTree[T]) Empty() bool {
	return tree.count == 0
}

func (tree *RBTree[T]) iter(h handle) Iterator[T] {
	return Iterator[T]{newCursor(tree.arena, h)}
}

func (tree *RBTree[T]) Begin() Iterator[T] {
	return tree.iter(tree.begin)
}

func (tree *RBTree[T]) End() Iterator[T] {
	return tree.iter(sentinel)
}

func (tree *RBTree[T]) CBegin() ConstIterator[T] {
	return tree.Begin().Const()
}

func (tree *RBTree[T]) CEnd() ConstIterator[T] {
	return tree.End().Const()
}

func (tree *RBTree[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{newCursor(tree.arena, tree.arena.predecessor(sentinel))}
}

func (tree *RBTree[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{newCursor(tree.arena, sentinel)}
}

func (tree *RBTree[T]) Min() (T, bool) {
	if tree.count == 0 {
		var zero T
		return zero, false
	}
	return tree.arena.node(tree.begin).val, true
}

func (tree *RBTree[T]) Max() (T, bool) {
	if tree.count == 0 {
		var zero T
		return zero, false
	}
	return tree.arena.node(tree.arena.maximum(tree.arena.root())).val, true
}

// Search engine.

func (tree *RBTree[T]) lowerBound(val T) handle {
	x, y := tree.arena.root(), sentinel
	for x != sentinel {
		n := tree.arena.node(x)
		if tree.less(n.val, val) {
			x = n.right
		} else {
			y = x
			x = n.left
		}
	}
	return y
}

func (tree *RBTree[T]) upperBound(val T) handle {
	x, y := tree.arena.root(), sentinel
	for x != sentinel {
		n := tree.arena.node(x)
		if tree.less(val, n.val) {
			y = x
			x = n.left
		} else {
			x = n.right
		}
	}
	return y
}

func (tree *RBTree[T]) find(val T) handle {
	y := tree.lowerBound(val)
	if y == sentinel || tree.less(val, tree.arena.node(y).val) {
		return sentinel
	}
	return y
}

// LowerBound returns the first element not less than val.
func (tree *RBTree[T]) LowerBound(val T) Iterator[T] {
	return tree.iter(tree.lowerBound(val))
}

// UpperBound returns the first element greater than val.
func (tree *RBTree[T]) UpperBound(val T) Iterator[T] {
	return tree.iter(tree.upperBound(val))
}

func (tree *RBTree[T]) Find(val T) Iterator[T] {
	return tree.iter(tree.find(val))
}

func (tree *RBTree[T]) Contains(val T) bool {
	return tree.find(val) != sentinel
}

// EqualRange holds at most one element, values are unique.
func (tree *RBTree[T]) EqualRange(val T) (Iterator[T], Iterator[T]) {
	lb := tree.lowerBound(val)
	if lb != sentinel && !tree.less(val, tree.arena.node(lb).val) {
		return tree.iter(lb), tree.iter(tree.arena.successor(lb))
	}
	return tree.iter(lb), tree.iter(lb)
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *RBTree[T]) leftRotate(x handle) {
	arena := tree.arena
	xn := arena.node(x)
	if x == sentinel || xn.right == sentinel {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	y := xn.right
	yn := arena.node(y)
	xn.right = yn.left
	if yn.left != sentinel {
		arena.node(yn.left).parent = x
	}

	switch dir := arena.direction(x); dir {
	case Root:
		arena.setRoot(y)
	case Left:
		arena.node(xn.parent).left = y
	case Right:
		arena.node(xn.parent).right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	yn.parent = xn.parent
	yn.left = x
	xn.parent = y
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *RBTree[T]) rightRotate(x handle) {
	arena := tree.arena
	xn := arena.node(x)
	if x == sentinel || xn.left == sentinel {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	y := xn.left
	yn := arena.node(y)
	xn.left = yn.right
	if yn.right != sentinel {
		arena.node(yn.right).parent = x
	}

	switch dir := arena.direction(x); dir {
	case Root:
		arena.setRoot(y)
	case Left:
		arena.node(xn.parent).left = y
	case Right:
		arena.node(xn.parent).right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	yn.parent = xn.parent
	yn.right = x
	xn.parent = y
}

// Insert adds val unless an equivalent value exists. The
// returned iterator refers to the new or to the existing element.
func (tree *RBTree[T]) Insert(val T) (Iterator[T], bool, error) {
	h, inserted, err := tree.insertUnique(val)
	return tree.iter(h), inserted, err
}

// Descend to a leaf slot. The only candidate of duplicate is the
// in-order neighbour on the left side of the slot.
func (tree *RBTree[T]) insertUnique(val T) (handle, bool, error) {
	arena := tree.arena
	x, y := arena.root(), sentinel
	toLeft := true
	for x != sentinel {
		y = x
		n := arena.node(x)
		if toLeft = tree.less(val, n.val); toLeft {
			x = n.left
		} else {
			x = n.right
		}
	}

	j := y
	if toLeft {
		if /* empty tree or new minimum */ y == tree.begin {
			return tree.attach(y, Left, val)
		}
		j = arena.predecessor(y)
	}
	if tree.less(arena.node(j).val, val) {
		if toLeft {
			return tree.attach(y, Left, val)
		}
		return tree.attach(y, Right, val)
	}
	return j, false, nil
}

// InsertHint tries to attach val next to hint without a full
// descent. A hint that is not adjacent to val, stale or from
// another tree falls back to Insert.
func (tree *RBTree[T]) InsertHint(hint Position[T], val T) (Iterator[T], bool, error) {
	h, inserted, err := tree.insertHint(hint, val)
	return tree.iter(h), inserted, err
}

func (tree *RBTree[T]) insertHint(hint Position[T], val T) (handle, bool, error) {
	arena := tree.arena
	if hint == nil {
		return tree.insertUnique(val)
	}
	c := hint.position()
	if c.arena != arena || !arena.alive(c.h, c.gen) {
		tree.logger.Debug("[rbtree] unusable insert hint, fallback to descent")
		return tree.fallbackInsert(val)
	}

	pos := c.h
	if /* hint at end */ pos == sentinel {
		if tree.count > 0 {
			last := arena.maximum(arena.root())
			if tree.less(arena.node(last).val, val) {
				return tree.attach(last, Right, val)
			}
		}
		return tree.fallbackInsert(val)
	}

	pn := arena.node(pos)
	if tree.less(val, pn.val) {
		if /* hint at begin */ pos == tree.begin {
			return tree.attach(pos, Left, val)
		}
		before := arena.predecessor(pos)
		if tree.less(arena.node(before).val, val) {
			// Either before has no right child, or pos is the
			// minimum of before's right subtree.
			if arena.node(before).right == sentinel {
				return tree.attach(before, Right, val)
			}
			return tree.attach(pos, Left, val)
		}
		return tree.fallbackInsert(val)
	}

	if tree.less(pn.val, val) {
		after := arena.successor(pos)
		if /* hint at last */ after == sentinel {
			return tree.attach(pos, Right, val)
		}
		if tree.less(val, arena.node(after).val) {
			if pn.right == sentinel {
				return tree.attach(pos, Right, val)
			}
			return tree.attach(after, Left, val)
		}
		return tree.fallbackInsert(val)
	}

	// Equivalent to the hint.
	return pos, false, nil
}

func (tree *RBTree[T]) fallbackInsert(val T) (handle, bool, error) {
	tree.stats.IncreaseHintFallbackCount()
	return tree.insertUnique(val)
}

// attach links a new red leaf as the dir child of parent, the
// sentinel parent means an empty tree. The allocation happens
// before any link is written.
func (tree *RBTree[T]) attach(parent handle, dir RBDirection, val T) (handle, bool, error) {
	arena := tree.arena
	capacity := arena.capacity()
	z, err := arena.create(val)
	if err != nil {
		tree.stats.IncreaseRejectedCount(rejectOutOfMemory)
		return sentinel, false, err
	}
	tree.stats.RecordArenaCapacity(arena.capacity() - capacity)

	if parent == sentinel {
		arena.setRoot(z)
		tree.begin = z
	} else {
		pn := arena.node(parent)
		arena.node(z).parent = parent
		switch dir {
		case Left:
			if pn.left != sentinel {
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] attach to an occupied left slot")
			}
			pn.left = z
			if parent == tree.begin {
				tree.begin = z
			}
		case Right:
			if pn.right != sentinel {
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] attach to an occupied right slot")
			}
			pn.right = z
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] attach without direction")
		}
	}

	tree.count++
	tree.insertRebalance(z)
	tree.stats.IncreaseInsertedCount()
	tree.stats.RecordNodeCount(1)
	return z, true, nil
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

im1: The parent P is black, nothing to do.

im2: X is the root, repaint it into black at the end.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Continue to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation still red-violation, here must enter im5 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Handle im4 scenario, current node is the same direction as parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *RBTree[T]) insertRebalance(z handle) {
	arena := tree.arena
	for /* im1 */ arena.isRed(arena.node(z).parent) {
		p := arena.node(z).parent
		g := arena.node(p).parent
		if p == arena.node(g).left {
			if u := arena.node(g).right; /* im3 */ arena.isRed(u) {
				arena.node(p).color = Black
				arena.node(u).color = Black
				arena.node(g).color = Red
				z = g
				continue
			}
			if /* im4 */ z == arena.node(p).right {
				z = p
				tree.leftRotate(z)
				p = arena.node(z).parent
			}
			/* im5 */
			arena.node(p).color = Black
			arena.node(g).color = Red
			tree.rightRotate(g)
		} else {
			if u := arena.node(g).left; /* im3 */ arena.isRed(u) {
				arena.node(p).color = Black
				arena.node(u).color = Black
				arena.node(g).color = Red
				z = g
				continue
			}
			if /* im4 */ z == arena.node(p).left {
				z = p
				tree.rightRotate(z)
				p = arena.node(z).parent
			}
			/* im5 */
			arena.node(p).color = Black
			arena.node(g).color = Red
			tree.leftRotate(g)
		}
	}
	/* im2 */
	if r := arena.root(); r != sentinel {
		arena.node(r).color = Black
	}
}

// Erase removes the element at pos and returns the position that
// followed it. Erasing End() is a no-op.
func (tree *RBTree[T]) Erase(pos Position[T]) (Iterator[T], error) {
	h, err := tree.checkPosition("Erase", pos)
	if err != nil {
		return tree.End(), err
	}
	if h == sentinel {
		return tree.End(), nil
	}
	next := tree.arena.successor(h)
	tree.eraseNode(h)
	return tree.iter(next), nil
}

// EraseValue returns the number of removed elements, 0 or 1.
func (tree *RBTree[T]) EraseValue(val T) int {
	h := tree.find(val)
	if h == sentinel {
		return 0
	}
	tree.eraseNode(h)
	return 1
}

// EraseRange removes [first, last) and returns last.
func (tree *RBTree[T]) EraseRange(first, last Position[T]) (Iterator[T], error) {
	f, err := tree.checkPosition("EraseRange", first)
	if err != nil {
		return tree.End(), err
	}
	l, err := tree.checkPosition("EraseRange", last)
	if err != nil {
		return tree.End(), err
	}

	arena := tree.arena
	if (f == sentinel && l != sentinel) ||
		(f != sentinel && l != sentinel && tree.less(arena.node(l).val, arena.node(f).val)) {
		perr := newPreconditionError("EraseRange", ErrInvalidRange, 1)
		tree.stats.IncreaseRejectedCount(rejectPrecondition)
		tree.logger.Warn("[rbtree] reject range", zap.Object("precondition", perr))
		return tree.End(), perr
	}

	if f == tree.begin && l == sentinel {
		tree.Clear()
		return tree.End(), nil
	}
	for f != l {
		next := arena.successor(f)
		tree.eraseNode(f)
		f = next
	}
	return tree.iter(l), nil
}

// PopMin removes and returns the first element.
func (tree *RBTree[T]) PopMin() (T, bool) {
	if tree.count == 0 {
		var zero T
		return zero, false
	}
	h := tree.begin
	val := tree.arena.node(h).val
	tree.eraseNode(h)
	return val, true
}

// PopMax removes and returns the last element.
func (tree *RBTree[T]) PopMax() (T, bool) {
	if tree.count == 0 {
		var zero T
		return zero, false
	}
	h := tree.arena.maximum(tree.arena.root())
	val := tree.arena.node(h).val
	tree.eraseNode(h)
	return val, true
}

func (tree *RBTree[T]) checkPosition(op string, pos Position[T]) (handle, error) {
	var c cursor[T]
	if pos != nil {
		c = pos.position()
	}

	var err *PreconditionError
	switch {
	case c.arena == nil:
		err = newPreconditionError(op, ErrIteratorInvalidated, 2)
	case c.arena != tree.arena:
		err = newPreconditionError(op, ErrForeignIterator, 2)
	case !c.arena.alive(c.h, c.gen):
		err = newPreconditionError(op, ErrIteratorInvalidated, 2)
	default:
		return c.h, nil
	}
	tree.stats.IncreaseRejectedCount(rejectPrecondition)
	tree.logger.Warn("[rbtree] reject position", zap.Object("precondition", err))
	return sentinel, err
}

// transplant puts the subtree v in the place of the subtree u.
// The parent of the sentinel is never written.
func (tree *RBTree[T]) transplant(u, v handle) {
	arena := tree.arena
	un := arena.node(u)
	switch dir := arena.direction(u); dir {
	case Root:
		s := arena.node(sentinel)
		s.left, s.right = v, v
	case Left:
		arena.node(un.parent).left = v
	case Right:
		arena.node(un.parent).right = v
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to transplant")
	}
	if v != sentinel {
		arena.node(v).parent = un.parent
	}
}

/*
Z is the node to be removed.
Y is the node that leaves its position, Z itself or Z's succ.
X is the node that takes the position of Y, maybe the sentinel,
so the parent of X is tracked on the side (xParent).

r1: Z has no left child, replace Z by its right subtree.
If Z is the minimum, begin moves to Z's succ.

r2: Z has no right child, replace Z by its left subtree.

r3: Z has both children. Y = minimum(Z.right) is spliced out
(replaced by Y.right), then Y takes Z's place, children and color.
Only links move, every other node keeps its handle.

	  |                    |
	  Z                    Y
	 / \                  / \
	L  ..   move(Y, Z)   L  ..
	    |   =========>       |
	    P                    P
	   / \                  / \
	  Y  ..                X  ..
	   \
	    X

If the color that left the structure is black, the paths
through X lost a black node. (black-violation)
*/
func (tree *RBTree[T]) eraseNode(z handle) {
	arena := tree.arena
	zn := arena.node(z)
	var x, xParent handle
	removed := zn.color

	if /* r1 */ zn.left == sentinel {
		if z == tree.begin {
			tree.begin = arena.successor(z)
		}
		x, xParent = zn.right, zn.parent
		tree.transplant(z, zn.right)
	} else if /* r2 */ zn.right == sentinel {
		x, xParent = zn.left, zn.parent
		tree.transplant(z, zn.left)
	} else /* r3 */ {
		y := arena.minimum(zn.right)
		yn := arena.node(y)
		removed = yn.color
		x = yn.right
		if yn.parent == z {
			xParent = y
		} else {
			xParent = yn.parent
			tree.transplant(y, yn.right)
			yn.right = zn.right
			arena.node(yn.right).parent = y
		}
		tree.transplant(z, y)
		yn.left = zn.left
		arena.node(yn.left).parent = y
		yn.color = zn.color
	}

	tree.count--
	if removed == Black {
		tree.removeRebalance(x, xParent)
	}
	arena.release(z)
	tree.stats.IncreaseErasedCount(1)
	tree.stats.RecordNodeCount(-1)
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

X carries an extra black. S is X's sibling.
Sc is the same direction to X and it X's sibling's child node.
Sd is the opposite direction to X and it X's sibling's child node.

rm1: The sibling S is red, so P, Sc and Sd must be black.
Rotate P toward X, repaint S into black and P into red.
The new sibling is black, enter rm2 to rm4.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: The sibling S, nephews Sc and Sd are black.
Repaint S into red, the extra black moves up to P.
If P is red, the loop ends and P is repainted into black.

	  {P}             {P}
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: The sibling S is black, Sc is red and Sd is black.
Rotate S away from X, repaint Sc into black and S into red.
Enter rm4 to fix.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm4: The sibling S is black and Sd is red.
Rotate P toward X, S takes P's color, P and Sd are repainted
into black. The extra black is absorbed, the loop ends.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *RBTree[T]) removeRebalance(x, xParent handle) {
	arena := tree.arena
	for x != arena.root() && arena.isBlack(x) {
		pn := arena.node(xParent)
		if x == pn.left {
			w := pn.right
			if /* rm1 */ arena.isRed(w) {
				arena.node(w).color = Black
				pn.color = Red
				tree.leftRotate(xParent)
				w = pn.right
			}
			if w == sentinel {
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate, sibling is nil")
			}
			wn := arena.node(w)
			if /* rm2 */ arena.isBlack(wn.left) && arena.isBlack(wn.right) {
				wn.color = Red
				x, xParent = xParent, pn.parent
				continue
			}
			if /* rm3 */ arena.isBlack(wn.right) {
				arena.node(wn.left).color = Black
				wn.color = Red
				tree.rightRotate(w)
				w = pn.right
				wn = arena.node(w)
			}
			/* rm4 */
			wn.color = pn.color
			pn.color = Black
			arena.node(wn.right).color = Black
			tree.leftRotate(xParent)
			x = arena.root()
		} else {
			w := pn.left
			if /* rm1 */ arena.isRed(w) {
				arena.node(w).color = Black
				pn.color = Red
				tree.rightRotate(xParent)
				w = pn.left
			}
			if w == sentinel {
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate, sibling is nil")
			}
			wn := arena.node(w)
			if /* rm2 */ arena.isBlack(wn.left) && arena.isBlack(wn.right) {
				wn.color = Red
				x, xParent = xParent, pn.parent
				continue
			}
			if /* rm3 */ arena.isBlack(wn.left) {
				arena.node(wn.right).color = Black
				wn.color = Red
				tree.leftRotate(w)
				w = pn.left
				wn = arena.node(w)
			}
			/* rm4 */
			wn.color = pn.color
			pn.color = Black
			arena.node(wn.left).color = Black
			tree.rightRotate(xParent)
			x = arena.root()
		}
	}
	if x != sentinel {
		arena.node(x).color = Black
	}
}

// Clear erases every element. Outstanding iterators become stale.
func (tree *RBTree[T]) Clear() {
	released := tree.count
	tree.arena.releaseAll()
	tree.begin = sentinel
	tree.count = 0
	tree.stats.IncreaseErasedCount(released)
	tree.stats.RecordNodeCount(-released)
	tree.logger.Debug("[rbtree] cleared", zap.Int64("released", released))
}

// Foreach walks in order until action returns false.
// The tree must not be mutated inside action.
func (tree *RBTree[T]) Foreach(action func(idx int64, color RBColor, val T) bool) {
	idx := int64(0)
	for h := tree.begin; h != sentinel; h = tree.arena.successor(h) {
		n := tree.arena.node(h)
		if !action(idx, n.color, n.val) {
			return
		}
		idx++
	}
}

// Values returns the elements in order.
func (tree *RBTree[T]) Values() []T {
	values := make([]T, 0, tree.count)
	tree.Foreach(func(_ int64, _ RBColor, val T) bool {
		values = append(values, val)
		return true
	})
	return values
}

// Clone deep copies every node and color. Iterators of the
// source do not refer to the clone.
func (tree *RBTree[T]) Clone() *RBTree[T] {
	cp := *tree
	cp.arena = tree.arena.clone()
	cp.stats.RecordNodeCount(cp.count)
	cp.stats.RecordArenaCapacity(cp.arena.capacity())
	return &cp
}

// Move transfers the content to a new tree without copying nodes
// and leaves tree empty. Iterators follow the content.
func (tree *RBTree[T]) Move() *RBTree[T] {
	moved := *tree
	tree.arena = newNodeArena[T](tree.chunkSize, tree.maxNodes, tree.logger)
	tree.begin = sentinel
	tree.count = 0
	tree.stats.RecordArenaCapacity(tree.arena.capacity())
	return &moved
}

// Swap exchanges the content and the settings of two trees.
func (tree *RBTree[T]) Swap(other *RBTree[T]) {
	*tree, *other = *other, *tree
}
