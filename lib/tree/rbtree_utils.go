package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	errRedViolation   = errors.New("[rbtree] red violation")
	errBlackViolation = errors.New("[rbtree] black violation")
)

func (tree *RBTree[T]) blackDepthTo(h handle) int {
	depth := 0
	for aux := h; aux != sentinel; aux = tree.arena.node(aux).parent {
		if tree.arena.isBlack(aux) {
			depth++
		}
	}
	return depth
}

func (tree *RBTree[T]) height() int {
	var walk func(h handle) int
	walk = func(h handle) int {
		if h == sentinel {
			return 0
		}
		n := tree.arena.node(h)
		return 1 + max(walk(n.left), walk(n.right))
	}
	return walk(tree.arena.root())
}

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

// RedViolationValidate walks in order and reports a red node
// with a red parent or a red child.
func RedViolationValidate[T any](tree *RBTree[T]) error {
	arena := tree.arena
	if arena.isRed(arena.root()) {
		return fmt.Errorf("%w: red root", errRedViolation)
	}
	for aux := tree.begin; aux != sentinel; aux = arena.successor(aux) {
		n := arena.node(aux)
		if n.color != Red {
			continue
		}
		if arena.isRed(n.parent) || arena.isRed(n.left) || arena.isRed(n.right) {
			return errRedViolation
		}
	}
	return nil
}

// BFS traversal to load all nodes with at least one nil child.
func (tree *RBTree[T]) bfsLeaves() []handle {
	arena := tree.arena
	root := arena.root()
	if root == sentinel {
		return nil
	}

	leaves := make([]handle, 0, tree.count>>1+1)
	queue := make([]handle, 0, tree.count>>1+1)
	queue = append(queue, root)
	for len(queue) > 0 {
		aux := arena.node(queue[0])
		if /* nil leaves, keep one */ aux.left == sentinel || aux.right == sentinel {
			leaves = append(leaves, queue[0])
		}
		if aux.left != sentinel {
			queue = append(queue, aux.left)
		}
		if aux.right != sentinel {
			queue = append(queue, aux.right)
		}
		queue = queue[1:]
	}
	return leaves
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
		  /  \             /    \
		 /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each leaf node to root node black depth are equal.
*/
func BlackViolationValidate[T any](tree *RBTree[T]) error {
	leaves := tree.bfsLeaves()
	if leaves == nil {
		return nil
	}

	blackDepth := tree.blackDepthTo(leaves[0])
	for i := 1; i < len(leaves); i++ {
		if tree.blackDepthTo(leaves[i]) != blackDepth {
			return errBlackViolation
		}
	}
	return nil
}

// OrderValidate checks the strict order of the in-order walk,
// the element count and the cached minimum.
func OrderValidate[T any](tree *RBTree[T]) error {
	arena := tree.arena
	var merr error
	if first := arena.successor(sentinel); first != tree.begin {
		merr = multierr.Append(merr, fmt.Errorf("[rbtree] begin %d, minimum %d", tree.begin, first))
	}

	count := int64(0)
	prev := sentinel
	for aux := tree.begin; aux != sentinel; aux = arena.successor(aux) {
		if prev != sentinel && !tree.less(arena.node(prev).val, arena.node(aux).val) {
			merr = multierr.Append(merr, fmt.Errorf("[rbtree] order violation at %d", count))
		}
		prev = aux
		count++
		if count > tree.count {
			// cyclic links
			return multierr.Append(merr, fmt.Errorf("[rbtree] walk exceeds len %d", tree.count))
		}
	}
	if count != tree.count {
		merr = multierr.Append(merr, fmt.Errorf("[rbtree] len %d, walked %d", tree.count, count))
	}
	return merr
}

// LinkValidate checks the parent links and the sentinel.
func LinkValidate[T any](tree *RBTree[T]) error {
	arena := tree.arena
	var merr error
	s := arena.node(sentinel)
	if s.left != s.right {
		merr = multierr.Append(merr, errors.New("[rbtree] sentinel children differ"))
	}
	if s.parent != sentinel || s.color != Black {
		merr = multierr.Append(merr, errors.New("[rbtree] sentinel modified"))
	}
	if r := s.left; r != sentinel && arena.node(r).parent != sentinel {
		merr = multierr.Append(merr, errors.New("[rbtree] root parent is not the sentinel"))
	}

	walked := int64(0)
	for aux := tree.begin; aux != sentinel && walked <= tree.count; aux = arena.successor(aux) {
		walked++
		n := arena.node(aux)
		if !n.live {
			merr = multierr.Append(merr, fmt.Errorf("[rbtree] released node %d linked", aux))
		}
		if n.left != sentinel && arena.node(n.left).parent != aux {
			merr = multierr.Append(merr, fmt.Errorf("[rbtree] broken left link at %d", aux))
		}
		if n.right != sentinel && arena.node(n.right).parent != aux {
			merr = multierr.Append(merr, fmt.Errorf("[rbtree] broken right link at %d", aux))
		}
	}
	return merr
}

// Validate runs every validator and combines the failures.
func Validate[T any](tree *RBTree[T]) error {
	return multierr.Combine(
		LinkValidate[T](tree),
		OrderValidate[T](tree),
		RedViolationValidate[T](tree),
		BlackViolationValidate[T](tree),
	)
}
