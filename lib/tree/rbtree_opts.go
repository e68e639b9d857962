package tree

import "go.uber.org/zap"

type RBTreeOpt[T any] func(*RBTree[T])

// WithRBTreeDesc reverses the comparator, the greatest value
// becomes Begin().
func WithRBTreeDesc[T any]() RBTreeOpt[T] {
	return func(tree *RBTree[T]) {
		tree.isDesc = true
	}
}

func WithRBTreeLogger[T any](logger *zap.Logger) RBTreeOpt[T] {
	return func(tree *RBTree[T]) {
		if logger != nil {
			tree.logger = logger
		}
	}
}

// WithRBTreeArenaChunkSize sets how many node records one
// arena chunk holds. The arena grows chunk by chunk.
func WithRBTreeArenaChunkSize[T any](size uint32) RBTreeOpt[T] {
	return func(tree *RBTree[T]) {
		tree.chunkSize = size
	}
}

// WithRBTreeMaxNodes bounds the live nodes. Insertions beyond
// the bound fail with ErrOutOfMemory and leave the tree unchanged.
func WithRBTreeMaxNodes[T any](limit int64) RBTreeOpt[T] {
	return func(tree *RBTree[T]) {
		if limit > 0 {
			tree.maxNodes = limit
		}
	}
}
