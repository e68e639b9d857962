package tree

import (
	"math"

	"go.uber.org/zap"
)

// handle indexes a node record inside the arena.
// The zero handle is the sentinel.
type handle uint32

const (
	sentinel               handle = 0
	maxHandle              handle = math.MaxUint32
	defaultArenaChunkSize         = 512
)

// References:
// https://github.com/ortuman/nuke
// https://github.com/dgraph-io/badger/blob/master/skl/arena.go
//
// Node records are carved from fixed size chunks. A chunk is
// never reallocated once created, so a *rbNode obtained from
// the arena stays valid until the arena itself is dropped.
// Released slots go to the recycled stack and are reused
// before the arena grows.
type nodeArena[T any] struct {
	chunks    [][]rbNode[T]
	recycled  []handle
	next      handle // next never used slot
	chunkSize uint32
	limit     int64 // max live nodes, 0 means unlimited
	live      int64
	logger    *zap.Logger
}

func newNodeArena[T any](chunkSize uint32, limit int64, logger *zap.Logger) *nodeArena[T] {
	if chunkSize == 0 {
		chunkSize = defaultArenaChunkSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	arena := &nodeArena[T]{
		chunks:    make([][]rbNode[T], 0, 8),
		recycled:  make([]handle, 0, 16),
		chunkSize: chunkSize,
		limit:     limit,
		logger:    logger,
	}
	arena.chunks = append(arena.chunks, make([]rbNode[T], chunkSize))

	// The sentinel is black since birth and never recolored.
	s := &arena.chunks[0][0]
	s.parent, s.left, s.right = sentinel, sentinel, sentinel
	s.color = Black
	arena.next = 1
	return arena
}

func (arena *nodeArena[T]) node(h handle) *rbNode[T] {
	return &arena.chunks[uint32(h)/arena.chunkSize][uint32(h)%arena.chunkSize]
}

func (arena *nodeArena[T]) capacity() int64 {
	return int64(len(arena.chunks)) * int64(arena.chunkSize)
}

// create allocates a red node holding val with all links
// pointing at the sentinel. No existing link is touched, so
// a failed allocation leaves the tree as it was.
func (arena *nodeArena[T]) create(val T) (handle, error) {
	if arena.limit > 0 && arena.live >= arena.limit {
		arena.logger.Warn("[rbtree] node limit reached",
			zap.Int64("limit", arena.limit),
		)
		return sentinel, ErrOutOfMemory
	}

	var h handle
	if l := len(arena.recycled); l > 0 {
		h = arena.recycled[l-1]
		arena.recycled = arena.recycled[:l-1]
	} else {
		if arena.next == maxHandle {
			arena.logger.Warn("[rbtree] node handles exhausted")
			return sentinel, ErrOutOfMemory
		}
		if int64(arena.next) >= arena.capacity() {
			arena.chunks = append(arena.chunks, make([]rbNode[T], arena.chunkSize))
			arena.logger.Debug("[rbtree] arena grows",
				zap.Int("chunks", len(arena.chunks)),
				zap.Uint32("chunkSize", arena.chunkSize),
				zap.Int64("live", arena.live),
			)
		}
		h = arena.next
		arena.next++
	}

	n := arena.node(h)
	n.val = val
	n.parent, n.left, n.right = sentinel, sentinel, sentinel
	n.color = Red
	n.live = true
	arena.live++
	return h, nil
}

// release drops the value and bumps the slot generation, any
// iterator still referring to the slot becomes detectably stale.
func (arena *nodeArena[T]) release(h handle) {
	if h == sentinel {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] release the sentinel")
	}
	n := arena.node(h)
	var zero T
	n.val = zero
	n.parent, n.left, n.right = sentinel, sentinel, sentinel
	n.color = Black
	n.live = false
	n.gen++
	arena.recycled = append(arena.recycled, h)
	arena.live--
}

// alive reports whether h still refers to the node generation
// gen. The sentinel is always alive.
func (arena *nodeArena[T]) alive(h handle, gen uint32) bool {
	if h == sentinel {
		return true
	}
	if h >= arena.next {
		return false
	}
	n := arena.node(h)
	return n.live && n.gen == gen
}

func (arena *nodeArena[T]) clone() *nodeArena[T] {
	cp := &nodeArena[T]{
		chunks:    make([][]rbNode[T], len(arena.chunks), cap(arena.chunks)),
		recycled:  make([]handle, len(arena.recycled), cap(arena.recycled)),
		next:      arena.next,
		chunkSize: arena.chunkSize,
		limit:     arena.limit,
		live:      arena.live,
		logger:    arena.logger,
	}
	for i, chunk := range arena.chunks {
		cp.chunks[i] = make([]rbNode[T], len(chunk))
		copy(cp.chunks[i], chunk)
	}
	copy(cp.recycled, arena.recycled)
	return cp
}

// releaseAll releases every live node, iterators of all of
// them become stale. Chunks are kept for reuse.
func (arena *nodeArena[T]) releaseAll() {
	for h := arena.next - 1; h > sentinel; h-- {
		if arena.node(h).live {
			arena.release(h)
		}
	}
	s := arena.node(sentinel)
	s.left, s.right = sentinel, sentinel
}
