package tree

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	RBTreeStatsName = "xrbtree/rbtree"
)

const (
	rejectOutOfMemory  = "out_of_memory"
	rejectPrecondition = "precondition"
)

// rbtreeStats records the tree activity by synchronous
// instruments only, the tree itself is never read from the
// collection goroutine.
type rbtreeStats struct {
	nodeCount     metric.Int64UpDownCounter
	arenaCapacity metric.Int64UpDownCounter
	insertedCount metric.Int64Counter
	erasedCount   metric.Int64Counter
	rejectedCount metric.Int64Counter
	hintFallbacks metric.Int64Counter
}

func (stats *rbtreeStats) RecordNodeCount(delta int64) {
	if stats == nil || delta == 0 {
		return
	}
	stats.nodeCount.Add(context.Background(), delta)
}

func (stats *rbtreeStats) RecordArenaCapacity(delta int64) {
	if stats == nil || delta == 0 {
		return
	}
	stats.arenaCapacity.Add(context.Background(), delta)
}

func (stats *rbtreeStats) IncreaseInsertedCount() {
	if stats == nil {
		return
	}
	stats.insertedCount.Add(context.Background(), 1)
}

func (stats *rbtreeStats) IncreaseErasedCount(n int64) {
	if stats == nil || n <= 0 {
		return
	}
	stats.erasedCount.Add(context.Background(), n)
}

func (stats *rbtreeStats) IncreaseRejectedCount(reason string) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("rbtree.reject.reason", reason),
	)
	stats.rejectedCount.Add(context.Background(), 1, metric.WithAttributeSet(as))
}

func (stats *rbtreeStats) IncreaseHintFallbackCount() {
	if stats == nil {
		return
	}
	stats.hintFallbacks.Add(context.Background(), 1)
}

// WithRBTreeStats enables the otel metrics of the tree. A nil
// provider means the global one.
func WithRBTreeStats[T any](name string, mp metric.MeterProvider) RBTreeOpt[T] {
	return func(tree *RBTree[T]) {
		tree.stats = newRBTreeStats(name, mp)
	}
}

func newRBTreeStats(name string, mp metric.MeterProvider) *rbtreeStats {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	if name == "" {
		name = "default"
	}
	meter := mp.Meter(fmt.Sprintf("%s/%s", RBTreeStatsName, name))
	return &rbtreeStats{
		nodeCount: lo.Must[metric.Int64UpDownCounter](meter.
			Int64UpDownCounter(
				"rbtree.node.count",
				metric.WithDescription("The number of elements in the tree."),
			),
		),
		arenaCapacity: lo.Must[metric.Int64UpDownCounter](meter.
			Int64UpDownCounter(
				"rbtree.arena.capacity",
				metric.WithDescription("The number of node records allocated by the arena."),
			),
		),
		insertedCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.inserted.count",
				metric.WithDescription("The number of inserted elements."),
			),
		),
		erasedCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.erased.count",
				metric.WithDescription("The number of erased elements."),
			),
		),
		rejectedCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.rejected.count",
				metric.WithDescription("The number of rejected operations."),
			),
		),
		hintFallbacks: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.hint.fallback.count",
				metric.WithDescription("The number of hinted insertions that fell back to a full descent."),
			),
		),
	}
}
