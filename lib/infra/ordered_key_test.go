package infra

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedLess(t *testing.T) {
	less := OrderedLess[int]()
	require.True(t, less(1, 2))
	require.False(t, less(2, 1))
	require.False(t, less(2, 2))
	require.True(t, less.Equivalent(2, 2))
	require.False(t, less.Equivalent(1, 2))

	strLess := OrderedLess[string]()
	require.True(t, strLess("a", "b"))
	require.False(t, strLess("b", "a"))
}

func TestComparatorLess(t *testing.T) {
	var cmp OrderedKeyComparator[uint64] = func(i, j uint64) int64 {
		if i == j {
			return 0
		} else if i < j {
			return -1
		}
		return 1
	}
	less := ComparatorLess(cmp)
	require.True(t, less(1, 2))
	require.False(t, less(2, 1))
	require.False(t, less(3, 3))
}

func TestLessReverse(t *testing.T) {
	desc := OrderedLess[float64]().Reverse()
	arr := []float64{1.5, -2, 3.25, 0}
	sort.Slice(arr, func(i, j int) bool {
		return desc(arr[i], arr[j])
	})
	require.Equal(t, []float64{3.25, 1.5, 0, -2}, arr)
	require.True(t, desc.Equivalent(0, 0))
}
