package infra

import "golang.org/x/exp/constraints"

type (
	Signed   = constraints.Signed
	Unsigned = constraints.Unsigned
	Integer  = constraints.Integer
	Float    = constraints.Float
)

// OrderedKey
// byte => ~uint8
// NaN breaks the strict weak order, keep it out of the trees.
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyComparator
// Assume i is the new key.
//  1. i == j (i-j == 0, return 0)
//  2. i > j (i-j > 0, return 1), turn to right part.
//  3. i < j (i-j < 0, return -1), turn to left part.
type OrderedKeyComparator[K OrderedKey] func(i, j K) int64

// Less is a strict weak order over T.
// It must stay consistent for the whole lifetime of the
// container that uses it.
type Less[T any] func(a, b T) bool

func OrderedLess[K OrderedKey]() Less[K] {
	return func(a, b K) bool {
		return a < b
	}
}

// ComparatorLess turns a three-way comparator into a Less.
func ComparatorLess[K OrderedKey](cmp OrderedKeyComparator[K]) Less[K] {
	return func(a, b K) bool {
		return cmp(a, b) < 0
	}
}

// Reverse flips the order, the greatest element comes first.
func (less Less[T]) Reverse() Less[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// Equivalent reports !(a < b) && !(b < a).
func (less Less[T]) Equivalent(a, b T) bool {
	return !less(a, b) && !less(b, a)
}
