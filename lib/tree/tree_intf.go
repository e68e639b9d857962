package tree

import "strconv"

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "RBColor(" + strconv.Itoa(int(c)) + ")"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

// Position is implemented by Iterator and ConstIterator.
// Both of them could be used to erase or as an insertion hint.
type Position[T any] interface {
	position() cursor[T]
}

// SortedContainer is the unique-key ordered container
// contract implemented by RBTree.
type SortedContainer[T any] interface {
	Len() int64
	Empty() bool
	Clear()

	Insert(val T) (Iterator[T], bool, error)
	InsertHint(hint Position[T], val T) (Iterator[T], bool, error)
	Erase(pos Position[T]) (Iterator[T], error)
	EraseValue(val T) int
	EraseRange(first, last Position[T]) (Iterator[T], error)

	Find(val T) Iterator[T]
	Contains(val T) bool
	LowerBound(val T) Iterator[T]
	UpperBound(val T) Iterator[T]
	EqualRange(val T) (Iterator[T], Iterator[T])

	Begin() Iterator[T]
	End() Iterator[T]
	CBegin() ConstIterator[T]
	CEnd() ConstIterator[T]
	RBegin() ReverseIterator[T]
	REnd() ReverseIterator[T]

	Foreach(action func(idx int64, color RBColor, val T) bool)
}

var _ SortedContainer[int] = (*RBTree[int])(nil)
