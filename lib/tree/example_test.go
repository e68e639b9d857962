package tree_test

import (
	"errors"
	"fmt"

	"github.com/benz9527/xrbtree/lib/tree"
)

func ExampleRBTree() {
	rb := tree.NewRBTree[int]()
	for _, v := range []int{5, 1, 4, 2, 3} {
		_, _, _ = rb.Insert(v)
	}
	fmt.Println(rb.Values())

	lb := rb.LowerBound(3)
	next, _ := rb.Erase(lb)
	fmt.Println(next.Value(), rb.Len())

	for it := rb.RBegin(); it.Valid(); it.Next() {
		fmt.Print(it.Value())
	}
	fmt.Println()
	// Output:
	// [1 2 3 4 5]
	// 4 4
	// 5421
}

func ExampleRBTree_InsertHint() {
	rb := tree.NewRBTree[string](tree.WithRBTreeDesc[string]())
	for _, v := range []string{"d", "c", "b", "a"} {
		_, _, _ = rb.InsertHint(rb.End(), v)
	}
	fmt.Println(rb.Values())
	// Output:
	// [d c b a]
}

func ExamplePreconditionError() {
	rb := tree.NewRBTree[int]()
	it, _, _ := rb.Insert(1)
	rb.EraseValue(1)

	_, err := rb.Erase(it)
	var perr *tree.PreconditionError
	fmt.Println(errors.As(err, &perr), errors.Is(err, tree.ErrIteratorInvalidated))
	fmt.Println(err)
	// Output:
	// true true
	// Erase: [rbtree] iterator refers to an erased node
}
