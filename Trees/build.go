package Trees

import (
	"fmt"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// Insert v to the tree rooted at root and return the root of the resulting tree,
// which is a new single node when root is nil. Values less than a node go left,
// everything else, duplicates included, goes right. No rebalancing is done.
// Time: O(D); Space: O(1)
func Insert[T Value](root *Node[T], v T) *Node[T] {
	link := &root
	for cur := *link; cur != nil; cur = *link {
		if v < cur.Value {
			link = &cur.Left
		} else {
			link = &cur.Right
		}
	}
	*link = &Node[T]{Value: v}
	return root
}

// FromValues inserts values one at a time, in the given order, into an empty tree.
func FromValues[T Value](values ...T) (root *Node[T]) {
	for _, v := range values {
		root = Insert(root, v)
	}
	return
}

// FromSorted builds a tree of minimal height whose in-order traversal is values.
// The root of every range is its lower middle element. values must be sorted in
// ascending order; duplicates are only safe when FromSortedChecked accepts them.
// Time: O(n).
func FromSorted[T Value](values []T) *Node[T] {
	var build func([]T) *Node[T]
	build = func(s []T) *Node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := (len(s) - 1) >> 1
		return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	return build(values)
}

// FromSortedChecked is FromSorted that verifies the result will satisfy the ordering
// invariant. It fails with *InvalidSliceError if values is not ascending, or if a
// chosen root has an equal value right before it, which would put that duplicate
// into the root's left sub-tree.
func FromSortedChecked[T Value](values []T) (*Node[T], error) {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return nil, &InvalidSliceError{i, "not in ascending order"}
		}
	}
	var build func(lo, hi int) (*Node[T], error)
	build = func(lo, hi int) (*Node[T], error) {
		if lo >= hi {
			return nil, nil
		}
		mid := lo + (hi-lo-1)>>1
		if mid > lo && values[mid-1] == values[mid] {
			return nil, &InvalidSliceError{mid, "duplicate would be placed in a left sub-tree"}
		}
		l, err := build(lo, mid)
		if err != nil {
			return nil, err
		}
		r, err := build(mid+1, hi)
		if err != nil {
			return nil, err
		}
		return &Node[T]{values[mid], l, r}, nil
	}
	return build(0, len(values))
}

// fromCursor builds a balanced tree of n values pulled from next in in-order
// position: the left half is built first, consuming its values, then the root takes
// one value, then the right half takes the rest. The left half gets (n-1)/2 values,
// the same split FromSorted makes, so both produce the same shape.
func fromCursor[T Value](n int, next func() (T, error)) (*Node[T], error) {
	var build func(n int) (*Node[T], error)
	build = func(n int) (*Node[T], error) {
		if n <= 0 {
			return nil, nil
		}
		ln := (n - 1) >> 1
		left, err := build(ln)
		if err != nil {
			return nil, err
		}
		v, err := next()
		if err != nil {
			return nil, err
		}
		root := &Node[T]{Value: v, Left: left}
		if root.Right, err = build(n - ln - 1); err != nil {
			return nil, err
		}
		return root, nil
	}
	return build(n)
}

// FromSortedLinked is FromSorted for a linked sequence. It walks the list once to
// count it and once more to build, never copying it into a slice.
// Time: O(n); Space: O(log n)
func FromSortedLinked[T Value](head *ListNode[T]) *Node[T] {
	cur := head
	root, _ := fromCursor(head.Len(), func() (v T, _ error) {
		v, cur = cur.Value, cur.Next
		return
	})
	return root
}

// FromSortedList is FromSortedLinked over a gods singly linked list, using the list's
// iterator as the cursor. Every element must be of type T, otherwise the build stops
// with *InvalidSliceError. list must not be nil.
func FromSortedList[T Value](list *singlylinkedlist.List) (*Node[T], error) {
	it := list.Iterator()
	return fromCursor(list.Size(), func() (T, error) {
		it.Next()
		v, ok := it.Value().(T)
		if !ok {
			return v, &InvalidSliceError{it.Index(), fmt.Sprintf("element %v is a %T", it.Value(), it.Value())}
		}
		return v, nil
	})
}
