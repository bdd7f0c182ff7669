package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/g-m-twostay/go-bst/Queues"
)

// The traversals below return closure functions acting like iterators. Calling
// the closure is like calling "Next()": val, valid = f(). val is meaningful only if
// valid is true, and once valid is false it stays false. Every call to a traversal
// function starts a fresh walk. They use explicit stacks, so the tree's height does
// not grow the goroutine stack. The tree must not be modified while a walk is in
// progress.

// Collect drains next into a slice.
func Collect[T any](next func() (T, bool)) []T {
	var r []T
	for v, ok := next(); ok; v, ok = next() {
		r = append(r, v)
	}
	return r
}

// PreOrder walks node, then left sub-tree, then right sub-tree.
// Time: f(): O(1); Space: O(D)
func PreOrder[T Value](root *Node[T]) func() (T, bool) {
	st := arraystack.New()
	if root != nil {
		st.Push(root)
	}
	return func() (v T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		n := top.(*Node[T])
		if n.Right != nil {
			st.Push(n.Right)
		}
		if n.Left != nil {
			st.Push(n.Left)
		}
		return n.Value, true
	}
}

// inOrderNodes is InOrder yielding the nodes themselves, nil when exhausted.
func inOrderNodes[T Value](root *Node[T]) func() *Node[T] {
	st := arraystack.New()
	pushLeft := func(n *Node[T]) {
		for ; n != nil; n = n.Left {
			st.Push(n)
		}
	}
	pushLeft(root)
	return func() *Node[T] {
		top, ok := st.Pop()
		if !ok {
			return nil
		}
		n := top.(*Node[T])
		pushLeft(n.Right)
		return n
	}
}

// InOrder walks left sub-tree, then node, then right sub-tree. On a valid tree the
// values come out in ascending order.
// Time: f(): amortized O(1); Space: O(D)
func InOrder[T Value](root *Node[T]) func() (T, bool) {
	next := inOrderNodes(root)
	return func() (v T, has bool) {
		if n := next(); n != nil {
			return n.Value, true
		}
		return
	}
}

// PostOrder walks left sub-tree, then right sub-tree, then node.
// Time: f(): amortized O(1); Space: O(D)
func PostOrder[T Value](root *Node[T]) func() (T, bool) {
	st := arraystack.New()
	cur, last := root, (*Node[T])(nil)
	return func() (v T, has bool) {
		for {
			for ; cur != nil; cur = cur.Left {
				st.Push(cur)
			}
			top, ok := st.Peek()
			if !ok {
				return
			}
			n := top.(*Node[T])
			if n.Right != nil && n.Right != last {
				cur = n.Right
				continue
			}
			st.Pop()
			last = n
			return n.Value, true
		}
	}
}

// LevelOrder walks the tree breadth first. Each call returns the values of one
// depth, left to right, starting with the root's.
// Time: f(): O(width of the level); Space: O(width of the widest level)
func LevelOrder[T Value](root *Node[T]) func() ([]T, bool) {
	q := Queues.MakeArrayQueue[*Node[T]](4)
	if root != nil {
		q.Push(root)
	}
	return func() ([]T, bool) {
		n := q.Size()
		if n == 0 {
			return nil, false
		}
		row := make([]T, 0, n)
		for ; n > 0; n-- {
			cur, _ := q.Pop()
			row = append(row, cur.Value)
			if cur.Left != nil {
				q.Push(cur.Left)
			}
			if cur.Right != nil {
				q.Push(cur.Right)
			}
		}
		return row, true
	}
}
