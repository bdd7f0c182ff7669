package Trees

import "golang.org/x/exp/constraints"

// Value is the set of types a Node can hold. The derived algorithms add values
// together, so only signed integers are allowed.
type Value interface {
	constraints.Signed
}

// Node of a binary search tree. A nil *Node is the empty tree, so every function
// taking a *Node accepts nil.
// Fields are exported so that arbitrary binary trees can be assembled by hand, for
// example as input to MaxSumBST. Functions other than MaxSumBST and Corrupt assume
// the ordering invariant: Left holds values < Value, Right holds values >= Value.
type Node[T Value] struct {
	Value       T
	Left, Right *Node[T]
}

// ListNode is one cell of a singly linked sequence.
type ListNode[T Value] struct {
	Value T
	Next  *ListNode[T]
}

// NewList links values in order and returns the head, nil for no values.
func NewList[T Value](values ...T) *ListNode[T] {
	var head *ListNode[T]
	for i := len(values) - 1; i >= 0; i-- {
		head = &ListNode[T]{values[i], head}
	}
	return head
}

// Len of the list starting at u.
func (u *ListNode[T]) Len() (n int) {
	for ; u != nil; u = u.Next {
		n++
	}
	return
}

// Size counts the nodes of the tree rooted at n.
// Time: O(n); Space: O(D)
func Size[T Value](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return Size(n.Left) + Size(n.Right) + 1
}

// Height is the number of nodes on the longest root to leaf path; 0 for nil.
// Time: O(n); Space: O(D)
func Height[T Value](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return max(Height(n.Left), Height(n.Right)) + 1
}
