// Package Trees is an unbalanced binary search tree over signed integers together
// with the classic algorithms run on one.
//
// The tree is its root: a *Node, with nil standing for the empty tree. Package level
// functions take and return roots, so a caller replaces its root with the result of
// Insert, Delete and the builders. BST wraps a root and a size for callers who want
// a handle that implements Tree.
//
// Every node keeps smaller values on the left and greater or equal values on the
// right, duplicates included. Nothing is rebalanced, so the depth D of a tree is
// between log2(n+1) and n depending on insertion order. The walking operations are
// iterative; Size, Height, MaxSumBST and the balanced builders recurse, the latter
// only to depth log2(n+1).
//
// None of this is safe for concurrent use. A tree needs a single owner, or callers
// must serialize access themselves.
package Trees

// Tree is the interface of a BST handle. Receivers that look a value up return
// an error matching ErrNotFound when there is no such value; the first return
// value is then the zero value of T and shouldn't be used.
type Tree[T Value] interface {
	//Insert v to the Tree. Duplicates are kept.
	Insert(v T)
	//Remove one occurrence of v. Returns false if v wasn't in the Tree.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, error)
	//Maximum element of the tree.
	Maximum() (T, error)
	//KthSmallest element, 1<=k<=Size().
	KthSmallest(k int) (T, error)
	//Size of the tree.
	Size() int
	//Height of the tree, 0 when empty.
	Height() int
	//InOrder, PreOrder and PostOrder return closure iterators, see the
	//package level functions of the same names.
	InOrder() func() (T, bool)
	PreOrder() func() (T, bool)
	PostOrder() func() (T, bool)
	//LevelOrder returns an iterator over the rows of the tree.
	LevelOrder() func() ([]T, bool)
	//HasPairSum reports whether two elements add up to k.
	HasPairSum(k T) bool
	//LCA of the nodes holding p and q.
	LCA(p, q T) (*Node[T], error)
	//MaxSumBST sum among the sub-trees that are strict BSTs.
	MaxSumBST() T
	//Corrupt returns whether the ordering invariant is broken somewhere.
	Corrupt() bool
}
