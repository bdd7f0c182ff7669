package Trees

import "fmt"

// LCA returns the lowest node that has both p and q in its sub-tree, where a node
// counts as being in its own sub-tree. Both values must be in the tree, otherwise
// an error matching ErrNotFound is returned.
// Time: O(D); Space: O(1)
func LCA[T Value](root *Node[T], p, q T) (*Node[T], error) {
	for _, v := range [...]T{p, q} {
		if !Search(root, v) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, v)
		}
	}
	cur := root
	for {
		if p < cur.Value && q < cur.Value {
			cur = cur.Left
		} else if p > cur.Value && q > cur.Value {
			cur = cur.Right
		} else {
			return cur, nil
		}
	}
}
