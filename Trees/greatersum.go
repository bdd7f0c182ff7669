package Trees

// ToGreaterSum replaces the value of every node with the sum of all values at or
// after it in in-order position, i.e. itself plus every value greater than it and
// every duplicate stored after it. The shape of the tree is kept. Returns root.
//
// The result is an ordinary binary tree: with negative values it generally violates
// the ordering invariant, and with non-negative values the order is reversed.
// Sums are computed in T and wrap around on overflow.
// Time: O(n); Space: O(n)
func ToGreaterSum[T Value](root *Node[T]) *Node[T] {
	if root == nil || (root.Left == nil && root.Right == nil) {
		return root
	}
	vs := Collect(InOrder(root))
	for i := len(vs) - 2; i >= 0; i-- {
		vs[i] += vs[i+1]
	}
	next := inOrderNodes(root)
	for _, v := range vs {
		next().Value = v
	}
	return root
}
