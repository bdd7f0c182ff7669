package Trees

// info summarizes one sub-tree for MaxSumBST. min and max are meaningless when
// empty is true.
type info[T Value] struct {
	min, max, sum T
	empty, isBST  bool
}

func maxSumBST[T Value](n *Node[T], best *T) info[T] {
	if n == nil {
		return info[T]{empty: true, isBST: true}
	}
	l, r := maxSumBST(n.Left, best), maxSumBST(n.Right, best)
	cur := info[T]{min: n.Value, max: n.Value, sum: l.sum + r.sum + n.Value}
	if !l.empty {
		cur.min, cur.max = min(cur.min, l.min), max(cur.max, l.max)
	}
	if !r.empty {
		cur.min, cur.max = min(cur.min, r.min), max(cur.max, r.max)
	}
	cur.isBST = l.isBST && r.isBST && (l.empty || l.max < n.Value) && (r.empty || n.Value < r.min)
	if cur.isBST {
		*best = max(*best, cur.sum)
	}
	return cur
}

// MaxSumBST finds the largest value sum among the sub-trees of an arbitrary binary
// tree that are binary search trees with strictly distinct ordering: every left
// value < node < every right value. A sub-tree is a node with all of its
// descendants. The empty sub-tree counts with sum 0, so the result is never
// negative.
// Time: O(n); Space: O(D)
func MaxSumBST[T Value](root *Node[T]) T {
	var best T
	maxSumBST(root, &best)
	return best
}
