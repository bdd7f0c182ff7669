package Trees

// HasPairSum reports whether two distinct nodes of the tree hold values adding up
// to k. The in-order values are scanned from both ends toward the middle.
// Sums are computed in T and wrap around on overflow like any integer addition.
// Time: O(n); Space: O(n)
func HasPairSum[T Value](root *Node[T], k T) bool {
	vs := Collect(InOrder(root))
	for s, e := 0, len(vs)-1; s < e; {
		if sum := vs[s] + vs[e]; sum == k {
			return true
		} else if sum > k {
			e--
		} else {
			s++
		}
	}
	return false
}
