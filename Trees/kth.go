package Trees

// KthSmallest returns the k-th value of the in-order sequence, counting from 1.
// The walk stops as soon as the k-th node is reached. A k outside [1, Size(root)]
// gives a *RankError, which matches ErrNotFound under errors.Is.
// Time: O(D+k); Space: O(D)
func KthSmallest[T Value](root *Node[T], k int) (T, error) {
	if k >= 1 {
		next := inOrderNodes(root)
		for i, n := 1, next(); n != nil; i, n = i+1, next() {
			if i == k {
				return n.Value, nil
			}
		}
	}
	return *new(T), &RankError{k, Size(root)}
}
