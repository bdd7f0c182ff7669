package Trees

// Minimum value of the tree. Returns ErrEmptyTree if root is nil.
// Time: O(D); Space: O(1)
func Minimum[T Value](root *Node[T]) (T, error) {
	if root == nil {
		return *new(T), ErrEmptyTree
	}
	for root.Left != nil {
		root = root.Left
	}
	return root.Value, nil
}

// Maximum value of the tree. Returns ErrEmptyTree if root is nil.
// Time: O(D); Space: O(1)
func Maximum[T Value](root *Node[T]) (T, error) {
	if root == nil {
		return *new(T), ErrEmptyTree
	}
	for root.Right != nil {
		root = root.Right
	}
	return root.Value, nil
}

// find the first node holding v on the search path, nil if there is none.
func find[T Value](cur *Node[T], v T) *Node[T] {
	for cur != nil {
		if v < cur.Value {
			cur = cur.Left
		} else if v == cur.Value {
			return cur
		} else {
			cur = cur.Right
		}
	}
	return nil
}

// Search reports whether v is in the tree. Only one child is visited per level.
// Time: O(D); Space: O(1)
func Search[T Value](root *Node[T], v T) bool {
	return find(root, v) != nil
}

// bound is a node waiting to be checked, with the range its value must fall in.
type bound[T Value] struct {
	n            *Node[T]
	lo, hi       T //lo <= n.Value < hi
	hasLo, hasHi bool
}

// Corrupt returns whether some node violates the ordering invariant, that is holds a
// value in its left sub-tree that isn't less than it, or a value in its right
// sub-tree that is less than it.
// Time: O(n); Space: O(D)
func Corrupt[T Value](root *Node[T]) bool {
	if root == nil {
		return false
	}
	st := []bound[T]{{n: root}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if (f.hasLo && f.n.Value < f.lo) || (f.hasHi && f.n.Value >= f.hi) {
			return true
		}
		if f.n.Left != nil {
			st = append(st, bound[T]{f.n.Left, f.lo, f.n.Value, f.hasLo, true})
		}
		if f.n.Right != nil {
			st = append(st, bound[T]{f.n.Right, f.n.Value, f.hi, true, f.hasHi})
		}
	}
	return false
}
