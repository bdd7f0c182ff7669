package Trees

// remove the first node holding v on the search path from *link. link is updated
// in place when the node it points to goes away. Returns false if v isn't there.
//
// A node with two children takes the value of its in-order predecessor, the
// rightmost node of its left sub-tree, which is then spliced out. If the
// predecessor's value also sits higher up that right spine, promoting it would
// leave an equal value on the left, so the in-order successor is used instead.
// Time: O(D); Space: O(1)
func remove[T Value](link **Node[T], v T) bool {
	for cur := *link; cur != nil; cur = *link {
		if v < cur.Value {
			link = &cur.Left
			continue
		} else if v > cur.Value {
			link = &cur.Right
			continue
		}
		switch {
		case cur.Left == nil && cur.Right == nil:
			*link = nil
		case cur.Right == nil:
			*link = cur.Left
		case cur.Left == nil:
			*link = cur.Right
		default:
			p, dup := &cur.Left, false
			for (*p).Right != nil {
				dup = (*p).Value == (*p).Right.Value
				p = &(*p).Right
			}
			if !dup {
				cur.Value = (*p).Value
				*p = (*p).Left
			} else {
				s := &cur.Right
				for (*s).Left != nil {
					s = &(*s).Left
				}
				cur.Value = (*s).Value
				*s = (*s).Right
			}
		}
		return true
	}
	return false
}

// Delete one occurrence of v from the tree and return the new root. The tree is
// returned unchanged if v isn't in it.
// Time: O(D); Space: O(1)
func Delete[T Value](root *Node[T], v T) *Node[T] {
	remove(&root, v)
	return root
}
