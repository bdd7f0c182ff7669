package Trees

// BST is a handle on a tree that keeps track of its size.
// The zero value is an empty tree ready to use.
type BST[T Value] struct {
	root *Node[T]
	size int
}

var _ Tree[int] = (*BST[int])(nil)

// New returns an empty BST.
func New[T Value]() *BST[T] {
	return &BST[T]{}
}

// Wrap takes ownership of root. root is used as is; see Corrupt for checking it.
// Time: O(n)
func Wrap[T Value](root *Node[T]) *BST[T] {
	return &BST[T]{root, Size(root)}
}

// Root of the tree. The BST keeps using the returned nodes, so modifying them
// affects u.
func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// Clear the tree.
func (u *BST[T]) Clear() {
	u.root, u.size = nil, 0
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *BST[T]) Insert(v T) {
	u.root = Insert(u.root, v)
	u.size++
}

// Remove [Tree.Remove]
// Time: O(D); Space: O(1)
func (u *BST[T]) Remove(v T) bool {
	if remove(&u.root, v) {
		u.size--
		return true
	}
	return false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return Search(u.root, v)
}

func (u *BST[T]) Minimum() (T, error) {
	return Minimum(u.root)
}

func (u *BST[T]) Maximum() (T, error) {
	return Maximum(u.root)
}

// KthSmallest [Tree.KthSmallest]. Out of range k fails without walking the tree.
// Time: O(D+k); Space: O(D)
func (u *BST[T]) KthSmallest(k int) (T, error) {
	if k < 1 || k > u.size {
		return *new(T), &RankError{k, u.size}
	}
	return KthSmallest(u.root, k)
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() int {
	return u.size
}

func (u *BST[T]) Height() int {
	return Height(u.root)
}

func (u *BST[T]) InOrder() func() (T, bool) {
	return InOrder(u.root)
}

func (u *BST[T]) PreOrder() func() (T, bool) {
	return PreOrder(u.root)
}

func (u *BST[T]) PostOrder() func() (T, bool) {
	return PostOrder(u.root)
}

func (u *BST[T]) LevelOrder() func() ([]T, bool) {
	return LevelOrder(u.root)
}

func (u *BST[T]) HasPairSum(k T) bool {
	return HasPairSum(u.root, k)
}

func (u *BST[T]) LCA(p, q T) (*Node[T], error) {
	return LCA(u.root, p, q)
}

func (u *BST[T]) MaxSumBST() T {
	return MaxSumBST(u.root)
}

func (u *BST[T]) Corrupt() bool {
	return Corrupt(u.root)
}

// ToGreaterSum rewrites the tree in place, see the package level ToGreaterSum.
// Afterwards u no longer satisfies the ordering invariant in general and must not be
// searched or modified through its ordered operations; only traversals stay
// meaningful.
func (u *BST[T]) ToGreaterSum() {
	ToGreaterSum(u.root)
}
