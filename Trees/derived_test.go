package Trees

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPairSum(t *testing.T) {
	root := FromValues(2, 1, 3)
	assert.True(t, HasPairSum(root, 3))
	assert.True(t, HasPairSum(root, 5))
	assert.False(t, HasPairSum(root, 7))
	// a single node can't pair with itself
	assert.False(t, HasPairSum(root, 6))
	assert.False(t, HasPairSum(FromValues(3), 6))
	assert.False(t, HasPairSum[int](nil, 0))
	// but two equal values can
	assert.True(t, HasPairSum(FromValues(3, 3), 6))
	assert.True(t, HasPairSum(FromValues(-4, 0, 9), 5))
}

func TestHasPairSum_Random(t *testing.T) {
	for _i := 0; _i < 20; _i++ {
		a := randValues(rg.Intn(60)+1, 200)
		root := FromValues(a...)
		for k := -200; k <= 200; k += 7 {
			want := false
			for i := range a {
				for j := i + 1; j < len(a); j++ {
					want = want || a[i]+a[j] == k
				}
			}
			require.Equal(t, want, HasPairSum(root, k), "values %v k %d", a, k)
		}
	}
}

func TestToGreaterSum(t *testing.T) {
	root := FromValues(4, 1, 6, 3, 5, 7, 8)
	shape := FromValues(4, 1, 6, 3, 5, 7, 8)
	sorted := Collect(InOrder(root))
	assert.Same(t, root, ToGreaterSum(root))
	assert.True(t, sameShape(shape, root))

	want := slices.Clone(sorted)
	for i := range want {
		want[i] = 0
		for _, v := range sorted[i:] {
			want[i] += v
		}
	}
	assert.Equal(t, want, Collect(InOrder(root)))
	assert.Equal(t, []int{34, 33, 30, 26, 21, 15, 8}, want)
	assert.Equal(t, 26, root.Value)
}

func TestToGreaterSum_Trivial(t *testing.T) {
	assert.Nil(t, ToGreaterSum[int](nil))
	root := FromValues(-3)
	ToGreaterSum(root)
	assert.Equal(t, -3, root.Value)

	root = FromValues(2, 2, 1)
	ToGreaterSum(root)
	assert.Equal(t, []int{5, 4, 2}, Collect(InOrder(root)))
}

func TestKthSmallest(t *testing.T) {
	root := FromValues(5, 3, 6, 2, 4)
	v, err := KthSmallest(root, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	for k, want := range []int{2, 3, 4, 5, 6} {
		v, err := KthSmallest(root, k+1)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	for _, k := range []int{-1, 0, 6, 100} {
		_, err := KthSmallest(root, k)
		require.ErrorIs(t, err, ErrNotFound)
		var re *RankError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, k, re.K)
		assert.Equal(t, 5, re.Size)
	}
	_, err = KthSmallest[int](nil, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestKthSmallest_Random(t *testing.T) {
	a := randValues(tAddN, tAddValRange)
	root := FromValues(a...)
	slices.Sort(a)
	for _i := 0; _i < 200; _i++ {
		k := rg.Intn(len(a)) + 1
		v, err := KthSmallest(root, k)
		require.NoError(t, err)
		require.Equal(t, a[k-1], v)
	}
}

func TestLCA(t *testing.T) {
	root := FromValues(6, 2, 8, 0, 4, 7, 9, 3, 5)
	for _, c := range []struct{ p, q, want int }{
		{2, 8, 6},
		{2, 4, 2},
		{4, 2, 2},
		{3, 5, 4},
		{0, 5, 2},
		{7, 9, 8},
		{3, 9, 6},
		{6, 6, 6},
		{5, 5, 5},
	} {
		n, err := LCA(root, c.p, c.q)
		require.NoError(t, err)
		assert.Equal(t, c.want, n.Value, "lca(%d, %d)", c.p, c.q)
	}

	_, err := LCA(root, 2, 10)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = LCA(root, 1, 4)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = LCA[int](nil, 1, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMaxSumBST(t *testing.T) {
	assert.Equal(t, 0, MaxSumBST[int](nil))
	// a whole valid tree is its own best candidate
	assert.Equal(t, 20, MaxSumBST(FromSorted([]int{2, 3, 4, 5, 6})))

	// 1 on the left is fine, but 20 under 4 breaks the root's ordering:
	//       10
	//      /  \
	//     4    11
	//    / \
	//   1   20
	bad := &Node[int]{Value: 10,
		Left: &Node[int]{Value: 4,
			Left:  &Node[int]{Value: 1},
			Right: &Node[int]{Value: 20},
		},
		Right: &Node[int]{Value: 11},
	}
	// {4,1,20} is a BST of sum 25; the whole tree would be 46
	assert.Equal(t, 25, MaxSumBST(bad))

	// LeetCode style example
	//        1
	//      /   \
	//     4     3
	//    / \   / \
	//   2   4 2   5
	//            / \
	//           4   6
	lc := &Node[int]{Value: 1,
		Left: &Node[int]{Value: 4, Left: &Node[int]{Value: 2}, Right: &Node[int]{Value: 4}},
		Right: &Node[int]{Value: 3,
			Left:  &Node[int]{Value: 2},
			Right: &Node[int]{Value: 5, Left: &Node[int]{Value: 4}, Right: &Node[int]{Value: 6}},
		},
	}
	assert.Equal(t, 20, MaxSumBST(lc))

	// all negative: the empty sub-tree wins
	assert.Equal(t, 0, MaxSumBST(FromValues(-4, -8, -1)))
	// duplicates make a sub-tree non strict
	assert.Equal(t, 5, MaxSumBST(&Node[int]{Value: 5, Right: &Node[int]{Value: 5}}))
}

func TestHasPairSum_Wraps(t *testing.T) {
	root := FromValues[int8](127, 1, 0)
	// 127+1 wraps to -128
	assert.True(t, HasPairSum(root, int8(-128)))
	assert.False(t, HasPairSum(root, int8(126)))
}
