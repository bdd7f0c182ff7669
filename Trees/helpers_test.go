package Trees

import (
	"math/rand"
	"testing"

	"github.com/petar/GoLLRB/llrb"
)

var rg = rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 1000 //small enough to produce plenty of duplicates
)

func randValues(n, valRange int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rg.Intn(valRange) - valRange/2
	}
	return a
}

// multiset mirrors a tree's content in an LLRB that keeps duplicates.
func multiset(values ...int) *llrb.LLRB {
	o := llrb.New()
	for _, v := range values {
		o.InsertNoReplace(llrb.Int(v))
	}
	return o
}

func multisetValues(o *llrb.LLRB) []int {
	var r []int
	if o.Len() == 0 {
		return r
	}
	o.AscendGreaterOrEqual(o.Min(), func(i llrb.Item) bool {
		r = append(r, int(i.(llrb.Int)))
		return true
	})
	return r
}

func preOrderRec(n *Node[int], r []int) []int {
	if n == nil {
		return r
	}
	r = append(r, n.Value)
	r = preOrderRec(n.Left, r)
	return preOrderRec(n.Right, r)
}

func inOrderRec(n *Node[int], r []int) []int {
	if n == nil {
		return r
	}
	r = inOrderRec(n.Left, r)
	r = append(r, n.Value)
	return inOrderRec(n.Right, r)
}

func postOrderRec(n *Node[int], r []int) []int {
	if n == nil {
		return r
	}
	r = postOrderRec(n.Left, r)
	r = postOrderRec(n.Right, r)
	return append(r, n.Value)
}

// sameShape reports whether a and b have nodes in the same places.
func sameShape(a, b *Node[int]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return sameShape(a.Left, b.Left) && sameShape(a.Right, b.Right)
}

func requireValid(t *testing.T, root *Node[int]) {
	t.Helper()
	if Corrupt(root) {
		t.Fatalf("tree violates the ordering invariant: %v", Collect(InOrder(root)))
	}
}
