package main

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"
)

func joinInts(vs []int) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, " ")
}

// printTree writes the four traversals, one level order row per line, and a
// drawing of the tree.
func printTree(cctx *cli.Context, root *Trees.Node[int]) {
	out := cctx.App.Writer
	fmt.Fprintf(out, "preorder:  %s\n", joinInts(Trees.Collect(Trees.PreOrder(root))))
	fmt.Fprintf(out, "inorder:   %s\n", joinInts(Trees.Collect(Trees.InOrder(root))))
	fmt.Fprintf(out, "postorder: %s\n", joinInts(Trees.Collect(Trees.PostOrder(root))))
	fmt.Fprintln(out, "levels:")
	next := Trees.LevelOrder(root)
	for row, ok := next(); ok; row, ok = next() {
		fmt.Fprintf(out, "  %s\n", joinInts(row))
	}
	fmt.Fprint(out, render(root))
}

// render draws the tree with every child labelled by its side. A node with only
// one child shows the missing side as "·".
func render(root *Trees.Node[int]) string {
	if root == nil {
		return "(empty)\n"
	}
	tree := treeprint.NewWithRoot(root.Value)
	addChildren(tree, root)
	return tree.String()
}

func addChildren(tree treeprint.Tree, n *Trees.Node[int]) {
	if n.Left == nil && n.Right == nil {
		return
	}
	for _, c := range [...]struct {
		side string
		n    *Trees.Node[int]
	}{{"L", n.Left}, {"R", n.Right}} {
		if c.n == nil {
			tree.AddNode(c.side + " ·")
			continue
		}
		addChildren(tree.AddBranch(fmt.Sprintf("%s %d", c.side, c.n.Value)), c.n)
	}
}
