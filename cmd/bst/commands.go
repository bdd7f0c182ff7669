package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli/v2"
)

var cmdShow = &cli.Command{
	Name:   "show",
	Usage:  "print the traversals and a drawing of the tree",
	Action: runShow,
}

var cmdQuery = &cli.Command{
	Name:  "query",
	Usage: "print the minimum and maximum, and look values up",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:    "search",
			Aliases: []string{"s"},
			Usage:   "value to look up, may be repeated",
		},
	},
	Action: runQuery,
}

var cmdDelete = &cli.Command{
	Name:            "delete",
	Aliases:         []string{"rm"},
	Usage:           "delete values, one occurrence per argument, and show the result",
	ArgsUsage:       "<value>...",
	SkipFlagParsing: true,
	Action:          runDelete,
}

var cmdPairSum = &cli.Command{
	Name:            "pairsum",
	Usage:           "report whether two values of the tree add up to k",
	ArgsUsage:       "<k>",
	SkipFlagParsing: true,
	Action:          runPairSum,
}

var cmdKth = &cli.Command{
	Name:            "kth",
	Usage:           "print the k-th smallest value, counting from 1",
	ArgsUsage:       "<k>",
	SkipFlagParsing: true,
	Action:          runKth,
}

var cmdLCA = &cli.Command{
	Name:            "lca",
	Usage:           "print the lowest common ancestor of two values",
	ArgsUsage:       "<p> <q>",
	SkipFlagParsing: true,
	Action:          runLCA,
}

var cmdGreaterSum = &cli.Command{
	Name:   "greatersum",
	Usage:  "replace every value by the sum of itself and all values after it in order",
	Action: runGreaterSum,
}

var cmdBalance = &cli.Command{
	Name:  "balance",
	Usage: "rebuild the tree with minimal height from its sorted values",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "linked",
			Usage: "build from a linked list instead of a slice",
		},
	},
	Action: runBalance,
}

var cmdMaxSum = &cli.Command{
	Name:   "maxsum",
	Usage:  "print the largest sum of a sub-tree that is a strict BST",
	Action: runMaxSum,
}

func runShow(cctx *cli.Context) error {
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}
	printTree(cctx, root)
	return nil
}

func runQuery(cctx *cli.Context) error {
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}
	out := cctx.App.Writer
	for _, q := range []struct {
		name string
		f    func(*Trees.Node[int]) (int, error)
	}{{"min", Trees.Minimum[int]}, {"max", Trees.Maximum[int]}} {
		v, err := q.f(root)
		if errors.Is(err, Trees.ErrNotFound) {
			fmt.Fprintf(out, "%s: %s\n", q.name, color.YellowString("none, tree is empty"))
			continue
		}
		fmt.Fprintf(out, "%s: %d\n", q.name, v)
	}
	for _, v := range cctx.IntSlice("search") {
		if Trees.Search(root, v) {
			fmt.Fprintf(out, "%d: %s\n", v, color.GreenString("found"))
		} else {
			fmt.Fprintf(out, "%d: %s\n", v, color.YellowString("not found"))
		}
	}
	return nil
}

func runDelete(cctx *cli.Context) error {
	vs, err := intArgs(cctx, 0)
	if err != nil {
		return err
	}
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}
	for _, v := range vs {
		if !Trees.Search(root, v) {
			fmt.Fprintf(cctx.App.Writer, "%d: %s\n", v, color.YellowString("not in tree, nothing deleted"))
			continue
		}
		root = Trees.Delete(root, v)
		log.Debug("deleted", "value", v)
	}
	printTree(cctx, root)
	return nil
}

func runPairSum(cctx *cli.Context) error {
	args, err := intArgs(cctx, 1)
	if err != nil {
		return err
	}
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, Trees.HasPairSum(root, args[0]))
	return nil
}

func runKth(cctx *cli.Context) error {
	args, err := intArgs(cctx, 1)
	if err != nil {
		return err
	}
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}
	v, err := Trees.KthSmallest(root, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, v)
	return nil
}

func runLCA(cctx *cli.Context) error {
	args, err := intArgs(cctx, 2)
	if err != nil {
		return err
	}
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}
	n, err := Trees.LCA(root, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, n.Value)
	return nil
}

func runGreaterSum(cctx *cli.Context) error {
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}
	printTree(cctx, Trees.ToGreaterSum(root))
	return nil
}

func runBalance(cctx *cli.Context) error {
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}
	before := Trees.Height(root)
	sorted := Trees.Collect(Trees.InOrder(root))
	// the linked build has the same shape, so the checked build vets both
	balanced, err := Trees.FromSortedChecked(sorted)
	if err != nil {
		return fmt.Errorf("cannot rebalance: %w", err)
	}
	root = balanced
	if cctx.Bool("linked") {
		root = Trees.FromSortedLinked(Trees.NewList(sorted...))
	}
	log.Info("rebalanced", "height_before", before, "height_after", Trees.Height(root))
	printTree(cctx, root)
	return nil
}

func runMaxSum(cctx *cli.Context) error {
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, Trees.MaxSumBST(root))
	return nil
}
