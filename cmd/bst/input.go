package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli/v2"
)

// readValues reads whitespace separated integers from r up to, not including, the
// first occurrence of sentinel. The end of r also ends the input.
func readValues(r io.Reader, sentinel int) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var vs []int
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("bad value %q at position %d: %w", sc.Text(), len(vs)+1, err)
		}
		if v == sentinel {
			return vs, nil
		}
		vs = append(vs, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	log.Debug("input ended without sentinel", "sentinel", sentinel, "values", len(vs))
	return vs, nil
}

// loadTree builds the tree named by the global flags, inserting values in the order
// they were read.
func loadTree(cctx *cli.Context) (*Trees.Node[int], error) {
	r := cctx.App.Reader
	if path := cctx.String("input"); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}
	vs, err := readValues(r, cctx.Int("sentinel"))
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	root := Trees.FromValues(vs...)
	log.Info("built tree", "values", len(vs), "height", Trees.Height(root))
	return root, nil
}

// intArgs parses every positional argument as an integer, requiring exactly n of
// them, or at least one if n is 0. The commands using it skip flag parsing so that
// negative values aren't taken for flags; a leading "--" is dropped.
func intArgs(cctx *cli.Context, n int) ([]int, error) {
	args := cctx.Args().Slice()
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if (n == 0 && len(args) == 0) || (n > 0 && len(args) != n) {
		return nil, fmt.Errorf("expected %s, got %d arguments", cctx.Command.ArgsUsage, len(args))
	}
	vs := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", a, err)
		}
		vs[i] = v
	}
	return vs, nil
}
