package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var log = slog.Default().With("system", "bst")

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp(os.Stdin, os.Stdout, os.Stderr).Run(args)
}

// newApp wires the command tree. in is read when --input is "-".
func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	app := &cli.App{
		Name:      "bst",
		Usage:     "build a binary search tree from a list of integers and run algorithms on it",
		Version:   versioninfo.Short(),
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   `file of whitespace separated integers, "-" for stdin`,
			Value:   "-",
			EnvVars: []string{"BST_INPUT"},
		},
		&cli.IntFlag{
			Name:    "sentinel",
			Usage:   "value that ends the input; it is not inserted",
			Value:   -1,
			EnvVars: []string{"BST_SENTINEL"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   "warn",
			EnvVars: []string{"BST_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
	}
	app.Before = func(cctx *cli.Context) error {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log = slog.New(slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: lvl})).With("system", "bst")
		if cctx.Bool("no-color") {
			color.NoColor = true
		}
		return nil
	}
	app.Commands = []*cli.Command{
		cmdShow,
		cmdQuery,
		cmdDelete,
		cmdPairSum,
		cmdKth,
		cmdLCA,
		cmdGreaterSum,
		cmdBalance,
		cmdMaxSum,
	}
	return app
}
