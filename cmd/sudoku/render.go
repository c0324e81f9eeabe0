package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/render"
)

func renderCmd(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	svgFile := fs.String("svg", "", "Write SVG to this file instead of printing text")
	candidates := fs.Bool("candidates", true, "Include candidate marks in SVG output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku render <puzzle.txt|-> [options]

Render a puzzle grid without solving it.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}

	values, err := readPuzzle(fs.Arg(0))
	if err != nil {
		return err
	}
	board, err := grid.New(values)
	if err != nil {
		return fmt.Errorf("construct board: %w", err)
	}

	if *svgFile != "" {
		opts := &render.SVGOptions{Givens: values, ShowCandidates: *candidates}
		if err := render.SaveSVG(board, opts, *svgFile); err != nil {
			return fmt.Errorf("save svg: %w", err)
		}
		fmt.Printf("Wrote %s\n", *svgFile)
		return nil
	}

	fmt.Println(render.Text(board))
	return nil
}
