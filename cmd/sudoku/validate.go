package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/grid"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku validate <puzzle.txt|->

Check a puzzle for structural problems before solving.

Checks performed:
  - Input shape (exactly 81 digits, 0-9)
  - Duplicate solved values within any row, column, or box

Exits non-zero when the puzzle is invalid.
`)
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

	conflicts := 0
	for _, u := range board.Units() {
		if !u.IsValid(board) {
			fmt.Printf("Conflict: duplicate value in %s %d\n", u.Kind(), u.Index())
			conflicts++
		}
	}
	if conflicts > 0 {
		return fmt.Errorf("puzzle is invalid: %d conflicting unit(s)", conflicts)
	}

	givens := 0
	for _, v := range values {
		if v != 0 {
			givens++
		}
	}
	fmt.Printf("Puzzle is valid: %d givens, %d blanks\n", givens, 81-givens)
	return nil
}
