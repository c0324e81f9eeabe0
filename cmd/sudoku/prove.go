package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pflow-xyz/go-sudoku/engine"
	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/prover"
)

func prove(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	keysDir := fs.String("keys", "", "Directory for circuit keys (reused if present, created otherwise)")
	quiet := fs.Bool("quiet", false, "Only print the proof result")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku prove <puzzle.txt|-> [options]

Solve a puzzle and produce a Groth16 zero-knowledge proof that the
solution completes the public givens, then verify it. The puzzle must
be solvable by deduction; Stuck and Invalid puzzles cannot be proven.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Prove, compiling the circuit fresh
  sudoku prove puzzle.txt

  # Cache circuit keys for later runs
  sudoku prove puzzle.txt --keys ./keys
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

	res := engine.Solve(board, nil)
	if res.Status != engine.Solved {
		return fmt.Errorf("puzzle not solved (%s); nothing to prove", res.Status)
	}
	if !*quiet {
		fmt.Printf("Solved in %d cycles, %d moves\n", res.Cycles, res.Log.Len())
	}

	var givens [81]int
	copy(givens[:], values)
	solution := board.Values()

	p, err := loadOrBuildProver(*keysDir, *quiet)
	if err != nil {
		return err
	}
	if !*quiet {
		fmt.Printf("Circuit has %d constraints\n", p.Constraints())
	}

	start := time.Now()
	proof, err := p.Prove(givens, solution)
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}
	if !*quiet {
		fmt.Printf("Proof generated in %s\n", time.Since(start).Round(time.Millisecond))
	}

	if err := p.Verify(proof, givens); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	fmt.Println("Proof verified: solution completes the givens")
	return nil
}

func loadOrBuildProver(keysDir string, quiet bool) (*prover.Prover, error) {
	if keysDir != "" {
		if _, err := os.Stat(keysDir); err == nil {
			p, err := prover.LoadFrom(keysDir)
			if err != nil {
				return nil, fmt.Errorf("load keys: %w", err)
			}
			if !quiet {
				fmt.Printf("Loaded circuit keys from %s\n", keysDir)
			}
			return p, nil
		}
	}

	if !quiet {
		fmt.Println("Compiling circuit and running setup...")
	}
	p, err := prover.New()
	if err != nil {
		return nil, fmt.Errorf("build prover: %w", err)
	}
	if keysDir != "" {
		if err := p.SaveTo(keysDir); err != nil {
			return nil, fmt.Errorf("save keys: %w", err)
		}
		if !quiet {
			fmt.Printf("Saved circuit keys to %s\n", keysDir)
		}
	}
	return p, nil
}
