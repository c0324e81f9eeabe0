package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		if err := solve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "render":
		if err := renderCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "events":
		if err := events(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "prove":
		if err := prove(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("sudoku version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sudoku - logical Sudoku solver with an auditable move log

Usage:
  sudoku <command> [options]

Commands:
  solve      Solve a puzzle by pure deduction
  validate   Check a puzzle for unit conflicts
  render     Render a puzzle as text or SVG
  events     Show a saved move log as a timeline
  prove      Solve and produce a zero-knowledge solution proof
  help       Show this help message
  version    Show version information

Examples:
  # Solve a built-in sample, printing each deduction
  sudoku solve sample:scenario --events

  # Solve from a puzzle file
  sudoku solve puzzle.txt

  # Solve from stdin and persist the session
  echo "030206050..." | sudoku solve - --db solves.db

  # Save the move log and render the result
  sudoku solve puzzle.txt --log moves.log --svg solved.svg

  # Inspect a saved log
  sudoku events moves.log

For command-specific help, run:
  sudoku <command> --help`)
}
