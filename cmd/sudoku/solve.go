package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pflow-xyz/go-sudoku/engine"
	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/movelog"
	"github.com/pflow-xyz/go-sudoku/parser"
	"github.com/pflow-xyz/go-sudoku/puzzles"
	"github.com/pflow-xyz/go-sudoku/render"
	"github.com/pflow-xyz/go-sudoku/store"
)

func solve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	logFile := fs.String("log", "", "Write the move log to a text file")
	jsonlFile := fs.String("jsonl", "", "Write the move log to a JSONL file")
	csvFile := fs.String("csv", "", "Write the move log to a CSV file")
	svgFile := fs.String("svg", "", "Write the final board to an SVG file")
	dbFile := fs.String("db", "", "Persist the session to a SQLite database")
	showEvents := fs.Bool("events", false, "Print each deduction as it fires")
	quiet := fs.Bool("quiet", false, "Only print the terminal status line")
	maxCycles := fs.Int("max-cycles", 0, "Cap solver cycles (0 = no cap)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku solve <puzzle.txt|-> [options]

Solve a puzzle by pure logical deduction. The puzzle is 81 digits,
0 for blank, whitespace ignored; "-" reads from stdin and
"sample:<name>" picks a built-in sample. Terminates as Solved, Stuck
(technique set exhausted), or Invalid.

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

	if !*quiet {
		fmt.Println(render.Text(board))
		fmt.Println()
	}

	opts := &engine.Options{MaxCycles: *maxCycles}
	if *showEvents {
		opts.Sink = engine.SinkFunc(func(f grid.Finding) {
			fmt.Println(f)
		})
	}

	res := engine.Solve(board, opts)

	if !*quiet {
		fmt.Println(render.Text(board))
		fmt.Println()
	}
	fmt.Printf("%s: performed %d moves in %d cycles\n", res.Status, res.Log.Len(), res.Cycles)
	if res.Err != nil {
		fmt.Printf("Reason: %v\n", res.Err)
	}
	if res.Status == engine.Stuck {
		fmt.Printf("Unsolved cells remaining: %d\n", len(board.Unsolved()))
	}

	if *logFile != "" {
		if err := res.Log.SaveText(*logFile); err != nil {
			return fmt.Errorf("save log: %w", err)
		}
	}
	if *jsonlFile != "" {
		if err := res.Log.SaveJSONL(*jsonlFile); err != nil {
			return fmt.Errorf("save jsonl log: %w", err)
		}
	}
	if *csvFile != "" {
		if err := res.Log.SaveCSV(*csvFile); err != nil {
			return fmt.Errorf("save csv log: %w", err)
		}
	}
	if *svgFile != "" {
		svgOpts := &render.SVGOptions{Givens: values, ShowCandidates: res.Status != engine.Solved}
		if err := render.SaveSVG(board, svgOpts, *svgFile); err != nil {
			return fmt.Errorf("save svg: %w", err)
		}
	}
	if *dbFile != "" {
		id, err := persistSession(*dbFile, values, res)
		if err != nil {
			return err
		}
		fmt.Printf("Session saved: %s\n", id)
	}
	return nil
}

// readPuzzle resolves a puzzle argument: "-" for stdin, "sample:<name>"
// for a built-in sample, a .json document, or a plain text file.
func readPuzzle(arg string) ([]int, error) {
	if arg == "-" {
		return parser.ParseReader(os.Stdin)
	}
	if name, ok := strings.CutPrefix(arg, "sample:"); ok {
		givens, ok := puzzles.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown sample %q (have: %s)", name, strings.Join(puzzles.Names(), ", "))
		}
		return parser.ParseGivens(givens)
	}
	if strings.HasSuffix(arg, ".json") {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read puzzle: %w", err)
		}
		_, values, err := parser.FromJSON(data)
		return values, err
	}
	return parser.ParseFile(arg)
}

func persistSession(dbFile string, values []int, res *engine.Result) (string, error) {
	st, err := store.NewSQLiteStore(dbFile)
	if err != nil {
		return "", fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var sb strings.Builder
	for _, v := range values {
		sb.WriteByte(byte('0' + v))
	}
	rec := &store.Record{
		Puzzle: sb.String(),
		Status: res.Status.String(),
		Moves:  res.Log.Entries(),
	}
	id, err := st.Save(context.Background(), rec)
	if err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return id, nil
}

func dumpTimeline(w io.Writer, entries []movelog.Entry) {
	for seq, e := range entries {
		action := "assign"
		if e.Kind == movelog.RemoveCandidate {
			action = "remove"
		}
		fmt.Fprintf(w, "%-6d %-7s cell %-2d (r%dc%d) digit %d\n",
			seq, action, e.Cell, e.Cell/9, e.Cell%9, e.Digit)
	}
}
