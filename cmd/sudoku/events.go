package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pflow-xyz/go-sudoku/movelog"
	"github.com/pflow-xyz/go-sudoku/store"
)

func events(args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	dbFile := fs.String("db", "", "Read the log from a SQLite session database")
	sessionID := fs.String("id", "", "Session ID to show (with --db); empty lists sessions")
	kindFilter := fs.String("kind", "", "Filter by entry kind: assign|remove")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku events <moves.log> [options]
       sudoku events --db solves.db [--id <session>]

Display a saved move log as a timeline. Text, JSONL and CSV log files
are all accepted; with --db, logs are read from a session database.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Show a saved log
  sudoku events moves.log

  # Only assignments
  sudoku events moves.log --kind assign

  # List stored sessions, then show one
  sudoku events --db solves.db
  sudoku events --db solves.db --id 3f1c...
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	var entries []movelog.Entry
	switch {
	case *dbFile != "":
		st, err := store.NewSQLiteStore(*dbFile)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		if *sessionID == "" {
			return listSessions(st)
		}
		rec, err := st.Load(context.Background(), *sessionID)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		fmt.Printf("Session %s  puzzle %s  status %s\n\n", rec.ID, rec.Puzzle, rec.Status)
		entries = rec.Moves
	case fs.NArg() >= 1:
		log, err := loadLogFile(fs.Arg(0))
		if err != nil {
			return err
		}
		entries = log.Entries()
	default:
		fs.Usage()
		return fmt.Errorf("log file or --db required")
	}

	if *kindFilter != "" {
		want := movelog.Assign
		switch strings.ToLower(*kindFilter) {
		case "assign":
		case "remove":
			want = movelog.RemoveCandidate
		default:
			return fmt.Errorf("unknown kind %q", *kindFilter)
		}
		filtered := make([]movelog.Entry, 0, len(entries))
		for _, e := range entries {
			if e.Kind == want {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if len(entries) == 0 {
		fmt.Println("No entries recorded")
		return nil
	}
	fmt.Printf("=== Move Timeline (%d entries) ===\n\n", len(entries))
	dumpTimeline(os.Stdout, entries)
	return nil
}

func loadLogFile(filename string) (*movelog.Log, error) {
	switch {
	case strings.HasSuffix(filename, ".jsonl"):
		return movelog.LoadJSONL(filename)
	case strings.HasSuffix(filename, ".csv"):
		return movelog.LoadCSV(filename)
	default:
		return movelog.LoadText(filename)
	}
}

func listSessions(st store.Store) error {
	metas, err := st.List(context.Background())
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(metas) == 0 {
		fmt.Println("No sessions stored")
		return nil
	}
	for _, m := range metas {
		fmt.Printf("%s  %s  %-7s  %4d moves  %s\n",
			m.ID, m.CreatedAt.Format("2006-01-02 15:04:05"), m.Status, m.MoveCount, m.Puzzle)
	}
	return nil
}
