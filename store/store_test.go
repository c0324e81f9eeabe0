package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pflow-xyz/go-sudoku/movelog"
)

const scenarioPuzzle = "030206050600708001000030000340109065002000900580403027000070000700902008010605070"

// runStoreTests exercises the Store contract against a backend.
func runStoreTests(t *testing.T, open func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("save and load round trip", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		moves := []movelog.Entry{
			{Cell: 0, Kind: movelog.RemoveCandidate, Digit: 2},
			{Cell: 0, Kind: movelog.RemoveCandidate, Digit: 3},
			{Cell: 15, Kind: movelog.Assign, Digit: 3},
		}
		id, err := s.Save(ctx, &Record{Puzzle: scenarioPuzzle, Status: "Solved", Moves: moves})
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if id == "" {
			t.Fatal("Save should assign an ID")
		}

		rec, err := s.Load(ctx, id)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if rec.Puzzle != scenarioPuzzle || rec.Status != "Solved" {
			t.Errorf("loaded record = %+v", rec)
		}
		if len(rec.Moves) != len(moves) {
			t.Fatalf("loaded %d moves, want %d", len(rec.Moves), len(moves))
		}
		for i, e := range moves {
			if rec.Moves[i] != e {
				t.Errorf("move %d = %+v, want %+v", i, rec.Moves[i], e)
			}
		}
		if rec.CreatedAt.IsZero() {
			t.Error("CreatedAt should be set")
		}
	})

	t.Run("load unknown id", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		if _, err := s.Load(ctx, "no-such-session"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("preset id preserved", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		id, err := s.Save(ctx, &Record{ID: "fixed-id", Puzzle: scenarioPuzzle, Status: "Stuck"})
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if id != "fixed-id" {
			t.Errorf("Save returned %q, want the preset ID", id)
		}
		if _, err := s.Load(ctx, "fixed-id"); err != nil {
			t.Errorf("Load by preset ID failed: %v", err)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			_, err := s.Save(ctx, &Record{
				Puzzle:    scenarioPuzzle,
				Status:    "Solved",
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
				Moves:     make([]movelog.Entry, i),
			})
			if err != nil {
				t.Fatalf("Save %d failed: %v", i, err)
			}
		}

		metas, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(metas) != 3 {
			t.Fatalf("listed %d sessions, want 3", len(metas))
		}
		for i := 1; i < len(metas); i++ {
			if metas[i].CreatedAt.After(metas[i-1].CreatedAt) {
				t.Error("List should order newest first")
			}
		}
		if metas[0].MoveCount != 2 {
			t.Errorf("newest session should have 2 moves, got %d", metas[0].MoveCount)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		metas, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(metas) != 0 {
			t.Errorf("fresh store should list nothing, got %d", len(metas))
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreTests(t, func(t *testing.T) Store {
		s, err := NewSQLiteStore(":memory:")
		if err != nil {
			t.Fatalf("NewSQLiteStore failed: %v", err)
		}
		return s
	})
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	moves := []movelog.Entry{{Cell: 4, Kind: movelog.Assign, Digit: 9}}
	id, err := s.Save(ctx, &Record{Puzzle: scenarioPuzzle, Status: "Solved", Moves: moves})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// mutating the caller's slice must not affect the stored record
	moves[0].Digit = 1
	rec, err := s.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if rec.Moves[0].Digit != 9 {
		t.Error("stored moves share memory with the caller")
	}

	// and mutating a loaded record must not affect the store
	rec.Moves[0].Digit = 2
	again, _ := s.Load(ctx, id)
	if again.Moves[0].Digit != 9 {
		t.Error("loaded moves share memory with the store")
	}
}
