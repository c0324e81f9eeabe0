package puzzles

import (
	"testing"

	"github.com/pflow-xyz/go-sudoku/engine"
	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/parser"
)

func TestCorpusIsWellFormed(t *testing.T) {
	if len(All()) == 0 {
		t.Fatal("corpus is empty")
	}
	seen := make(map[string]bool)
	for _, s := range All() {
		if seen[s.Name] {
			t.Errorf("duplicate sample name %q", s.Name)
		}
		seen[s.Name] = true

		values, err := parser.ParseGivens(s.Givens)
		if err != nil {
			t.Errorf("sample %q does not parse: %v", s.Name, err)
			continue
		}
		b, err := grid.New(values)
		if err != nil {
			t.Errorf("sample %q does not build: %v", s.Name, err)
			continue
		}
		if !b.IsValid() {
			t.Errorf("sample %q has conflicting givens", s.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	givens, ok := Lookup("scenario")
	if !ok || len(givens) != 81 {
		t.Fatalf("Lookup(scenario) = %q, %v", givens, ok)
	}
	if _, ok := Lookup("no-such-puzzle"); ok {
		t.Error("unknown name should miss")
	}
}

func TestNamesMatchAll(t *testing.T) {
	names := Names()
	all := All()
	if len(names) != len(all) {
		t.Fatalf("Names has %d entries, All has %d", len(names), len(all))
	}
	for i := range all {
		if names[i] != all[i].Name {
			t.Errorf("name %d = %q, want %q", i, names[i], all[i].Name)
		}
	}
}

func TestCorpusOutcomes(t *testing.T) {
	// every sample except the escargot solves by deduction
	for _, s := range All() {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			values, err := parser.ParseGivens(s.Givens)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			b, err := grid.New(values)
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			res := engine.Solve(b, nil)
			want := engine.Solved
			if s.Name == "escargot" {
				want = engine.Stuck
			}
			if res.Status != want {
				t.Errorf("status = %s, want %s", res.Status, want)
			}
		})
	}
}
