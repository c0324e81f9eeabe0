package engine

import (
	"testing"

	"github.com/pflow-xyz/go-sudoku/movelog"
)

func puzzleValues(puzzle string) []int {
	values := make([]int, 81)
	for i := range values {
		values[i] = int(puzzle[i] - '0')
	}
	return values
}

func TestReplayReproducesSolve(t *testing.T) {
	b := mustBoard(t, scenarioPuzzle)
	res := Solve(b, nil)
	if res.Status != Solved {
		t.Fatalf("status = %s", res.Status)
	}

	replayed, err := Replay(puzzleValues(scenarioPuzzle), res.Log.Entries())
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if replayed.Values() != b.Values() {
		t.Error("replayed board differs from the solved board")
	}
	if !replayed.IsSolved() {
		t.Error("replayed board should be solved")
	}
}

func TestReplayStuckState(t *testing.T) {
	b := mustBoard(t, escargotPuzzle)
	res := Solve(b, nil)
	if res.Status != Stuck {
		t.Fatalf("status = %s", res.Status)
	}

	replayed, err := Replay(puzzleValues(escargotPuzzle), res.Log.Entries())
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if replayed.Values() != b.Values() {
		t.Error("replayed board differs")
	}
	for _, i := range b.Unsolved() {
		if replayed.Cell(i).Candidates() != b.Cell(i).Candidates() {
			t.Errorf("cell %d candidates differ after replay", i)
		}
	}
}

func TestReplayRejectsForeignLog(t *testing.T) {
	b := mustBoard(t, scenarioPuzzle)
	res := Solve(b, nil)
	if res.Status != Solved {
		t.Fatalf("status = %s", res.Status)
	}

	// a log replayed against different givens must not apply cleanly
	if _, err := Replay(puzzleValues(escargotPuzzle), res.Log.Entries()); err == nil {
		t.Error("foreign log should fail to replay")
	}
}

func TestReplayRejectsRedundantRemoval(t *testing.T) {
	entries := []movelog.Entry{
		{Cell: 0, Kind: movelog.RemoveCandidate, Digit: 2},
		{Cell: 0, Kind: movelog.RemoveCandidate, Digit: 2},
	}
	if _, err := Replay(make([]int, 81), entries); err == nil {
		t.Error("removing an absent candidate should fail replay")
	}
}

func TestReplayRejectsBadAssignment(t *testing.T) {
	values := make([]int, 81)
	values[0] = 5
	entries := []movelog.Entry{{Cell: 0, Kind: movelog.Assign, Digit: 3}}
	if _, err := Replay(values, entries); err == nil {
		t.Error("assigning a solved cell should fail replay")
	}
}
