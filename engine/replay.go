package engine

import (
	"fmt"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/movelog"
)

// Replay rebuilds board state by applying a recorded move log to a
// fresh board constructed from the same givens. Each entry is applied
// in order; an assignment that fails or a removal that changes nothing
// means the log does not belong to these givens.
func Replay(givens []int, entries []movelog.Entry) (*grid.Board, error) {
	b, err := grid.New(givens)
	if err != nil {
		return nil, err
	}
	for n, e := range entries {
		switch e.Kind {
		case movelog.Assign:
			if err := b.Assign(e.Cell, e.Digit); err != nil {
				return nil, fmt.Errorf("replay entry %d (%s): %w", n, e, err)
			}
		case movelog.RemoveCandidate:
			if !b.RemoveCandidate(e.Cell, e.Digit) {
				return nil, fmt.Errorf("replay entry %d (%s): candidate already absent", n, e)
			}
		default:
			return nil, fmt.Errorf("replay entry %d: unknown kind %d", n, e.Kind)
		}
	}
	return b, nil
}
