// Package engine drives the elimination strategy battery against a
// board until the puzzle is solved, the technique set is exhausted, or
// the grid turns out to be invalid. Strategies run in a fixed priority
// order, cheapest first, and each cycle ends at the first stage that
// makes progress, so the move log of a given puzzle is reproducible
// byte for byte.
package engine

import (
	"errors"
	"fmt"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/movelog"
)

// ErrInvalidPuzzle is reported when a unit fails its validity check,
// before solving starts or after an assignment.
var ErrInvalidPuzzle = errors.New("engine: invalid puzzle")

// Status is the terminal state of a solve.
type Status int

const (
	// Solved: every cell holds a value and all units are valid.
	Solved Status = iota
	// Stuck: a full cycle produced no log entries; the implemented
	// technique set is exhausted for this puzzle. A normal outcome,
	// not an error.
	Stuck
	// Invalid: a unit failed validation or a restriction emptied a
	// candidate set. The log accumulated so far is preserved.
	Invalid
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Solved:
		return "Solved"
	case Stuck:
		return "Stuck"
	case Invalid:
		return "Invalid"
	}
	return "Unknown"
}

// Sink receives structured finding events as strategies fire.
type Sink interface {
	Emit(f grid.Finding)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(f grid.Finding)

// Emit calls the wrapped function.
func (fn SinkFunc) Emit(f grid.Finding) { fn(f) }

// Options configures a solve.
type Options struct {
	// Sink receives finding events; nil discards them.
	Sink Sink

	// MaxCycles caps loop iterations as an external safeguard.
	// 0 means no cap; the loop terminates on its own regardless,
	// since every cycle either mutates the board or halts.
	MaxCycles int
}

// Result is the outcome of a solve. The board and its log are always
// populated, whatever the terminal status.
type Result struct {
	Status Status
	Cycles int
	Board  *grid.Board
	Log    *movelog.Log
	Err    error // the named error behind an Invalid status, nil otherwise
}

// Solve runs the strategy battery to a terminal state. The board is
// mutated in place and must not be shared with another solve.
func Solve(b *grid.Board, opts *Options) *Result {
	if opts == nil {
		opts = &Options{}
	}
	e := &engine{board: b, sink: opts.Sink}
	res := &Result{Board: b, Log: b.Log()}

	if !b.IsValid() {
		res.Status = Invalid
		res.Err = ErrInvalidPuzzle
		return res
	}

	for {
		res.Cycles++
		if opts.MaxCycles > 0 && res.Cycles > opts.MaxCycles {
			res.Status = Stuck
			return res
		}
		before := b.Log().Len()

		if err := e.runCycle(); err != nil {
			res.Status = Invalid
			res.Err = err
			return res
		}

		// Promote forced singles to assigned values.
		if err := e.assignSingles(); err != nil {
			res.Status = Invalid
			res.Err = err
			return res
		}

		// A cell stripped of every candidate means the deduction path
		// is unsound, same as a failed restriction.
		for _, i := range b.Unsolved() {
			if b.Cell(i).Candidates().Empty() {
				res.Status = Invalid
				res.Err = fmt.Errorf("%w: cell %d has no candidates", grid.ErrContradiction, i)
				return res
			}
		}

		if b.IsSolved() {
			res.Status = Solved
			return res
		}
		if b.Log().Len() == before {
			res.Status = Stuck
			return res
		}
	}
}

type engine struct {
	board *grid.Board
	sink  Sink
}

func (e *engine) emit(f grid.Finding) {
	if e.sink != nil {
		e.sink.Emit(f)
	}
}

func (e *engine) emitAll(fs []grid.Finding) {
	for _, f := range fs {
		e.emit(f)
	}
}

// runCycle executes the strategy battery in priority order, returning
// after the first stage that reports progress. The ordering is part of
// the output contract: reordering stages changes move logs.
func (e *engine) runCycle() error {
	if e.prune() {
		return nil
	}

	ok, err := e.hiddenSingles()
	if err != nil || ok {
		return err
	}

	if e.lineReductions() {
		return nil
	}

	for n := 2; n <= 4; n++ {
		if e.nakedSubsets(n) {
			return nil
		}
		ok, err := e.hiddenSubsets(n)
		if err != nil || ok {
			return err
		}
	}

	if f, ok := e.board.FindXWings(); ok {
		e.emit(f)
	}
	return nil
}

// prune removes from every unsolved cell each value already solved in
// its row, column, or box. Re-running on an already-pruned board is a
// no-op.
func (e *engine) prune() bool {
	b := e.board
	changed := false
	for _, i := range b.Unsolved() {
		cell := b.Cell(i)
		units := []*grid.Unit{b.Row(cell.Row()), b.Column(cell.Column()), b.Box(cell.Box())}
		for _, u := range units {
			for _, d := range u.SolvedValues(b).Digits() {
				changed = b.RemoveCandidate(i, d) || changed
			}
		}
	}
	return changed
}

// hiddenSingles runs the 1-subset case over every unit: a digit
// confined to one position is promoted there by restricting the cell
// to that digit alone. The solver loop lifts the restriction into an
// assignment at the end of the cycle.
func (e *engine) hiddenSingles() (bool, error) {
	changed := false
	for _, u := range e.board.Units() {
		f, ok, err := u.FindHiddenSubset(e.board, 1)
		if err != nil {
			return false, err
		}
		if ok {
			e.emit(f)
			changed = true
		}
	}
	return changed, nil
}

// lineReductions alternates pointing-pair elimination over the boxes
// with box-line reduction over the rows and columns until neither
// yields further changes.
func (e *engine) lineReductions() bool {
	b := e.board
	changed := false
	for {
		iter := false
		for i := 0; i < 9; i++ {
			fs, ok := b.Box(i).FindNakedLine(b)
			if ok {
				e.emitAll(fs)
				iter = true
			}
		}
		for i := 0; i < 9; i++ {
			fs, ok := b.Row(i).FindHiddenLine(b)
			if ok {
				e.emitAll(fs)
				iter = true
			}
		}
		for i := 0; i < 9; i++ {
			fs, ok := b.Column(i).FindHiddenLine(b)
			if ok {
				e.emitAll(fs)
				iter = true
			}
		}
		if !iter {
			return changed
		}
		changed = true
	}
}

func (e *engine) nakedSubsets(n int) bool {
	changed := false
	for _, u := range e.board.Units() {
		if f, ok := u.FindNakedSubset(e.board, n); ok {
			e.emit(f)
			changed = true
		}
	}
	return changed
}

func (e *engine) hiddenSubsets(n int) (bool, error) {
	changed := false
	for _, u := range e.board.Units() {
		f, ok, err := u.FindHiddenSubset(e.board, n)
		if err != nil {
			return false, err
		}
		if ok {
			e.emit(f)
			changed = true
		}
	}
	return changed, nil
}

// assignSingles fixes every unsolved cell whose candidate set has
// exactly one member, validating the board after each assignment.
func (e *engine) assignSingles() error {
	b := e.board
	for _, i := range b.Unsolved() {
		d := b.Cell(i).Candidates().Single()
		if d == 0 {
			continue
		}
		if err := b.Assign(i, d); err != nil {
			return err
		}
		if !b.IsValid() {
			return fmt.Errorf("%w: after assigning %d to cell %d", ErrInvalidPuzzle, d, i)
		}
	}
	return nil
}
