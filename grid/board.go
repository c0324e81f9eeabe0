package grid

import (
	"fmt"

	"github.com/pflow-xyz/go-sudoku/movelog"
)

// Board owns the 81 cells and the 27 units of a puzzle, the global
// unsolved-cell list, and the move log recording every mutation.
// A board is built once from 81 initial digits and mutated in place by
// a single solver; it is never shared between concurrent solves.
type Board struct {
	cells    [81]Cell
	rows     [9]Unit
	columns  [9]Unit
	boxes    [9]Unit
	unsolved []int
	log      *movelog.Log
}

// New constructs a board from exactly 81 digits in row-major order,
// 0 meaning blank. Givens are placed directly and never logged.
func New(values []int) (*Board, error) {
	if len(values) != 81 {
		return nil, fmt.Errorf("%w: want 81 cells, got %d", ErrInvalidValue, len(values))
	}
	b := &Board{
		log:      movelog.New(),
		unsolved: make([]int, 0, 81),
	}
	for i := 0; i < 9; i++ {
		b.rows[i] = Unit{kind: KindRow, index: i}
		b.columns[i] = Unit{kind: KindColumn, index: i}
		b.boxes[i] = Unit{kind: KindBox, index: i}
	}

	rowFill := [9]int{}
	colFill := [9]int{}
	boxFill := [9]int{}
	for i, v := range values {
		if v < 0 || v > 9 {
			return nil, fmt.Errorf("%w: cell %d holds %d", ErrInvalidValue, i, v)
		}
		r, c, x := RowOf(i), ColumnOf(i), BoxOf(i)
		cell := Cell{index: i, row: r, column: c, box: x}
		if v != 0 {
			cell.value = v
		} else {
			cell.candidates = AllCandidates()
		}
		b.cells[i] = cell

		b.rows[r].cells[rowFill[r]] = i
		rowFill[r]++
		b.columns[c].cells[colFill[c]] = i
		colFill[c]++
		b.boxes[x].cells[boxFill[x]] = i
		boxFill[x]++

		if v == 0 {
			b.unsolved = append(b.unsolved, i)
			b.rows[r].unsolved = append(b.rows[r].unsolved, i)
			b.columns[c].unsolved = append(b.columns[c].unsolved, i)
			b.boxes[x].unsolved = append(b.boxes[x].unsolved, i)
		}
	}
	return b, nil
}

// Cell returns the cell at position i.
func (b *Board) Cell(i int) *Cell { return &b.cells[i] }

// Row returns the row unit with the given index.
func (b *Board) Row(i int) *Unit { return &b.rows[i] }

// Column returns the column unit with the given index.
func (b *Board) Column(i int) *Unit { return &b.columns[i] }

// Box returns the box unit with the given index.
func (b *Board) Box(i int) *Unit { return &b.boxes[i] }

// Units returns all 27 units in the fixed scan order: rows, columns,
// boxes, each by ascending index. Strategy battery ordering depends on
// this order being stable.
func (b *Board) Units() []*Unit {
	out := make([]*Unit, 0, 27)
	for i := range b.rows {
		out = append(out, &b.rows[i])
	}
	for i := range b.columns {
		out = append(out, &b.columns[i])
	}
	for i := range b.boxes {
		out = append(out, &b.boxes[i])
	}
	return out
}

// Unsolved returns the indices of currently unsolved cells in
// ascending order.
func (b *Board) Unsolved() []int {
	out := make([]int, len(b.unsolved))
	copy(out, b.unsolved)
	return out
}

// Log returns the board's move log.
func (b *Board) Log() *movelog.Log { return b.log }

// Values returns the 81 current cell values in row-major order, 0 for
// unsolved cells.
func (b *Board) Values() [81]int {
	var out [81]int
	for i := range b.cells {
		out[i] = b.cells[i].value
	}
	return out
}

// Assign fixes cell i to digit d: the value is set, candidates are
// cleared, an Assign entry is logged, and the cell leaves every
// unsolved list. Assigning an out-of-range digit or an already-solved
// cell fails with ErrInvalidValue.
func (b *Board) Assign(i, d int) error {
	if d < 1 || d > 9 {
		return fmt.Errorf("%w: digit %d", ErrInvalidValue, d)
	}
	cell := &b.cells[i]
	if cell.Solved() {
		return fmt.Errorf("%w: cell %d already solved", ErrInvalidValue, i)
	}
	cell.value = d
	cell.candidates = 0
	b.log.Append(movelog.Entry{Cell: i, Kind: movelog.Assign, Digit: d})

	b.rows[cell.row].unsolved = removeIndex(b.rows[cell.row].unsolved, i)
	b.columns[cell.column].unsolved = removeIndex(b.columns[cell.column].unsolved, i)
	b.boxes[cell.box].unsolved = removeIndex(b.boxes[cell.box].unsolved, i)
	b.unsolved = removeIndex(b.unsolved, i)
	return nil
}

// RemoveCandidate discards digit d from cell i's candidates and logs
// the removal. Reports whether a change occurred; removing an absent
// digit is an idempotent no-op.
func (b *Board) RemoveCandidate(i, d int) bool {
	cell := &b.cells[i]
	if !cell.candidates.Has(d) {
		return false
	}
	cell.candidates = cell.candidates.Without(d)
	b.log.Append(movelog.Entry{Cell: i, Kind: movelog.RemoveCandidate, Digit: d})
	return true
}

// RestrictCandidates replaces cell i's candidate set with its
// intersection with allowed, logging each removed digit in ascending
// order. An empty intersection is a contradiction and leaves the cell
// untouched. The call is a no-op exactly when the current candidates
// are already a subset of allowed.
func (b *Board) RestrictCandidates(i int, allowed CandidateSet) (bool, error) {
	cell := &b.cells[i]
	if cell.candidates.Intersect(allowed).Empty() {
		return false, fmt.Errorf("%w: cell %d restricted to %v", ErrContradiction, i, allowed.Digits())
	}
	if cell.candidates.SubsetOf(allowed) {
		return false, nil
	}
	for _, d := range cell.candidates.Diff(allowed).Digits() {
		b.RemoveCandidate(i, d)
	}
	return true, nil
}

// IsValid reports whether all 27 units hold pairwise-distinct solved
// values.
func (b *Board) IsValid() bool {
	for _, u := range b.Units() {
		if !u.IsValid(b) {
			return false
		}
	}
	return true
}

// IsSolved reports whether every cell holds a value.
func (b *Board) IsSolved() bool {
	return len(b.unsolved) == 0
}

// removeIndex deletes the first occurrence of x, preserving order.
func removeIndex(xs []int, x int) []int {
	for k, v := range xs {
		if v == x {
			return append(xs[:k], xs[k+1:]...)
		}
	}
	return xs
}
