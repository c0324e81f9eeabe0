// Package grid implements the Sudoku constraint model: 81 cells, each
// holding a fixed value or a candidate set, grouped into 9 rows, 9
// columns and 9 boxes. The Board owns all cells and units; units and
// cells refer to each other only by integer index into Board-owned
// arrays. Elimination strategies (naked/hidden subsets, line
// reductions, X-Wings) live alongside the model they operate on.
package grid

// Cell is one of the 81 positions of the board. A cell is either
// solved (value 1-9, empty candidate set) or unsolved (value 0,
// non-empty candidate set). Position and unit membership are fixed at
// construction and never change.
type Cell struct {
	index  int
	row    int // row unit index, 0-8
	column int // column unit index, 0-8
	box    int // box unit index, 0-8

	value      int // 0 while unsolved
	candidates CandidateSet
}

// Index returns the cell's position, 0-80 in row-major order.
func (c *Cell) Index() int { return c.index }

// Row returns the index of the row unit the cell belongs to.
func (c *Cell) Row() int { return c.row }

// Column returns the index of the column unit the cell belongs to.
func (c *Cell) Column() int { return c.column }

// Box returns the index of the box unit the cell belongs to.
func (c *Cell) Box() int { return c.box }

// Value returns the solved digit, or 0 if the cell is unsolved.
func (c *Cell) Value() int { return c.value }

// Solved reports whether the cell holds a fixed value.
func (c *Cell) Solved() bool { return c.value != 0 }

// Candidates returns the cell's remaining candidate set. Empty for a
// solved cell.
func (c *Cell) Candidates() CandidateSet { return c.candidates }

// RowOf returns the row unit index of cell position i.
func RowOf(i int) int { return i / 9 }

// ColumnOf returns the column unit index of cell position i.
func ColumnOf(i int) int { return i % 9 }

// BoxOf returns the box unit index of cell position i.
func BoxOf(i int) int { return (i / 9 / 3 * 3) + (i % 9 / 3) }
