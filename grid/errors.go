package grid

import "errors"

var (
	// ErrInvalidValue is returned for a digit outside 1-9, an
	// assignment to an already-solved cell, or board construction
	// with the wrong number of cells.
	ErrInvalidValue = errors.New("grid: invalid value")

	// ErrContradiction is returned when a candidate restriction would
	// leave a cell with no candidates at all; the deduction path that
	// led here is unsound.
	ErrContradiction = errors.New("grid: candidate contradiction")
)
