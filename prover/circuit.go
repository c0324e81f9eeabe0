// Package prover produces zero-knowledge proofs that a completed grid
// is a valid solution of a puzzle, without revealing the solution.
// The givens are the public input; the solution is the private
// witness. Proofs use Groth16 over BN254.
package prover

import (
	"github.com/consensys/gnark/frontend"
)

// SolutionCircuit asserts that Solution is a valid completion of
// Givens: every solution cell is a digit 1-9, every given is either
// blank (0) or equal to the corresponding solution cell, and every
// row, column and box holds pairwise-distinct values.
type SolutionCircuit struct {
	Givens   [81]frontend.Variable `gnark:",public"`
	Solution [81]frontend.Variable
}

// Define declares the circuit constraints.
func (c *SolutionCircuit) Define(api frontend.API) error {
	for i := 0; i < 81; i++ {
		// Solution[i] ∈ {1..9}: (s-1)(s-2)...(s-9) == 0
		prod := frontend.Variable(1)
		for d := 1; d <= 9; d++ {
			prod = api.Mul(prod, api.Sub(c.Solution[i], d))
		}
		api.AssertIsEqual(prod, 0)

		// Givens[i] is 0 or matches the solution: g*(g-s) == 0
		api.AssertIsEqual(api.Mul(c.Givens[i], api.Sub(c.Givens[i], c.Solution[i])), 0)
	}

	for _, cells := range unitCells() {
		for a := 0; a < 9; a++ {
			for b := a + 1; b < 9; b++ {
				api.AssertIsDifferent(c.Solution[cells[a]], c.Solution[cells[b]])
			}
		}
	}
	return nil
}

// unitCells returns the 27 unit index groups: 9 rows, 9 columns,
// 9 boxes.
func unitCells() [][9]int {
	units := make([][9]int, 0, 27)
	for r := 0; r < 9; r++ {
		var u [9]int
		for c := 0; c < 9; c++ {
			u[c] = r*9 + c
		}
		units = append(units, u)
	}
	for c := 0; c < 9; c++ {
		var u [9]int
		for r := 0; r < 9; r++ {
			u[r] = r*9 + c
		}
		units = append(units, u)
	}
	for b := 0; b < 9; b++ {
		var u [9]int
		br, bc := (b/3)*3, (b%3)*3
		k := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				u[k] = (br+dr)*9 + bc + dc
				k++
			}
		}
		units = append(units, u)
	}
	return units
}
