// Package render turns board state into presentable forms: the
// working-grid text layout with candidate notation, a compact 81-digit
// line, and an SVG drawing. The solving core only exposes per-cell
// solved-value-or-candidates in reading order; everything visual lives
// here.
package render

import (
	"fmt"
	"strings"

	"github.com/pflow-xyz/go-sudoku/grid"
)

// Line returns the 81 cell values as a digit string in row-major
// order, 0 for unsolved cells.
func Line(b *grid.Board) string {
	var sb strings.Builder
	sb.Grow(81)
	for _, v := range b.Values() {
		sb.WriteByte(byte('0' + v))
	}
	return sb.String()
}

// Cells returns, per cell in reading order, either the solved digit or
// the space-separated remaining candidates.
func Cells(b *grid.Board) []string {
	out := make([]string, 81)
	for i := 0; i < 81; i++ {
		cell := b.Cell(i)
		if cell.Solved() {
			out[i] = fmt.Sprintf("%d", cell.Value())
		} else {
			out[i] = cell.Candidates().String()
		}
	}
	return out
}

// Text renders the working grid: each cell shows its solved digit
// centered, or its remaining candidates in a 3×3 mini-layout. Light
// dividers separate cells inside a box, heavy dividers mark the box
// boundaries.
func Text(b *grid.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for band := 0; band < 3; band++ {
			for c := 0; c < 9; c++ {
				cell := b.Cell(r*9 + c)
				if cell.Solved() {
					if band == 1 {
						fmt.Fprintf(&sb, "   %d  ", cell.Value())
					} else {
						sb.WriteString("      ")
					}
				} else {
					for d := band*3 + 1; d <= band*3+3; d++ {
						if cell.Candidates().Has(d) {
							fmt.Fprintf(&sb, " %d", d)
						} else {
							sb.WriteString("  ")
						}
					}
				}
				switch c {
				case 2, 5:
					sb.WriteString(" ║")
				case 8:
					sb.WriteString("\n")
				default:
					sb.WriteString(" │")
				}
			}
		}
		if r < 8 {
			heavy := r == 2 || r == 5
			for c := 0; c < 9; c++ {
				if heavy {
					sb.WriteString("═══════")
					switch c {
					case 2, 5:
						sb.WriteString("╬")
					case 8:
						sb.WriteString("\n")
					default:
						sb.WriteString("╪")
					}
				} else {
					sb.WriteString("───────")
					switch c {
					case 2, 5:
						sb.WriteString("╫")
					case 8:
						sb.WriteString("\n")
					default:
						sb.WriteString("┼")
					}
				}
			}
		}
	}
	return sb.String()
}
