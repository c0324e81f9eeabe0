package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/pflow-xyz/go-sudoku/grid"
)

const (
	svgCell   = 60
	svgMargin = 10
)

// SVGOptions configures SVG rendering.
type SVGOptions struct {
	// Givens marks which cells were part of the original puzzle, so
	// they can be drawn heavier than deduced values. Nil draws every
	// solved value the same way.
	Givens []int

	// ShowCandidates draws remaining candidates as a small 3×3 grid
	// inside unsolved cells.
	ShowCandidates bool
}

// SVG renders the board as a standalone SVG document.
func SVG(b *grid.Board, opts *SVGOptions) string {
	if opts == nil {
		opts = &SVGOptions{}
	}
	size := svgMargin*2 + svgCell*9
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", size, size, size, size)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="white"/>`+"\n", size, size)

	// cell values and candidates
	for i := 0; i < 81; i++ {
		r, c := grid.RowOf(i), grid.ColumnOf(i)
		x := svgMargin + c*svgCell
		y := svgMargin + r*svgCell
		cell := b.Cell(i)
		if cell.Solved() {
			weight := "normal"
			fill := "#1565c0"
			if isGiven(opts.Givens, i) {
				weight = "bold"
				fill = "#212121"
			}
			fmt.Fprintf(&sb,
				`<text x="%d" y="%d" font-family="monospace" font-size="34" font-weight="%s" fill="%s" text-anchor="middle" dominant-baseline="central">%d</text>`+"\n",
				x+svgCell/2, y+svgCell/2, weight, fill, cell.Value())
			continue
		}
		if opts.ShowCandidates {
			for _, d := range cell.Candidates().Digits() {
				dx := (d - 1) % 3
				dy := (d - 1) / 3
				fmt.Fprintf(&sb,
					`<text x="%d" y="%d" font-family="monospace" font-size="12" fill="#9e9e9e" text-anchor="middle" dominant-baseline="central">%d</text>`+"\n",
					x+10+dx*20, y+10+dy*20, d)
			}
		}
	}

	// grid lines, heavy on box boundaries
	for k := 0; k <= 9; k++ {
		width := 1
		if k%3 == 0 {
			width = 3
		}
		p := svgMargin + k*svgCell
		fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#212121" stroke-width="%d"/>`+"\n",
			p, svgMargin, p, svgMargin+9*svgCell, width)
		fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#212121" stroke-width="%d"/>`+"\n",
			svgMargin, p, svgMargin+9*svgCell, p, width)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// SaveSVG renders the board and writes it to a file.
func SaveSVG(b *grid.Board, opts *SVGOptions, filename string) error {
	return os.WriteFile(filename, []byte(SVG(b, opts)), 0o644)
}

func isGiven(givens []int, i int) bool {
	return i < len(givens) && givens[i] != 0
}
