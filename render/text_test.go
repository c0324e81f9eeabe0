package render

import (
	"strings"
	"testing"

	"github.com/pflow-xyz/go-sudoku/grid"
)

const (
	scenarioPuzzle   = "030206050600708001000030000340109065002000900580403027000070000700902008010605070"
	scenarioSolution = "831296754625748391974531682347129865162857943589463127298374516756912438413685279"
)

func mustBoard(t *testing.T, puzzle string) *grid.Board {
	t.Helper()
	values := make([]int, 81)
	for i := range values {
		values[i] = int(puzzle[i] - '0')
	}
	b, err := grid.New(values)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	return b
}

func TestLine(t *testing.T) {
	b := mustBoard(t, scenarioPuzzle)
	if got := Line(b); got != scenarioPuzzle {
		t.Errorf("Line() = %s, want the givens back", got)
	}
	solved := mustBoard(t, scenarioSolution)
	if got := Line(solved); got != scenarioSolution {
		t.Errorf("Line() of solved board = %s", got)
	}
}

func TestCells(t *testing.T) {
	b := mustBoard(t, scenarioPuzzle)
	cells := Cells(b)
	if len(cells) != 81 {
		t.Fatalf("expected 81 cells, got %d", len(cells))
	}
	if cells[1] != "3" {
		t.Errorf("cell 1 = %q, want the given digit", cells[1])
	}
	if cells[0] != "1 2 3 4 5 6 7 8 9" {
		t.Errorf("fresh unsolved cell = %q", cells[0])
	}
}

func TestTextLayout(t *testing.T) {
	b := mustBoard(t, strings.Repeat("0", 81))
	text := Text(b)

	lines := strings.Split(text, "\n")
	// 9 rows of 3 bands each, plus 8 divider lines, plus the trailing
	// empty split element
	if len(lines) != 36 {
		t.Fatalf("expected 36 split lines, got %d", len(lines))
	}

	wantBand := strings.Join([]string{
		" 1 2 3 │ 1 2 3 │ 1 2 3",
		" 1 2 3 │ 1 2 3 │ 1 2 3",
		" 1 2 3 │ 1 2 3 │ 1 2 3",
	}, " ║")
	if lines[0] != wantBand {
		t.Errorf("first band = %q\nwant %q", lines[0], wantBand)
	}
	wantMid := strings.Join([]string{
		" 4 5 6 │ 4 5 6 │ 4 5 6",
		" 4 5 6 │ 4 5 6 │ 4 5 6",
		" 4 5 6 │ 4 5 6 │ 4 5 6",
	}, " ║")
	if lines[1] != wantMid {
		t.Errorf("middle band = %q\nwant %q", lines[1], wantMid)
	}

	lightDivider := strings.Join([]string{
		"───────┼───────┼───────",
		"───────┼───────┼───────",
		"───────┼───────┼───────",
	}, "╫")
	if lines[3] != lightDivider {
		t.Errorf("light divider = %q\nwant %q", lines[3], lightDivider)
	}
	heavyDivider := strings.Join([]string{
		"═══════╪═══════╪═══════",
		"═══════╪═══════╪═══════",
		"═══════╪═══════╪═══════",
	}, "╬")
	// rows 0,1,2 contribute 3 bands + 2 light dividers each... the
	// heavy divider follows row 2: index 3*3 + 2 = 11
	if lines[11] != heavyDivider {
		t.Errorf("heavy divider = %q\nwant %q", lines[11], heavyDivider)
	}
}

func TestTextSolvedCells(t *testing.T) {
	b := mustBoard(t, scenarioSolution)
	text := Text(b)
	lines := strings.Split(text, "\n")

	// a solved cell renders blank in the outer bands and centered in
	// the middle band
	if !strings.HasPrefix(lines[0], "      ") {
		t.Errorf("outer band of a solved cell should be blank: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "   8  ") {
		t.Errorf("middle band should center the value: %q", lines[1])
	}
	for _, ch := range []string{"│", "║"} {
		if !strings.Contains(lines[1], ch) {
			t.Errorf("separators missing from %q", lines[1])
		}
	}
}

func TestSVG(t *testing.T) {
	b := mustBoard(t, scenarioPuzzle)
	givens := make([]int, 81)
	for i := range givens {
		givens[i] = int(scenarioPuzzle[i] - '0')
	}

	svg := SVG(b, &SVGOptions{Givens: givens, ShowCandidates: true})
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("not a well-formed SVG document")
	}
	if !strings.Contains(svg, `font-weight="bold"`) {
		t.Error("givens should be drawn bold")
	}
	if !strings.Contains(svg, `font-size="12"`) {
		t.Error("candidates should be drawn when requested")
	}

	plain := SVG(b, &SVGOptions{})
	if strings.Contains(plain, `font-size="12"`) {
		t.Error("candidates drawn without ShowCandidates")
	}
	if strings.Contains(plain, `font-weight="bold"`) {
		t.Error("without Givens no value is bold")
	}

	if got := SVG(b, nil); got != plain {
		t.Error("nil options should equal zero options")
	}
}
