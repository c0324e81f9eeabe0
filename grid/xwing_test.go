package grid

import (
	"reflect"
	"testing"
)

func TestFindXWingsRows(t *testing.T) {
	b := emptyBoard(t)
	// digit 3 in rows 2 and 5 survives only at columns 1 and 7
	for _, r := range []int{2, 5} {
		for c := 0; c < 9; c++ {
			if c == 1 || c == 7 {
				continue
			}
			b.RemoveCandidate(r*9+c, 3)
		}
	}

	f, ok := b.FindXWings()
	if !ok {
		t.Fatal("x-wing not found")
	}
	if f.Strategy != XWing || f.Kind != KindRow || f.Index != 2 {
		t.Errorf("finding = %+v", f)
	}
	if !reflect.DeepEqual(f.Digits, []int{3}) {
		t.Errorf("digits = %v", f.Digits)
	}
	if len(f.Cells) != 14 {
		t.Errorf("expected 14 eliminations, got %d: %v", len(f.Cells), f.Cells)
	}

	for r := 0; r < 9; r++ {
		for _, c := range []int{1, 7} {
			has := b.Cell(r*9 + c).Candidates().Has(3)
			if r == 2 || r == 5 {
				if !has {
					t.Errorf("base cell r%dc%d lost its own digit", r, c)
				}
			} else if has {
				t.Errorf("cross cell r%dc%d should have lost 3", r, c)
			}
		}
	}
}

func TestFindXWingsColumns(t *testing.T) {
	b := emptyBoard(t)
	// digit 6 in columns 0 and 4 survives only at rows 3 and 8
	for _, c := range []int{0, 4} {
		for r := 0; r < 9; r++ {
			if r == 3 || r == 8 {
				continue
			}
			b.RemoveCandidate(r*9+c, 6)
		}
	}

	f, ok := b.FindXWings()
	if !ok {
		t.Fatal("x-wing not found")
	}
	if f.Kind != KindColumn || f.Index != 0 {
		t.Errorf("finding = %+v", f)
	}
	if !reflect.DeepEqual(f.Digits, []int{6}) {
		t.Errorf("digits = %v", f.Digits)
	}
	for _, r := range []int{3, 8} {
		for c := 0; c < 9; c++ {
			has := b.Cell(r*9 + c).Candidates().Has(6)
			if c == 0 || c == 4 {
				if !has {
					t.Errorf("base cell r%dc%d lost its own digit", r, c)
				}
			} else if has {
				t.Errorf("cross cell r%dc%d should have lost 6", r, c)
			}
		}
	}
}

func TestFindXWingsNothingOnPristineBoard(t *testing.T) {
	b := emptyBoard(t)
	if _, ok := b.FindXWings(); ok {
		t.Error("pristine board has no x-wings")
	}
}

func TestFindXWingsRequiresMatchingPositions(t *testing.T) {
	b := emptyBoard(t)
	// two lines with two carriers each, but at different columns
	for c := 0; c < 9; c++ {
		if c != 1 && c != 7 {
			b.RemoveCandidate(2*9+c, 3)
		}
		if c != 2 && c != 7 {
			b.RemoveCandidate(5*9+c, 3)
		}
	}
	if _, ok := b.FindXWings(); ok {
		t.Error("mismatched positions must not form an x-wing")
	}
}
