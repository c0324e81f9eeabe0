package grid

// FindXWings scans for X-Wing patterns: a digit whose candidates
// occupy the same two cross-positions in exactly two lines of one
// orientation, letting it be removed from the rest of the two
// cross-lines. Digits are visited in ascending order, rows before
// columns per digit, line pairs in ascending index order; the scan
// stops at the first pair whose elimination changes any cell.
func (b *Board) FindXWings() (Finding, bool) {
	for d := 1; d <= 9; d++ {
		if f, ok := b.xwingOrientation(d, KindRow); ok {
			return f, true
		}
		if f, ok := b.xwingOrientation(d, KindColumn); ok {
			return f, true
		}
	}
	return Finding{}, false
}

func (b *Board) xwingOrientation(d int, kind UnitKind) (Finding, bool) {
	lines := b.rows[:]
	cross := b.columns[:]
	pos := ColumnOf
	if kind == KindColumn {
		lines = b.columns[:]
		cross = b.rows[:]
		pos = RowOf
	}

	for l1 := 0; l1 < 9; l1++ {
		p1 := xwingPositions(b, &lines[l1], d, pos)
		if len(p1) != 2 {
			continue
		}
		for l2 := l1 + 1; l2 < 9; l2++ {
			p2 := xwingPositions(b, &lines[l2], d, pos)
			if len(p2) != 2 || p1[0] != p2[0] || p1[1] != p2[1] {
				continue
			}
			changed := make([]int, 0, 14)
			for _, p := range p1 {
				for _, i := range cross[p].cells {
					if b.cells[i].Solved() {
						continue
					}
					if containsInt(lines[l1].cells[:], i) || containsInt(lines[l2].cells[:], i) {
						continue
					}
					if b.RemoveCandidate(i, d) {
						changed = append(changed, i)
					}
				}
			}
			if len(changed) > 0 {
				return Finding{
					Strategy: XWing,
					Kind:     kind,
					Index:    l1,
					Digits:   []int{d},
					Cells:    changed,
				}, true
			}
		}
	}
	return Finding{}, false
}

// xwingPositions returns the cross-positions in line where digit d is
// still a candidate, in ascending order.
func xwingPositions(b *Board, line *Unit, d int, pos func(int) int) []int {
	out := make([]int, 0, 9)
	for _, i := range line.unsolved {
		if b.cells[i].candidates.Has(d) {
			out = append(out, pos(i))
		}
	}
	return out
}
