package grid

// UnitKind is the closed set of unit families.
type UnitKind int

const (
	KindRow UnitKind = iota
	KindColumn
	KindBox
)

// String returns the unit family name.
func (k UnitKind) String() string {
	switch k {
	case KindRow:
		return "Row"
	case KindColumn:
		return "Column"
	case KindBox:
		return "Box"
	}
	return "Unknown"
}

// Unit is an ordered group of exactly 9 cells: one row, column or box.
// Cells are referenced by index into the owning Board; the unsolved
// sub-sequence is maintained in ascending cell order as cells get
// solved.
type Unit struct {
	kind     UnitKind
	index    int
	cells    [9]int
	unsolved []int
}

// Kind returns the unit family.
func (u *Unit) Kind() UnitKind { return u.kind }

// Index returns the unit's index within its family, 0-8.
func (u *Unit) Index() int { return u.index }

// Cells returns the unit's cell indices in fixed order.
func (u *Unit) Cells() []int {
	out := make([]int, 9)
	copy(out, u.cells[:])
	return out
}

// Unsolved returns the currently unsolved cell indices in ascending
// order.
func (u *Unit) Unsolved() []int {
	out := make([]int, len(u.unsolved))
	copy(out, u.unsolved)
	return out
}

// IsValid reports whether the solved values in the unit are pairwise
// distinct. The cell count is fixed at 9 by construction.
func (u *Unit) IsValid(b *Board) bool {
	var seen CandidateSet
	for _, i := range u.cells {
		v := b.cells[i].value
		if v == 0 {
			continue
		}
		if seen.Has(v) {
			return false
		}
		seen = seen.With(v)
	}
	return true
}

// SolvedValues returns the set of digits already placed in the unit.
func (u *Unit) SolvedValues(b *Board) CandidateSet {
	var s CandidateSet
	for _, i := range u.cells {
		if v := b.cells[i].value; v != 0 {
			s = s.With(v)
		}
	}
	return s
}

// FindNakedSubset scans all n-combinations of the unit's unsolved
// cells in ascending order. When a combination's candidate union has
// exactly n digits, those digits are removed from every other unsolved
// cell of the unit. The scan stops at the first combination that
// changes any other cell. Callers must have exhausted smaller subsets
// first.
func (u *Unit) FindNakedSubset(b *Board, n int) (Finding, bool) {
	uns := u.unsolved
	var found Finding
	progress := false
	combinations(len(uns), n, func(combo []int) bool {
		var union CandidateSet
		for _, k := range combo {
			union = union.Union(b.cells[uns[k]].candidates)
		}
		if union.Count() != n {
			return false
		}
		changed := make([]int, 0, len(uns))
		digits := union.Digits()
		for z, i := range uns {
			if containsInt(combo, z) {
				continue
			}
			cellChanged := false
			for _, d := range digits {
				cellChanged = b.RemoveCandidate(i, d) || cellChanged
			}
			if cellChanged {
				changed = append(changed, i)
			}
		}
		if len(changed) == 0 {
			return false
		}
		found = Finding{
			Strategy: NakedSubset,
			Size:     n,
			Kind:     u.kind,
			Index:    u.index,
			Digits:   digits,
			Cells:    changed,
		}
		progress = true
		return true
	})
	return found, progress
}

// FindHiddenSubset builds, per digit, the set of unsolved positions
// still carrying it, then scans all n-combinations of digits in
// ascending order. When a combination's positions union has exactly n
// members, each of those cells is restricted to exactly the n digits.
// Returns on the first effective combination. n=1 is the hidden-single
// case. A restriction that empties a candidate set returns
// ErrContradiction.
func (u *Unit) FindHiddenSubset(b *Board, n int) (Finding, bool, error) {
	uns := u.unsolved

	// positions[k] is the set of unsolved-list indices carrying digit
	// digits[k].
	digits := make([]int, 0, 9)
	positions := make([]CandidateSet, 0, 9)
	for d := 1; d <= 9; d++ {
		var pos CandidateSet
		for z, i := range uns {
			if b.cells[i].candidates.Has(d) {
				// unsolved lists never exceed 9 members, so positions
				// reuse the 9-bit set with bit z+1.
				pos = pos.With(z + 1)
			}
		}
		if !pos.Empty() {
			digits = append(digits, d)
			positions = append(positions, pos)
		}
	}

	var found Finding
	progress := false
	var ferr error
	combinations(len(digits), n, func(combo []int) bool {
		var union CandidateSet
		allowed := NewCandidateSet()
		for _, k := range combo {
			union = union.Union(positions[k])
			allowed = allowed.With(digits[k])
		}
		if union.Count() != n {
			return false
		}
		changed := make([]int, 0, n)
		for _, z := range union.Digits() {
			i := uns[z-1]
			ch, err := b.RestrictCandidates(i, allowed)
			if err != nil {
				ferr = err
				return true
			}
			if ch {
				changed = append(changed, i)
			}
		}
		if len(changed) == 0 {
			return false
		}
		found = Finding{
			Strategy: HiddenSubset,
			Size:     n,
			Kind:     u.kind,
			Index:    u.index,
			Digits:   allowed.Digits(),
			Cells:    changed,
		}
		progress = true
		return true
	})
	if ferr != nil {
		return Finding{}, false, ferr
	}
	return found, progress, nil
}

// FindNakedLine applies pointing-pair elimination for a box: any digit
// whose remaining candidate cells all share one row (or one column) of
// the box is removed from the rest of that row (or column) outside the
// box. Effects accumulate across all nine digits before returning.
// Only meaningful for box units; other kinds report no progress.
func (u *Unit) FindNakedLine(b *Board) ([]Finding, bool) {
	if u.kind != KindBox {
		return nil, false
	}
	var findings []Finding
	for d := 1; d <= 9; d++ {
		carriers := u.carriers(b, d)
		if len(carriers) == 0 {
			continue
		}
		if r, ok := sharedLine(carriers, RowOf); ok {
			if cells := b.eliminateOutside(&b.rows[r], u, d); len(cells) > 0 {
				findings = append(findings, Finding{
					Strategy: NakedLine,
					Kind:     u.kind,
					Index:    u.index,
					Digits:   []int{d},
					Cells:    cells,
				})
			}
		}
		if c, ok := sharedLine(carriers, ColumnOf); ok {
			if cells := b.eliminateOutside(&b.columns[c], u, d); len(cells) > 0 {
				findings = append(findings, Finding{
					Strategy: NakedLine,
					Kind:     u.kind,
					Index:    u.index,
					Digits:   []int{d},
					Cells:    cells,
				})
			}
		}
	}
	return findings, len(findings) > 0
}

// FindHiddenLine applies box-line reduction for a row or column: any
// digit whose remaining candidate cells all lie in a single box is
// removed from that box's other unsolved cells. Effects accumulate
// across all nine digits before returning. Only meaningful for row and
// column units; box units report no progress.
func (u *Unit) FindHiddenLine(b *Board) ([]Finding, bool) {
	if u.kind == KindBox {
		return nil, false
	}
	var findings []Finding
	for d := 1; d <= 9; d++ {
		carriers := u.carriers(b, d)
		if len(carriers) == 0 {
			continue
		}
		if bx, ok := sharedLine(carriers, BoxOf); ok {
			if cells := b.eliminateOutside(&b.boxes[bx], u, d); len(cells) > 0 {
				findings = append(findings, Finding{
					Strategy: HiddenLine,
					Kind:     u.kind,
					Index:    u.index,
					Digits:   []int{d},
					Cells:    cells,
				})
			}
		}
	}
	return findings, len(findings) > 0
}

// carriers returns the unit's unsolved cells still holding digit d as
// a candidate, in ascending order.
func (u *Unit) carriers(b *Board, d int) []int {
	out := make([]int, 0, 9)
	for _, i := range u.unsolved {
		if b.cells[i].candidates.Has(d) {
			out = append(out, i)
		}
	}
	return out
}

// sharedLine reports the common value of proj over cells, if there is
// one.
func sharedLine(cells []int, proj func(int) int) (int, bool) {
	line := proj(cells[0])
	for _, i := range cells[1:] {
		if proj(i) != line {
			return 0, false
		}
	}
	return line, true
}

// eliminateOutside removes digit d from every unsolved cell of target
// that does not belong to host, returning the cells changed.
func (b *Board) eliminateOutside(target, host *Unit, d int) []int {
	changed := make([]int, 0, 6)
	for _, i := range target.cells {
		if b.cells[i].Solved() {
			continue
		}
		if containsInt(host.cells[:], i) {
			continue
		}
		if b.RemoveCandidate(i, d) {
			changed = append(changed, i)
		}
	}
	return changed
}

// combinations calls fn with each ascending n-combination of indices
// 0..m-1 in lexicographic order, stopping early when fn returns true.
func combinations(m, n int, fn func([]int) bool) {
	if n <= 0 || n > m {
		return
	}
	combo := make([]int, n)
	for i := range combo {
		combo[i] = i
	}
	for {
		if fn(combo) {
			return
		}
		// advance to the next lexicographic combination
		i := n - 1
		for i >= 0 && combo[i] == m-n+i {
			i--
		}
		if i < 0 {
			return
		}
		combo[i]++
		for j := i + 1; j < n; j++ {
			combo[j] = combo[j-1] + 1
		}
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
