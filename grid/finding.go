package grid

import (
	"fmt"
	"strings"
)

// Strategy identifies the elimination technique that produced a finding.
type Strategy int

const (
	NakedSubset Strategy = iota
	HiddenSubset
	NakedLine
	HiddenLine
	XWing
)

// String returns the technique name.
func (s Strategy) String() string {
	switch s {
	case NakedSubset:
		return "naked subset"
	case HiddenSubset:
		return "hidden subset"
	case NakedLine:
		return "naked line"
	case HiddenLine:
		return "hidden line"
	case XWing:
		return "x-wing"
	}
	return "unknown"
}

// Finding is a structured record of one effective deduction: which
// strategy fired, where, over which digits, and which cells lost
// candidates as a result. Strategies emit findings instead of
// formatting text themselves; presentation belongs to the consumer.
type Finding struct {
	Strategy Strategy
	Size     int      // subset size for subset strategies, 0 otherwise
	Kind     UnitKind // host unit kind; base orientation for an X-Wing
	Index    int      // host unit index; first base line for an X-Wing
	Digits   []int    // digits involved, ascending
	Cells    []int    // cells that lost at least one candidate, ascending
}

var subsetNames = map[int]string{1: "single", 2: "pair", 3: "triple", 4: "quadruple"}

// String renders a human-readable description of the finding.
func (f Finding) String() string {
	switch f.Strategy {
	case NakedSubset:
		return fmt.Sprintf("Found a naked %s in %s %d", subsetNames[f.Size], f.Kind, f.Index)
	case HiddenSubset:
		return fmt.Sprintf("Found a hidden %s in %s %d", subsetNames[f.Size], f.Kind, f.Index)
	case NakedLine:
		return fmt.Sprintf("Found a naked line for digit %s in Box %d", digitList(f.Digits), f.Index)
	case HiddenLine:
		return fmt.Sprintf("Found a hidden line for digit %s in %s %d", digitList(f.Digits), f.Kind, f.Index)
	case XWing:
		return fmt.Sprintf("Found an x-wing for digit %s on %ss", digitList(f.Digits), strings.ToLower(f.Kind.String()))
	}
	return "Found an unknown deduction"
}

func digitList(digits []int) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, ",")
}
