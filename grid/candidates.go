package grid

import (
	"strconv"
	"strings"
)

// CandidateSet is a set of digits 1-9, stored as a bitmask with bit d
// representing digit d.
type CandidateSet uint16

const allCandidatesMask CandidateSet = 0b1111111110

// AllCandidates returns the full set {1..9}.
func AllCandidates() CandidateSet {
	return allCandidatesMask
}

// NewCandidateSet builds a set from the given digits. Digits outside
// 1-9 are ignored.
func NewCandidateSet(digits ...int) CandidateSet {
	var s CandidateSet
	for _, d := range digits {
		if d >= 1 && d <= 9 {
			s |= 1 << uint(d)
		}
	}
	return s
}

// Has reports whether digit d is in the set.
func (s CandidateSet) Has(d int) bool {
	return d >= 1 && d <= 9 && s&(1<<uint(d)) != 0
}

// With returns the set plus digit d.
func (s CandidateSet) With(d int) CandidateSet {
	if d < 1 || d > 9 {
		return s
	}
	return s | 1<<uint(d)
}

// Without returns the set minus digit d.
func (s CandidateSet) Without(d int) CandidateSet {
	if d < 1 || d > 9 {
		return s
	}
	return s &^ (1 << uint(d))
}

// Union returns the union of s and t.
func (s CandidateSet) Union(t CandidateSet) CandidateSet {
	return s | t
}

// Intersect returns the intersection of s and t.
func (s CandidateSet) Intersect(t CandidateSet) CandidateSet {
	return s & t
}

// Diff returns the digits of s not in t.
func (s CandidateSet) Diff(t CandidateSet) CandidateSet {
	return s &^ t
}

// SubsetOf reports whether every digit of s is in t.
func (s CandidateSet) SubsetOf(t CandidateSet) bool {
	return s&^t == 0
}

// Empty reports whether the set has no digits.
func (s CandidateSet) Empty() bool {
	return s&allCandidatesMask == 0
}

// Count returns the number of digits in the set.
func (s CandidateSet) Count() int {
	n := 0
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Single returns the set's only digit, or 0 if the set does not hold
// exactly one digit.
func (s CandidateSet) Single() int {
	if s.Count() != 1 {
		return 0
	}
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			return d
		}
	}
	return 0
}

// Digits returns the set's digits in ascending order.
func (s CandidateSet) Digits() []int {
	out := make([]int, 0, 9)
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the digits space-separated in ascending order, the
// notation used when rendering an unsolved cell.
func (s CandidateSet) String() string {
	parts := make([]string, 0, 9)
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			parts = append(parts, strconv.Itoa(d))
		}
	}
	return strings.Join(parts, " ")
}
