// Package parser handles puzzle input: plain 81-digit text and the
// JSON puzzle document format. Parsing failures are reported before
// any board is constructed.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
)

// ErrParse is the base error for malformed or short puzzle input.
var ErrParse = errors.New("parser: malformed puzzle input")

// ParseGivens reads a puzzle from text: exactly 81 decimal digits in
// row-major order, 0 meaning blank, with all whitespace ignored. Any
// other character, or a digit count other than 81, fails.
func ParseGivens(s string) ([]int, error) {
	values := make([]int, 0, 81)
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '0' && r <= '9':
			if len(values) == 81 {
				return nil, fmt.Errorf("%w: more than 81 digits", ErrParse)
			}
			values = append(values, int(r-'0'))
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrParse, r)
		}
	}
	if len(values) != 81 {
		return nil, fmt.Errorf("%w: got %d digits, want 81", ErrParse, len(values))
	}
	return values, nil
}

// ParseReader reads all input from r and parses it as puzzle text.
func ParseReader(r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle: %w", err)
	}
	return ParseGivens(string(data))
}

// ParseFile reads a puzzle text file.
func ParseFile(filename string) ([]int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening puzzle: %w", err)
	}
	defer f.Close()
	return ParseReader(f)
}

// Puzzle is the JSON puzzle document format:
//
//	{
//	  "name": "scenario",
//	  "givens": "030206050600708001..."
//	}
//
// The givens string follows the same 81-digit rules as plain text.
type Puzzle struct {
	Name   string `json:"name,omitempty"`
	Givens string `json:"givens"`
}

// FromJSON parses a puzzle document and returns its 81 given digits.
func FromJSON(data []byte) (*Puzzle, []int, error) {
	var p Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid JSON: %v", ErrParse, err)
	}
	values, err := ParseGivens(p.Givens)
	if err != nil {
		return nil, nil, err
	}
	return &p, values, nil
}
