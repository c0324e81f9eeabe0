package parser

import (
	"errors"
	"strings"
	"testing"
)

const scenarioPuzzle = "030206050600708001000030000340109065002000900580403027000070000700902008010605070"

func TestParseGivens(t *testing.T) {
	values, err := ParseGivens(scenarioPuzzle)
	if err != nil {
		t.Fatalf("ParseGivens failed: %v", err)
	}
	if len(values) != 81 {
		t.Fatalf("expected 81 values, got %d", len(values))
	}
	if values[0] != 0 || values[1] != 3 || values[80] != 0 {
		t.Errorf("wrong values at edges: %d %d %d", values[0], values[1], values[80])
	}
}

func TestParseGivensIgnoresWhitespace(t *testing.T) {
	spaced := ""
	for i := 0; i < 81; i += 9 {
		spaced += scenarioPuzzle[i:i+9] + "\n"
	}
	spaced = strings.ReplaceAll(spaced, "030", "0 3 0")

	values, err := ParseGivens(spaced)
	if err != nil {
		t.Fatalf("ParseGivens with whitespace failed: %v", err)
	}
	if values[1] != 3 {
		t.Errorf("expected 3 at cell 1, got %d", values[1])
	}
}

func TestParseGivensRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", scenarioPuzzle[:80]},
		{"long", scenarioPuzzle + "1"},
		{"letter", "a" + scenarioPuzzle[1:]},
		{"punctuation", strings.Replace(scenarioPuzzle, "0", ".", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGivens(tt.input)
			if err == nil {
				t.Fatal("expected parse error")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error should wrap ErrParse, got %v", err)
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	values, err := ParseReader(strings.NewReader(scenarioPuzzle + "\n"))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if len(values) != 81 {
		t.Fatalf("expected 81 values, got %d", len(values))
	}
}

func TestFromJSON(t *testing.T) {
	doc := []byte(`{"name":"scenario","givens":"` + scenarioPuzzle + `"}`)
	p, values, err := FromJSON(doc)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if p.Name != "scenario" {
		t.Errorf("expected name scenario, got %q", p.Name)
	}
	if len(values) != 81 || values[1] != 3 {
		t.Errorf("wrong givens: len=%d values[1]=%d", len(values), values[1])
	}
}

func TestFromJSONRejectsBadDocument(t *testing.T) {
	if _, _, err := FromJSON([]byte(`{`)); !errors.Is(err, ErrParse) {
		t.Errorf("invalid JSON should wrap ErrParse, got %v", err)
	}
	if _, _, err := FromJSON([]byte(`{"givens":"123"}`)); !errors.Is(err, ErrParse) {
		t.Errorf("short givens should wrap ErrParse, got %v", err)
	}
}
