package movelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// jsonEntry is the JSONL wire form of an Entry.
type jsonEntry struct {
	Seq   int    `json:"seq"`
	Cell  int    `json:"cell"`
	Kind  string `json:"kind"`
	Digit int    `json:"digit"`
}

const (
	kindAssign = "assign"
	kindRemove = "remove_candidate"
)

// WriteJSONL writes the log to w as JSON Lines, one entry object per
// line with a monotonically increasing sequence number.
func (l *Log) WriteJSONL(w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i, e := range l.entries {
		kind := kindAssign
		if e.Kind == RemoveCandidate {
			kind = kindRemove
		}
		rec := jsonEntry{Seq: i, Cell: e.Cell, Kind: kind, Digit: e.Digit}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding entry %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// SaveJSONL writes the log to a JSONL file.
func (l *Log) SaveJSONL(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()
	return l.WriteJSONL(f)
}

// ParseJSONL parses a log from JSON Lines. Entries must appear in
// sequence order; a gap or reordering is an error, since a move log is
// meaningful only in its original order.
func ParseJSONL(r io.Reader) (*Log, error) {
	log := New()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}
		var rec jsonEntry
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", lineNum, err)
		}
		if rec.Seq != log.Len() {
			return nil, fmt.Errorf("line %d: out-of-order seq %d, want %d", lineNum, rec.Seq, log.Len())
		}
		var kind Kind
		switch rec.Kind {
		case kindAssign:
			kind = Assign
		case kindRemove:
			kind = RemoveCandidate
		default:
			return nil, fmt.Errorf("line %d: unknown kind %q", lineNum, rec.Kind)
		}
		if rec.Cell < 0 || rec.Cell > 80 || rec.Digit < 1 || rec.Digit > 9 {
			return nil, fmt.Errorf("line %d: entry out of range", lineNum)
		}
		log.Append(Entry{Cell: rec.Cell, Kind: kind, Digit: rec.Digit})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	return log, nil
}

// LoadJSONL parses a log from a JSONL file.
func LoadJSONL(filename string) (*Log, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return ParseJSONL(f)
}
