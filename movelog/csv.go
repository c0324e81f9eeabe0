package movelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var csvHeader = []string{"seq", "cell", "kind", "digit"}

// WriteCSV writes the log to w as CSV with a header row. The kind
// column uses the same names as the JSONL format.
func (l *Log) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range l.entries {
		kind := kindAssign
		if e.Kind == RemoveCandidate {
			kind = kindRemove
		}
		rec := []string{
			strconv.Itoa(i),
			strconv.Itoa(e.Cell),
			kind,
			strconv.Itoa(e.Digit),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the log to a CSV file.
func (l *Log) SaveCSV(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()
	return l.WriteCSV(f)
}

// ParseCSV parses a log from CSV. The header row is required and
// entries must appear in sequence order, as in the JSONL format.
func ParseCSV(r io.Reader) (*Log, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return nil, fmt.Errorf("unexpected header column %d: %q, want %q", i, header[i], want)
		}
	}

	log := New()
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		seq, err := strconv.Atoi(rec[0])
		if err != nil || seq != log.Len() {
			return nil, fmt.Errorf("record %d: out-of-order seq %q", log.Len(), rec[0])
		}
		cell, err := strconv.Atoi(rec[1])
		if err != nil || cell < 0 || cell > 80 {
			return nil, fmt.Errorf("record %d: malformed cell %q", seq, rec[1])
		}
		var kind Kind
		switch rec[2] {
		case kindAssign:
			kind = Assign
		case kindRemove:
			kind = RemoveCandidate
		default:
			return nil, fmt.Errorf("record %d: unknown kind %q", seq, rec[2])
		}
		digit, err := strconv.Atoi(rec[3])
		if err != nil || digit < 1 || digit > 9 {
			return nil, fmt.Errorf("record %d: malformed digit %q", seq, rec[3])
		}
		log.Append(Entry{Cell: cell, Kind: kind, Digit: digit})
	}
	return log, nil
}

// LoadCSV parses a log from a CSV file.
func LoadCSV(filename string) (*Log, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}
