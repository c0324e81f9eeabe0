package movelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteText writes the log to w, one entry per line in the
// "<cell>=<digit>" / "<cell>-=<digit>" format.
func (l *Log) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range l.entries {
		if _, err := bw.WriteString(e.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Text returns the whole log as newline-terminated text lines.
func (l *Log) Text() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SaveText writes the log to a file.
func (l *Log) SaveText(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()
	return l.WriteText(f)
}

// ParseText parses a log from the text line format. Blank lines are
// skipped; any other malformed line is an error.
func ParseText(r io.Reader) (*Log, error) {
	log := New()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, err := ParseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		log.Append(entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	return log, nil
}

// LoadText parses a log from a text file.
func LoadText(filename string) (*Log, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return ParseText(f)
}

// ParseEntry parses a single "<cell>=<digit>" or "<cell>-=<digit>" line.
func ParseEntry(line string) (Entry, error) {
	kind := Assign
	sep := strings.Index(line, "-=")
	width := 2
	if sep >= 0 {
		kind = RemoveCandidate
	} else {
		sep = strings.Index(line, "=")
		width = 1
		if sep < 0 {
			return Entry{}, fmt.Errorf("malformed entry %q", line)
		}
	}

	cell, err := strconv.Atoi(line[:sep])
	if err != nil || cell < 0 || cell > 80 {
		return Entry{}, fmt.Errorf("malformed cell index in %q", line)
	}
	digit, err := strconv.Atoi(line[sep+width:])
	if err != nil || digit < 1 || digit > 9 {
		return Entry{}, fmt.Errorf("malformed digit in %q", line)
	}
	return Entry{Cell: cell, Kind: kind, Digit: digit}, nil
}
