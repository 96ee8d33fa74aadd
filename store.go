package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// Log is the append-only record file. Records are one per line, a timestamp
// and a kind separated by a tab, oldest first.
type Log struct {
	path string
}

func NewLog(path string) *Log {
	return &Log{path: path}
}

// Append writes a single record to the end of the file, creating it if needed.
func (l *Log) Append(r Record) error {
	return l.AppendAll([]Record{r})
}

// AppendAll writes records in order through a single file handle.
func (l *Log) AppendAll(records []Record) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	for _, r := range records {
		if _, err := fmt.Fprintln(f, r.Line()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	return nil
}

// Records reads and parses the whole file. The first malformed line aborts
// the read with a ParseError; the log is assumed well formed.
func (l *Log) Records() ([]Record, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for number := 1; scanner.Scan(); number++ {
		line := scanner.Text()
		record, err := ParseRecord(line)
		if err != nil {
			return nil, &ParseError{Line: number, Text: line, Err: err}
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read record file: %w", err)
	}

	return records, nil
}

// ParseRecord parses one line of the record file.
func ParseRecord(line string) (Record, error) {
	parts := strings.Split(line, "\t")
	if len(parts) != 2 {
		return Record{}, fmt.Errorf("expected 2 tab-separated fields, got %d", len(parts))
	}

	timestamp, err := time.ParseInLocation(timestampFormat, parts[0], time.Local)
	if err != nil {
		return Record{}, fmt.Errorf("bad timestamp %q", parts[0])
	}

	kind, err := ParseKind(parts[1])
	if err != nil {
		return Record{}, err
	}

	return Record{Timestamp: timestamp, Kind: kind}, nil
}

// WithDate selects the records whose date component equals d, preserving
// file order.
func WithDate(records []Record, d time.Time) []Record {
	year, month, day := d.Date()

	var out []Record
	for _, r := range records {
		ry, rm, rd := r.Timestamp.Date()
		if ry == year && rm == month && rd == day {
			out = append(out, r)
		}
	}
	return out
}

// Pair walks records two at a time, first of each pair as start and second
// as end. Pairing is purely positional. An odd trailing record becomes an
// open session.
func Pair(records []Record) []Session {
	var sessions []Session
	for i := 0; i+1 < len(records); i += 2 {
		sessions = append(sessions, Session{Start: records[i], End: records[i+1]})
	}
	if len(records)%2 == 1 {
		sessions = append(sessions, Session{Start: records[len(records)-1], Open: true})
	}
	return sessions
}
