package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testLog(t *testing.T) *Log {
	t.Helper()
	return NewLog(filepath.Join(t.TempDir(), "records.log"))
}

func TestAppendRoundTrip(t *testing.T) {
	l := testLog(t)

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	end := time.Date(2024, 1, 1, 17, 30, 0, 0, time.Local)

	if err := l.Append(Record{Timestamp: start, Kind: KindStart}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	if err := l.Append(Record{Timestamp: end, Kind: KindEnd}); err != nil {
		t.Fatalf("append end: %v", err)
	}

	records, err := l.Records()
	if err != nil {
		t.Fatalf("read records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[0].Timestamp.Equal(start) || records[0].Kind != KindStart {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if !records[1].Timestamp.Equal(end) || records[1].Kind != KindEnd {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestRecordsMissingFile(t *testing.T) {
	_, err := testLog(t).Records()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestRecordsReportsBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.log")
	content := "2024-01-01 09:00:00\tstart\nnot a record\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewLog(path).Records()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Line != 2 {
		t.Errorf("expected line 2, got %d", parseErr.Line)
	}
	if parseErr.Text != "not a record" {
		t.Errorf("unexpected offending text: %q", parseErr.Text)
	}
}

func TestParseRecordRejectsMalformedLines(t *testing.T) {
	lines := []string{
		"",
		"2024-01-01 09:00:00",
		"2024-01-01 09:00:00\tmaybe",
		"not a timestamp\tstart",
		"2024-01-01 09:00:00\tstart\textra",
		"2024-01-01, 09:00\tstart",
	}

	for _, line := range lines {
		if _, err := ParseRecord(line); err == nil {
			t.Errorf("expected parse error for %q", line)
		}
	}
}

func TestWithDate(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	records := []Record{
		{Timestamp: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local), Kind: KindStart},
		{Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local), Kind: KindEnd},
		{Timestamp: time.Date(2024, 1, 1, 11, 0, 0, 0, time.Local), Kind: KindStart},
		{Timestamp: time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local), Kind: KindStart},
		{Timestamp: time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local), Kind: KindEnd},
	}

	day := WithDate(records, d1)
	if len(day) != 3 {
		t.Fatalf("expected 3 records, got %d", len(day))
	}
	for i := 1; i < len(day); i++ {
		if day[i].Timestamp.Before(day[i-1].Timestamp) {
			t.Error("file order not preserved")
		}
	}
}

func TestWithDateEmpty(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	if got := WithDate(nil, d); len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}

func TestPairComplete(t *testing.T) {
	records := []Record{
		{Timestamp: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local), Kind: KindStart},
		{Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local), Kind: KindEnd},
		{Timestamp: time.Date(2024, 1, 1, 11, 0, 0, 0, time.Local), Kind: KindStart},
		{Timestamp: time.Date(2024, 1, 1, 12, 30, 0, 0, time.Local), Kind: KindEnd},
	}

	sessions := Pair(records)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Duration() != time.Hour {
		t.Errorf("unexpected first duration: %v", sessions[0].Duration())
	}
	if sessions[1].Duration() != 90*time.Minute {
		t.Errorf("unexpected second duration: %v", sessions[1].Duration())
	}
}

func TestPairTrailingOpen(t *testing.T) {
	records := []Record{
		{Timestamp: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local), Kind: KindStart},
	}

	sessions := Pair(records)
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if !sessions[0].Open {
		t.Error("expected open session")
	}
	if sessions[0].Duration() != 0 {
		t.Errorf("open session should contribute zero, got %v", sessions[0].Duration())
	}
}

func TestPairEmpty(t *testing.T) {
	if sessions := Pair(nil); len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

// Pairing is purely positional, so a malformed log produces a session
// rather than an error.
func TestPairPositional(t *testing.T) {
	records := []Record{
		{Timestamp: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local), Kind: KindStart},
		{Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local), Kind: KindStart},
	}

	sessions := Pair(records)
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].Open {
		t.Error("positional pairing should not mark this session open")
	}
}
