package main

import (
	"fmt"
	"time"
)

const (
	timestampFormat = "2006-01-02 15:04:05"
	dateFormat      = "2006-01-02"
	clockFormat     = "15:04:05"
)

// Kind is the type of a logged event.
type Kind int

const (
	KindStart Kind = iota
	KindEnd
)

func (k Kind) String() string {
	if k == KindEnd {
		return "end"
	}
	return "start"
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "start":
		return KindStart, nil
	case "end":
		return KindEnd, nil
	}
	return 0, fmt.Errorf("unknown record kind %q", s)
}

// Record is a single logged event, one line in the record file.
type Record struct {
	Timestamp time.Time
	Kind      Kind
}

// Line renders the record in its on-disk form, without the trailing newline.
func (r Record) Line() string {
	return r.Timestamp.Format(timestampFormat) + "\t" + r.Kind.String()
}

// Session is a start/end pair derived at report time. An open session has
// no end record yet.
type Session struct {
	Start Record
	End   Record
	Open  bool
}

func (s Session) Duration() time.Duration {
	if s.Open {
		return 0
	}
	return s.End.Timestamp.Sub(s.Start.Timestamp)
}

// ParseError reports a malformed line in the record file.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
