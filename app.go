package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	log *Log
	out io.Writer
}

func NewApp(path string) *App {
	return &App{log: NewLog(path), out: os.Stdout}
}

// Start appends a start record with the given timestamp.
func (a *App) Start(now time.Time) error {
	if err := a.log.Append(Record{Timestamp: now, Kind: KindStart}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Started tracking time...")
	return nil
}

// End appends an end record with the given timestamp.
func (a *App) End(now time.Time) error {
	if err := a.log.Append(Record{Timestamp: now, Kind: KindEnd}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Tracking stopped!")
	return nil
}

// Show reports the sessions recorded on the given date and their total.
func (a *App) Show(date time.Time) error {
	records, err := a.log.Records()
	if err != nil {
		return err
	}

	day := WithDate(records, date)
	if len(day) == 0 {
		fmt.Fprintf(a.out, "No records for %s\n", date.Format(dateFormat))
		return nil
	}

	fmt.Fprintf(a.out, "Records for %s\n", date.Format(dateFormat))

	headers := []string{"Start", "End", "Duration"}

	var rows [][]string
	totalDuration := time.Duration(0)

	for _, session := range Pair(day) {
		if session.Open {
			rows = append(rows, []string{
				session.Start.Timestamp.Format(clockFormat),
				"still running",
				"",
			})
			continue
		}

		duration := session.Duration()
		totalDuration += duration

		rows = append(rows, []string{
			session.Start.Timestamp.Format(clockFormat),
			session.End.Timestamp.Format(clockFormat),
			FormatDuration(duration),
		})
	}

	footers := []string{"", "Total:", FormatDuration(totalDuration)}
	PrintTable(a.out, headers, rows, footers)

	return nil
}

// OpenSession returns the trailing unmatched start record, or nil when the
// last record is an end or the file is empty.
func (a *App) OpenSession() (*Record, error) {
	records, err := a.log.Records()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	last := records[len(records)-1]
	if last.Kind != KindStart {
		return nil, nil
	}
	return &last, nil
}

// Status shows a live view of the open session, ticking until dismissed.
func (a *App) Status() error {
	open, err := a.OpenSession()
	if err != nil {
		return err
	}
	if open == nil {
		fmt.Fprintln(a.out, "No session running")
		return nil
	}

	p := tea.NewProgram(newStatusModel(*open))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("status view: %w", err)
	}
	return nil
}

// Import fetches unimported records from a companion API, appends them to
// the record file and marks them as imported on the server.
func (a *App) Import(url string) (string, error) {
	apiClient := NewAPIClient(url)

	remote, err := apiClient.GetUnimportedRecords()
	if err != nil {
		return "", err
	}
	if len(remote) == 0 {
		return "No records to import.", nil
	}

	records := make([]Record, 0, len(remote))
	ids := make([]int64, 0, len(remote))
	for _, r := range remote {
		kind, err := ParseKind(r.Kind)
		if err != nil {
			return "", fmt.Errorf("record %d: %w", r.ID, err)
		}
		records = append(records, Record{Timestamp: r.Timestamp.Local(), Kind: kind})
		ids = append(ids, r.ID)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})

	// the file must stay ordered oldest to newest, so refuse anything
	// older than what is already logged
	existing, err := a.log.Records()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	if len(existing) > 0 {
		newest := existing[len(existing)-1].Timestamp
		if records[0].Timestamp.Before(newest) {
			return "", fmt.Errorf("imported records start at %s, before the newest logged record %s",
				records[0].Timestamp.Format(timestampFormat), newest.Format(timestampFormat))
		}
	}

	if err := a.log.AppendAll(records); err != nil {
		return "", err
	}

	return apiClient.MarkRecordsAsImported(ids)
}
