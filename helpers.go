package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var tableHeaderStyle = lipgloss.NewStyle().Bold(true)

// styled reports whether w is a terminal, so the table header only gets
// ANSI styling when not piped.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func PrintTable(w io.Writer, headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	// print header, padding before styling so ANSI codes don't skew widths
	for i, header := range headers {
		cell := fmt.Sprintf("%-*s", colWidths[i], header)
		if styled(w) {
			cell = tableHeaderStyle.Render(cell)
		}
		fmt.Fprintf(w, "%s\t", cell)
	}
	fmt.Fprintln(w)

	// print rows
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprintf(w, "%-*s\t", colWidths[i], cell)
		}
		fmt.Fprintln(w)
	}

	// print footer
	for i, footer := range footers {
		if footer != "" {
			fmt.Fprintf(w, "%-*s\t", colWidths[i], footer)
		} else {
			// print empty space for skipped footer
			fmt.Fprintf(w, "%-*s\t", colWidths[i], "")
		}
	}
	fmt.Fprintln(w)
}

func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
