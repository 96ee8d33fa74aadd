package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)

	statusElapsedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	statusHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

type statusModel struct {
	start   time.Time
	elapsed time.Duration
}

func newStatusModel(open Record) statusModel {
	return statusModel{
		start:   open.Timestamp,
		elapsed: time.Since(open.Timestamp),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m statusModel) Init() tea.Cmd {
	return tick()
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.elapsed = time.Time(msg).Sub(m.start)
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m statusModel) View() string {
	return fmt.Sprintf("%s\n\nStarted at %s\nElapsed    %s\n\n%s\n",
		statusTitleStyle.Render("Tracking time..."),
		m.start.Format(timestampFormat),
		statusElapsedStyle.Render(FormatDuration(m.elapsed)),
		statusHelpStyle.Render("press q to quit"))
}
