package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStatusModelTick(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	m := statusModel{start: start}

	updated, cmd := m.Update(tickMsg(start.Add(90 * time.Minute)))
	sm, ok := updated.(statusModel)
	if !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
	if sm.elapsed != 90*time.Minute {
		t.Errorf("expected 90m elapsed, got %v", sm.elapsed)
	}
	if cmd == nil {
		t.Error("expected a follow-up tick command")
	}
}

func TestStatusModelQuitKeys(t *testing.T) {
	m := statusModel{start: time.Now()}

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch key {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}

		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("key %q should quit", key)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q produced %T, want tea.QuitMsg", key, cmd())
		}
	}
}

func TestStatusModelView(t *testing.T) {
	m := statusModel{
		start:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
		elapsed: 8*time.Hour + 30*time.Minute,
	}

	view := m.View()
	if !strings.Contains(view, "8:30:00") {
		t.Errorf("view missing elapsed duration:\n%s", view)
	}
	if !strings.Contains(view, "2024-01-01 09:00:00") {
		t.Errorf("view missing start time:\n%s", view)
	}
}
