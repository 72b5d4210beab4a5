package ui

import (
	"strings"
	"testing"

	"jsgen/internal/driver"
)

func TestProgressModelTracksUnits(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("emitting", []string{"a.json", "b.json"}, events).(*progressModel)

	m.Update(eventMsg{File: "a.json", Stage: driver.StageEmit, Status: driver.StatusWorking})
	m.Update(eventMsg{File: "b.json", Status: driver.StatusError})
	m.Update(eventMsg{File: "unknown.json", Status: driver.StatusDone})

	if got := m.items[0].status; got != "emitting" {
		t.Fatalf("a.json status = %q, want emitting", got)
	}
	if got := m.items[1].status; got != "error" {
		t.Fatalf("b.json status = %q, want error", got)
	}
	if m.failed != 1 {
		t.Fatalf("failed = %d, want 1", m.failed)
	}
	if got, want := m.percent(), (0.7+1.0)/2; got != want {
		t.Fatalf("percent = %v, want %v", got, want)
	}

	view := m.View()
	for _, want := range []string{"emitting (2 files), 1 failed", "a.json", "b.json"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	_, cmd := m.Update(doneMsg{})
	if cmd == nil || !m.done {
		t.Fatalf("done message should quit the program")
	}
	if !strings.Contains(m.View(), "done: emitting") {
		t.Fatalf("final view should be marked done:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.json", 20, "short.json"},
		{"some/long/path/file.json", 12, "some/long..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
