package driver

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jsgen/internal/astio"
)

type recordingSink struct {
	mu     sync.Mutex
	events map[string][]string
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	label := string(ev.Status)
	if ev.Stage != "" {
		label = string(ev.Stage)
	}
	s.events[filepath.Base(ev.File)] = append(s.events[filepath.Base(ev.File)], label)
}

func TestEmitPathsReportsProgress(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, filepath.Join(dir, "good.json"), greeting("x"), astio.FormatJSON)
	writeDoc(t, filepath.Join(dir, "bad.json"), broken(), astio.FormatJSON)

	sink := &recordingSink{events: map[string][]string{}}
	_, err := EmitPaths(context.Background(), []string{dir}, EmitOptions{NoWrite: true, Progress: sink})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][]string{
		"good.json": {"queued", "load", "decode", "check", "emit", "done"},
		"bad.json":  {"queued", "load", "decode", "check", "error"},
	}
	if diff := cmp.Diff(want, sink.events); diff != "" {
		t.Fatalf("progress mismatch (-want +got):\n%s", diff)
	}
}

func TestChannelSinkIgnoresNilChannel(t *testing.T) {
	ChannelSink{}.OnEvent(Event{File: "a"})

	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "a", Status: StatusDone})
	if ev := <-ch; ev.File != "a" || ev.Status != StatusDone {
		t.Fatalf("unexpected event %+v", ev)
	}
}
