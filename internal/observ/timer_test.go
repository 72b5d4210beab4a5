package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("decode")
	time.Sleep(time.Millisecond)
	tm.End(idx, "12 nodes")
	tm.End(idx+5, "ignored")
	tm.End(tm.Begin("emit"), "")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "decode" || r.Phases[1].Name != "emit" {
		t.Fatalf("unexpected phases %+v", r.Phases)
	}
	if r.Phases[0].DurationMS < 1 {
		t.Fatalf("decode should last at least 1ms, got %.3f", r.Phases[0].DurationMS)
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Fatalf("total %.3f below a phase", r.TotalMS)
	}
	if !strings.Contains(tm.Summary(), "// 12 nodes") {
		t.Fatalf("summary lost the note:\n%s", tm.Summary())
	}
}

func TestReportMerge(t *testing.T) {
	a := Report{TotalMS: 3, Phases: []PhaseReport{{Name: "decode", DurationMS: 1, Note: "x"}, {Name: "emit", DurationMS: 2}}}
	b := Report{TotalMS: 5, Phases: []PhaseReport{{Name: "emit", DurationMS: 4}, {Name: "write", DurationMS: 1}}}
	var sum Report
	sum.Merge(a)
	sum.Merge(b)
	want := []PhaseReport{{Name: "decode", DurationMS: 1}, {Name: "emit", DurationMS: 6}, {Name: "write", DurationMS: 1}}
	if len(sum.Phases) != len(want) {
		t.Fatalf("want %d phases, got %+v", len(want), sum.Phases)
	}
	for i := range want {
		if sum.Phases[i] != want[i] {
			t.Fatalf("phase %d: want %+v, got %+v", i, want[i], sum.Phases[i])
		}
	}
	if sum.TotalMS != 8 {
		t.Fatalf("want total 8, got %v", sum.TotalMS)
	}
}

func TestNilTimerReport(t *testing.T) {
	var tm *Timer
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer should report nothing")
	}
}
