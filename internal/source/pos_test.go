package source

import "testing"

func TestPosString(t *testing.T) {
	p := Pos{Offset: 10, Line: 2, Column: 4}
	if got := p.String(); got != "3:5" {
		t.Fatalf("want %q, got %q", "3:5", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{Start: Pos{Offset: 4}, End: Pos{Offset: 8}}
	b := Span{Start: Pos{Offset: 2}, End: Pos{Offset: 6}}
	got := a.Cover(b)
	if got.Start.Offset != 2 || got.End.Offset != 8 {
		t.Fatalf("unexpected cover: %v", got)
	}
	if got.Len() != 6 {
		t.Fatalf("want len 6, got %d", got.Len())
	}
	if (Span{}).Empty() != true {
		t.Fatalf("zero span should be empty")
	}
}
