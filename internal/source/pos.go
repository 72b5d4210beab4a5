// Package source holds position types shared by the AST producer, the
// diagnostics layer and the output sink.
package source

import "fmt"

// Pos is a location in a text buffer. Line and Column are 0-based, Offset is
// the absolute position from the start of the buffer. All three count UTF-16
// code units so they line up with what JavaScript tooling expects.
type Pos struct {
	Offset uint32
	Line   uint32
	Column uint32
}

// NoPos is the zero position; it is also the first character of a buffer,
// so callers that need "unknown" should carry a *Pos or an ok flag.
var NoPos = Pos{}

// String renders the position as 1-based line:column, the way editors show it.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Before reports whether p lies strictly before other.
func (p Pos) Before(other Pos) bool {
	return p.Offset < other.Offset
}

// Span is a half-open range of positions.
type Span struct {
	Start Pos
	End   Pos
}

// Empty reports whether the span covers no text.
func (s Span) Empty() bool {
	return s.Start.Offset == s.End.Offset
}

// Len returns the span length in UTF-16 code units.
func (s Span) Len() uint32 {
	return s.End.Offset - s.Start.Offset
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start.Before(s.Start) {
		s.Start = other.Start
	}
	if s.End.Before(other.End) {
		s.End = other.End
	}
	return s
}
