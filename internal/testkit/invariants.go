// Package testkit holds invariant checks shared by tests of the output sink
// and its callers.
package testkit

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"fortio.org/safecast"

	"jsgen/internal/format"
	"jsgen/internal/source"
)

// PositionRecorder is a format.Listener that samples the writer position at
// every line break and after every indentation, the way a source map
// generator would.
type PositionRecorder struct {
	Marks []source.Pos
}

func (r *PositionRecorder) NewLined(w *format.Writer) { r.Marks = append(r.Marks, w.Pos()) }

func (r *PositionRecorder) IndentedAfterNewLine(w *format.Writer) {
	r.Marks = append(r.Marks, w.Pos())
}

// CheckPositionInvariants verifies sampled positions against the emitted
// text:
// 1) marks are in non-decreasing offset order and within the output
// 2) each mark's Line and Column agree with its Offset, all counted in
//    UTF-16 code units the way the writer counts them
func CheckPositionInvariants(out []byte, marks []source.Pos) error {
	table, err := positionTable(out)
	if err != nil {
		return err
	}
	var prev source.Pos
	for i, m := range marks {
		if i > 0 && m.Before(prev) {
			return fmt.Errorf("mark %d at offset %d precedes mark %d at offset %d", i, m.Offset, i-1, prev.Offset)
		}
		prev = m
		if int(m.Offset) >= len(table) {
			return fmt.Errorf("mark %d offset %d beyond output of %d units", i, m.Offset, len(table)-1)
		}
		want := table[m.Offset]
		if m.Line != want.Line || m.Column != want.Column {
			return fmt.Errorf("mark %d at offset %d reports %d:%d, output has %d:%d",
				i, m.Offset, m.Line, m.Column, want.Line, want.Column)
		}
	}
	return nil
}

// positionTable maps every UTF-16 offset of out, plus the end offset, to
// its line and column.
func positionTable(out []byte) ([]source.Pos, error) {
	table := make([]source.Pos, 0, len(out)+1)
	var line, col uint32
	for i := 0; i < len(out); {
		r, size := utf8.DecodeRune(out[i:])
		i += size
		units := 1
		if size > 1 && r != utf8.RuneError {
			units = utf16.RuneLen(r)
		}
		for u := 0; u < units; u++ {
			offset, err := safecast.Conv[uint32](len(table))
			if err != nil {
				return nil, fmt.Errorf("output too large: %w", err)
			}
			table = append(table, source.Pos{Offset: offset, Line: line, Column: col + uint32(u)})
		}
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col += uint32(units)
	}
	offset, err := safecast.Conv[uint32](len(table))
	if err != nil {
		return nil, fmt.Errorf("output too large: %w", err)
	}
	return append(table, source.Pos{Offset: offset, Line: line, Column: col}), nil
}
