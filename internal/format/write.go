package format

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"fortio.org/safecast"

	"jsgen/internal/source"
)

// Listener observes line starts in a Writer; a source map generator can
// sample positions from it.
type Listener interface {
	// NewLined is called after a line break was written.
	NewLined(w *Writer)
	// IndentedAfterNewLine is called after pending indentation was written,
	// right before the first text of the line.
	IndentedAfterNewLine(w *Writer)
}

// Writer accumulates emitted text. Indentation is materialized lazily, just
// before the first text of a line, so blank lines carry no trailing
// whitespace. In compact mode optional whitespace and indentation are
// dropped. Line, column and offset are counted in UTF-16 code units, the
// unit JavaScript tooling uses.
type Writer struct {
	buf          []byte
	compact      bool
	indentWidth  int
	indentLevel  int
	justNewlined bool
	line         int
	column       int
	offset       int
	listener     Listener
}

// NewWriter creates a writer for the given options.
func NewWriter(opt Options) *Writer {
	opt = opt.withDefaults()
	return &Writer{
		buf:         make([]byte, 0, 1024),
		compact:     opt.Compact,
		indentWidth: opt.IndentWidth,
		listener:    opt.Listener,
	}
}

// Bytes returns the accumulated output. The slice aliases the buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return string(w.buf)
}

func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) Compact() bool { return w.compact }

// JustNewlined reports whether nothing was printed since the last line break.
func (w *Writer) JustNewlined() bool { return w.justNewlined }

func (w *Writer) Line() int   { return w.line }
func (w *Writer) Column() int { return w.column }
func (w *Writer) Offset() int { return w.offset }

// Pos returns the current position, 0-based.
func (w *Writer) Pos() source.Pos {
	return source.Pos{
		Offset: toUint32(w.offset),
		Line:   toUint32(w.line),
		Column: toUint32(w.column),
	}
}

func toUint32(v int) uint32 {
	u, err := safecast.Conv[uint32](v)
	if err != nil {
		panic(fmt.Errorf("format: position overflow: %w", err))
	}
	return u
}

func (w *Writer) maybeIndent() {
	if !w.justNewlined {
		return
	}
	w.justNewlined = false
	if w.compact || w.indentLevel == 0 {
		return
	}
	n := w.indentLevel * w.indentWidth
	for range n {
		w.buf = append(w.buf, ' ')
	}
	w.column += n
	w.offset += n
	if w.listener != nil {
		w.listener.IndentedAfterNewLine(w)
	}
}

// Print writes s. Line breaks inside s are counted but do not trigger
// indentation; use Newline for that.
func (w *Writer) Print(s string) {
	if s == "" {
		return
	}
	w.maybeIndent()
	w.buf = append(w.buf, s...)
	w.advance(s)
}

// PrintByte writes a single ASCII byte.
func (w *Writer) PrintByte(b byte) {
	w.maybeIndent()
	w.buf = append(w.buf, b)
	if b == '\n' {
		w.line++
		w.column = 0
	} else {
		w.column++
	}
	w.offset++
}

func (w *Writer) PrintRune(r rune) {
	if r < utf8.RuneSelf {
		w.PrintByte(byte(r))
		return
	}
	w.Print(string(r))
}

// PrintOpt writes s in pretty mode only.
func (w *Writer) PrintOpt(s string) {
	if !w.compact {
		w.Print(s)
	}
}

// PrintInt writes v in canonical decimal form.
func (w *Writer) PrintInt(v int64) {
	w.Print(strconv.FormatInt(v, 10))
}

// PrintFloat writes the shortest representation of v that reads back
// exactly, using the JavaScript spellings of the non-finite values.
func (w *Writer) PrintFloat(v float64) {
	switch {
	case math.IsNaN(v):
		w.Print("NaN")
	case math.IsInf(v, 1):
		w.Print("Infinity")
	case math.IsInf(v, -1):
		w.Print("-Infinity")
	default:
		w.Print(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

func (w *Writer) advance(s string) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		units := 1
		if size > 1 && r != utf8.RuneError {
			units = utf16.RuneLen(r)
		}
		w.offset += units
		if r == '\n' {
			w.line++
			w.column = 0
			continue
		}
		w.column += units
	}
}

// Newline ends the current line, also in compact mode.
func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.line++
	w.column = 0
	w.offset++
	w.justNewlined = true
	if w.listener != nil {
		w.listener.NewLined(w)
	}
}

// NewlineOpt ends the current line in pretty mode only.
func (w *Writer) NewlineOpt() {
	if !w.compact {
		w.Newline()
	}
}

// Space writes a mandatory space.
func (w *Writer) Space() { w.PrintByte(' ') }

// SpaceOpt writes a space in pretty mode only.
func (w *Writer) SpaceOpt() {
	if !w.compact {
		w.PrintByte(' ')
	}
}

// IndentIn increases the indentation level.
func (w *Writer) IndentIn() {
	w.indentLevel++
}

// IndentOut decreases the indentation level.
func (w *Writer) IndentOut() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
