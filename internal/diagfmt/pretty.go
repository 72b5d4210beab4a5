package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"jsgen/internal/diag"
)

// Pretty writes the diagnostics of one input in a human-readable form.
// It walks bag.Items() in order (callers sort first) and prints
//
//	<file>:<line>:<col>: <SEV> <CODE>: <Message> [at <tree path>]
//
// followed by indented notes when ShowNotes is set. Diagnostics without a
// source position use the tree path in place of line and column.
func Pretty(w io.Writer, file string, bag *diag.Bag, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	p := newPalette(opts.Color)
	name := formatPath(file, opts.PathMode, opts.BaseDir)
	for _, d := range bag.Items() {
		loc := name
		if d.HasPos {
			loc = fmt.Sprintf("%s:%s", name, d.Pos)
		}
		line := fmt.Sprintf("%s: %s %s: %s",
			p.loc.Sprint(loc),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message,
		)
		if d.Path != "" {
			line += p.path.Sprintf(" [at %s]", d.Path)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			msg := n.Msg
			if opts.Width > 0 {
				msg = diag.Snippet(msg, int(opts.Width))
			}
			if _, err := fmt.Fprintf(w, "    %s %s\n", p.note.Sprint("note:"), msg); err != nil {
				return err
			}
		}
	}
	return nil
}

type palette struct {
	loc  *color.Color
	code *color.Color
	path *color.Color
	note *color.Color
	err  *color.Color
	warn *color.Color
	info *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		loc:  color.New(color.Bold),
		code: color.New(color.FgMagenta),
		path: color.New(color.Faint),
		note: color.New(color.FgCyan),
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.loc, p.code, p.path, p.note, p.err, p.warn, p.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}
