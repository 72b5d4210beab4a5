package diag

import (
	"fmt"

	"jsgen/internal/source"
)

type Note struct {
	Path string
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	// Path addresses the offending node from the program root.
	Path string
	// Pos is set when the node carried a source.Pos as its metadata.
	Pos    source.Pos
	HasPos bool
	Notes  []Note
}

func (d Diagnostic) String() string {
	loc := d.Path
	if d.HasPos {
		loc = fmt.Sprintf("%s (%s)", d.Path, d.Pos)
	}
	return fmt.Sprintf("%s %s %s: %s", d.Severity, d.Code.ID(), loc, d.Message)
}
