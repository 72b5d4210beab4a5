package diagfmt

import (
	"encoding/json"
	"io"

	"jsgen/internal/diag"
)

// LocationJSON locates a diagnostic in an input document. Line and Column
// are 1-based and omitted when the node carried no position.
type LocationJSON struct {
	File   string `json:"file"`
	Path   string `json:"path,omitempty"`
	Offset uint32 `json:"offset,omitempty"`
	Line   uint32 `json:"line,omitempty"`
	Column uint32 `json:"column,omitempty"`
}

type NoteJSON struct {
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// DiagnosticJSON is one diagnostic in JSON form.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root of the JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// FileBag pairs an input file with its diagnostics.
type FileBag struct {
	File string
	Bag  *diag.Bag
}

// BuildDiagnosticsOutput builds the JSON structure without serializing it.
func BuildDiagnosticsOutput(files []FileBag, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	for _, fb := range files {
		if fb.Bag == nil {
			continue
		}
		name := formatPath(fb.File, opts.PathMode, opts.BaseDir)
		for _, d := range fb.Bag.Items() {
			if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
				out.Count = len(out.Diagnostics)
				return out
			}
			dj := DiagnosticJSON{
				Severity: d.Severity.String(),
				Code:     d.Code.ID(),
				Title:    d.Code.Title(),
				Message:  d.Message,
				Location: LocationJSON{File: name, Path: d.Path},
			}
			if opts.IncludePositions && d.HasPos {
				dj.Location.Offset = d.Pos.Offset
				dj.Location.Line = d.Pos.Line + 1
				dj.Location.Column = d.Pos.Column + 1
			}
			if opts.IncludeNotes {
				for _, n := range d.Notes {
					dj.Notes = append(dj.Notes, NoteJSON{Message: n.Msg, Path: n.Path})
				}
			}
			out.Diagnostics = append(out.Diagnostics, dj)
		}
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes the diagnostics of files as one indented JSON document.
func JSON(w io.Writer, files []FileBag, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(files, opts))
}
