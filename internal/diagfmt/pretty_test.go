package diagfmt

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"jsgen/internal/diag"
	"jsgen/internal/source"
)

func sampleBag() *diag.Bag {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.NameUndefinedLabel,
		Message:  `label "outer" is not defined`,
		Path:     "program.stmts[1]",
		Pos:      source.Pos{Offset: 14, Line: 1, Column: 2},
		HasPos:   true,
		Notes:    []diag.Note{{Path: "program.stmts[1]", Msg: "in: break   outer;"}},
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.TreeEmptyDocComment,
		Message:  "doc comment has no tags",
		Path:     "program.stmts[0]",
	})
	return bag
}

func TestPrettyPlain(t *testing.T) {
	var buf bytes.Buffer
	opts := PrettyOpts{ShowNotes: true, Width: 12}
	if err := Pretty(&buf, "src/app.json", sampleBag(), opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := "src/app.json:2:3: ERROR NAM2004: label \"outer\" is not defined [at program.stmts[1]]\n" +
		"    note: in: break...\n" +
		"src/app.json: WARNING TRE1006: doc comment has no tags [at program.stmts[0]]\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyHidesNotes(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, "a.json", sampleBag(), PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if strings.Contains(buf.String(), "note:") {
		t.Fatalf("notes printed without ShowNotes:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, "a.json", sampleBag(), PrettyOpts{Color: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", buf.String())
	}
}

func TestPathModes(t *testing.T) {
	tests := []struct {
		name string
		mode PathMode
		base string
		want string
	}{
		{name: "auto", mode: PathModeAuto, want: "project/src/test.json"},
		{name: "basename", mode: PathModeBasename, want: "test.json"},
		{name: "relative", mode: PathModeRelative, base: "project", want: "src/test.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatPath("project/src/test.json", tt.mode, tt.base)
			if got != filepath.FromSlash(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrettyNilBag(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, "a.json", nil, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
