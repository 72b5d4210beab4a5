package format_test

import (
	"testing"

	"jsgen/internal/ast"
	"jsgen/internal/format"
	"jsgen/internal/testkit"
)

func TestListenerPositionsMatchOutput(t *testing.T) {
	astral := ast.NewProgram()
	fn := astral.NewFunction(astral.Top, "greet")
	fn.Body.Stmts = []ast.Stmt{
		&ast.Return{X: ast.NewBinary(ast.OpAdd, ast.NewVerbatim("😀 é", '\''), ast.NewString(" "))},
	}
	astral.Add(ast.NewExprStmt(fn))

	for _, tc := range []struct {
		name   string
		prog   *ast.Program
		indent int
	}{
		{"corpus indent 2", format.Corpus(), 2},
		{"corpus indent 4", format.Corpus(), 4},
		{"astral", astral, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := &testkit.PositionRecorder{}
			out, err := format.Program(tc.prog, format.Options{IndentWidth: tc.indent, Listener: rec})
			if err != nil {
				t.Fatal(err)
			}
			if len(rec.Marks) == 0 {
				t.Fatalf("listener saw no line starts in:\n%s", out)
			}
			if err := testkit.CheckPositionInvariants(out, rec.Marks); err != nil {
				t.Fatalf("%v\noutput:\n%s", err, out)
			}
		})
	}
}
