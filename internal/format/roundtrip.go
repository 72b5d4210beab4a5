package format

import (
	"fmt"
	"strings"

	gojaast "github.com/dop251/goja/ast"
	"github.com/dop251/goja/parser"

	"jsgen/internal/ast"
)

// Reparse parses emitted code with an ECMAScript 5 parser and returns the
// number of top-level statements, not counting empty statements and
// function declarations.
func Reparse(name string, src []byte) (int, error) {
	prog, err := parser.ParseFile(nil, name, string(src), 0)
	if err != nil {
		return 0, fmt.Errorf("reparse %s: %w", name, err)
	}
	count := 0
	for _, st := range prog.Body {
		if _, ok := st.(*gojaast.EmptyStatement); ok {
			continue
		}
		if strings.Contains(fmt.Sprintf("%T", st), "Function") {
			continue
		}
		count++
	}
	return count, nil
}

// CheckRoundTrip renders prog with opt and re-parses the result, ensuring
// the output is valid and keeps the number of top-level statements.
func CheckRoundTrip(prog *ast.Program, opt Options) (ok bool, msg string) {
	out, err := Program(prog, opt)
	if err != nil {
		return false, "emit-check: emitter failed: " + err.Error()
	}
	if err := Verify("<emitted>", prog, out); err != nil {
		return false, "emit-check: " + err.Error()
	}
	return true, "emit-check: OK"
}

// Verify re-parses out, the rendering of prog, and compares top-level
// statement counts.
func Verify(name string, prog *ast.Program, out []byte) error {
	got, err := Reparse(name, out)
	if err != nil {
		return err
	}
	if want := topLevelCount(prog.Stmts); got != want {
		return fmt.Errorf("%d top-level statements after round-trip, want %d", got, want)
	}
	return nil
}

func topLevelCount(list []ast.Stmt) int {
	count := 0
	for _, s := range list {
		switch n := s.(type) {
		case *ast.Empty, *ast.DocComment:
			continue
		case *ast.Block:
			if n.Global {
				count += topLevelCount(n.Stmts)
				continue
			}
		case *ast.ExprStmt:
			if ast.IsFunctionDeclaration(n) {
				continue
			}
			if _, ok := ast.Unwrap(n.X).(*ast.DocComment); ok {
				continue
			}
		}
		count++
	}
	return count
}
