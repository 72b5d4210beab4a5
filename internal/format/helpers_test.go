package format

import (
	"testing"

	"jsgen/internal/ast"
)

func name(s string) *ast.NameRef { return ast.NewName(s) }

func call(fn string, args ...ast.Expr) *ast.ExprStmt {
	return ast.NewExprStmt(ast.NewCall(name(fn), args...))
}

func bin(op ast.BinaryOp, x, y ast.Expr) *ast.Binary { return ast.NewBinary(op, x, y) }

func block(stmts ...ast.Stmt) *ast.Block { return &ast.Block{Stmts: stmts} }

func prop(label string, value ast.Expr) *ast.Property {
	return &ast.Property{Label: ast.NewString(label), Value: value}
}

// render returns the pretty and compact renderings of n.
func render(t *testing.T, n ast.Node) (pretty, compact string) {
	t.Helper()
	out, err := Node(n, Options{})
	if err != nil {
		t.Fatalf("pretty rendering failed: %v", err)
	}
	min, err := Node(n, Options{Compact: true})
	if err != nil {
		t.Fatalf("compact rendering failed: %v", err)
	}
	return string(out), string(min)
}

type layoutCase struct {
	name    string
	node    ast.Node
	pretty  string
	compact string
}

func runLayoutCases(t *testing.T, tests []layoutCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pretty, compact := render(t, tt.node)
			if pretty != tt.pretty {
				t.Fatalf("pretty:\nwant %q\ngot  %q", tt.pretty, pretty)
			}
			if tt.compact != "" && compact != tt.compact {
				t.Fatalf("compact:\nwant %q\ngot  %q", tt.compact, compact)
			}
		})
	}
}
