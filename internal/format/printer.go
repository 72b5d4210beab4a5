package format

import (
	"errors"

	"jsgen/internal/ast"
	"jsgen/internal/diag"
)

// printer walks one tree. It is created per emission and never reused.
type printer struct {
	w   *Writer
	opt Options

	// needSemi is set by the statement just printed when it wants a
	// terminator; the enclosing statement loop or construct consumes it.
	needSemi bool
	// optionalSemi marks a terminator that pretty output may omit inside a
	// statement list (break, do-while).
	optionalSemi bool
}

// Program renders a whole program.
func Program(prog *ast.Program, opt Options) ([]byte, error) {
	if prog == nil {
		return nil, errors.New("format: nil program")
	}
	return Node(prog, opt)
}

// Node renders any node, including the non-statement parts of the tree
// (Var, Property, Case, Catch and the like).
func Node(n ast.Node, opt Options) ([]byte, error) {
	w := NewWriter(opt)
	if err := Fprint(w, n, opt); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Fprint renders n into w. Layout settings come from w; opt contributes
// Truncate. A contract violation in the tree aborts rendering and is
// returned as a *diag.ContractError; w then holds partial output.
func Fprint(w *Writer, n ast.Node, opt Options) (err error) {
	if w == nil {
		return errors.New("format: nil writer")
	}
	if n == nil {
		return errors.New("format: nil node")
	}
	defer diag.RecoverContract(&err)
	p := &printer{w: w, opt: opt}
	p.node(n)
	return nil
}

// Debug renders n truncated, for diagnostics and logs.
func Debug(n ast.Node) string {
	out, err := Node(n, Options{Truncate: true})
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(out)
}

func (p *printer) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Program:
		p.stmtList(n.Stmts, p.opt.Truncate)
	case *ast.Var:
		p.varDecl(n, false)
	case *ast.Parameter:
		p.w.Print(n.Name)
	case *ast.Property:
		p.property(n)
	case *ast.Case:
		p.switchMember(n)
	case *ast.Default:
		p.switchMember(n)
	case *ast.Catch:
		p.catchClause(n)
	case ast.Stmt:
		p.stmt(n)
		p.terminate(false)
	case ast.Expr:
		p.expr(n)
	default:
		violation(n, "", "unexpected node %T", n)
	}
}

// stmtList prints statements one per line. Empty statements are dropped.
func (p *printer) stmtList(list []ast.Stmt, truncate bool) {
	count := 0
	for _, s := range list {
		if _, ok := s.(*ast.Empty); ok {
			continue
		}
		if truncate && count >= truncateLimit {
			p.w.Print("[...]")
			p.w.NewlineOpt()
			break
		}
		count++
		if s == nil {
			violation(nil, "Stmts", "nil statement at index %d", count-1)
		}
		p.stmt(s)
		p.terminate(true)
	}
}

// terminate consumes needSemi and ends the line unless a block close already
// did.
func (p *printer) terminate(inList bool) {
	if p.needSemi && (p.w.Compact() || !inList || !p.optionalSemi) {
		p.w.PrintByte(';')
	}
	p.needSemi = false
	p.optionalSemi = false
	if !p.w.JustNewlined() {
		p.w.NewlineOpt()
	}
}

// block prints a braced block. newline controls the line break after the
// closing brace; function bodies and do-while bodies go without.
func (p *printer) block(b *ast.Block, newline bool) {
	if b.Global {
		p.stmtList(b.Stmts, p.opt.Truncate)
		p.needSemi = false
		return
	}
	p.bracedBlock(b.Stmts, newline)
}

func (p *printer) bracedBlock(list []ast.Stmt, newline bool) {
	p.w.PrintByte('{')
	if hasStatements(list) {
		p.w.IndentIn()
		p.w.NewlineOpt()
		p.stmtList(list, p.opt.Truncate)
		p.w.IndentOut()
	}
	p.w.PrintByte('}')
	if newline {
		p.w.NewlineOpt()
	}
	p.needSemi = false
	p.optionalSemi = false
}

func hasStatements(list []ast.Stmt) bool {
	for _, s := range list {
		if _, ok := s.(*ast.Empty); !ok {
			return true
		}
	}
	return false
}

// nestedBody prints the body of if, else, loops and do. Blocks keep their
// braces, other statements go on an indented line of their own. space asks
// for a mandatory space between the preceding keyword and a non-block body.
func (p *printer) nestedBody(s ast.Stmt, space, newline bool) {
	switch b := s.(type) {
	case *ast.Block:
		p.w.SpaceOpt()
		p.bracedBlock(b.Stmts, newline)
		return
	case *ast.Empty:
		p.needSemi = true
		p.optionalSemi = false
		return
	}
	if space && p.w.Compact() {
		p.w.Space()
	}
	p.w.IndentIn()
	p.w.NewlineOpt()
	p.stmt(s)
	p.w.IndentOut()
	p.optionalSemi = false
}

func violation(n ast.Node, field, format string, args ...any) {
	kind := "Node"
	if n != nil {
		kind = n.Kind().String()
	}
	diag.Violation(kind, field, format, args...)
}

// need reports a missing required child of n.
func need(n ast.Node, field string, child ast.Node) {
	if child == nil {
		violation(n, field, "required child is missing")
	}
}
