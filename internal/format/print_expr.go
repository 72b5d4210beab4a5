package format

import (
	"jsgen/internal/ast"
	"jsgen/internal/prec"
)

func (p *printer) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Binary:
		p.binary(n)
	case *ast.Prefix:
		need(n, "X", n.X)
		p.w.Print(n.Op.Symbol())
		parens := prec.PrefixOperand(n.X)
		if prec.NeedsSpace(n.Op, n.X) {
			p.w.Space()
		}
		p.parenExpr(n.X, parens)
	case *ast.Postfix:
		need(n, "X", n.X)
		p.parenExpr(n.X, prec.PostfixOperand(n.X))
		p.w.Print(n.Op.Symbol())
	case *ast.Conditional:
		need(n, "Test", n.Test)
		need(n, "Then", n.Then)
		need(n, "Else", n.Else)
		p.parenExpr(n.Test, prec.ConditionalTest(n.Test))
		p.w.SpaceOpt()
		p.w.PrintByte('?')
		p.w.SpaceOpt()
		p.parenExpr(n.Then, prec.ConditionalBranch(n.Then))
		p.w.SpaceOpt()
		p.w.PrintByte(':')
		p.w.SpaceOpt()
		p.parenExpr(n.Else, prec.ConditionalBranch(n.Else))
	case *ast.Invocation:
		need(n, "Fn", n.Fn)
		p.parenExpr(n.Fn, prec.Qualifier(n.Fn))
		p.args(n, n.Args)
	case *ast.New:
		need(n, "Ctor", n.Ctor)
		p.w.Print("new ")
		p.parenExpr(n.Ctor, prec.ConstructorNeedsParens(n.Ctor))
		p.args(n, n.Args)
	case *ast.ArrayAccess:
		need(n, "X", n.X)
		need(n, "Index", n.Index)
		p.parenExpr(n.X, prec.Qualifier(n.X))
		p.w.PrintByte('[')
		p.expr(n.Index)
		p.w.PrintByte(']')
	case *ast.ArrayLit:
		p.w.PrintByte('[')
		p.exprList(n, n.Elems)
		p.w.PrintByte(']')
	case *ast.ObjectLit:
		p.objectLit(n)
	case *ast.NameRef:
		if n.Qualifier != nil {
			p.parenExpr(n.Qualifier, prec.Qualifier(n.Qualifier))
			p.w.PrintByte('.')
		}
		p.w.Print(n.Name)
	case *ast.This:
		p.w.Print("this")
	case *ast.Null:
		p.w.Print("null")
	case *ast.Bool:
		if n.Value {
			p.w.Print("true")
		} else {
			p.w.Print("false")
		}
	case *ast.Int:
		p.w.PrintInt(n.Value)
	case *ast.Double:
		p.w.PrintFloat(n.Value)
	case *ast.StringLit:
		p.stringLit(n)
	case *ast.RegExp:
		p.w.PrintByte('/')
		if n.Pattern == "" {
			// `//` would open a comment
			p.w.Print("(?:)")
		} else {
			p.w.Print(n.Pattern)
		}
		p.w.PrintByte('/')
		p.w.Print(n.Flags)
	case *ast.Function:
		p.function(n)
	case *ast.DocComment:
		p.docComment(n)
		p.w.SpaceOpt()
	case *ast.Chameleon:
		target := n.Target()
		if target == nil {
			violation(n, "Target", "placeholder was never resolved")
		}
		p.expr(target)
	case nil:
		violation(nil, "", "missing expression")
	default:
		violation(e, "", "unexpected expression %T", e)
	}
}

func (p *printer) binary(n *ast.Binary) {
	need(n, "X", n.X)
	need(n, "Y", n.Y)
	op := n.Op
	if !op.Valid() {
		violation(n, "Op", "invalid operator %d", op)
	}

	leftParens := prec.BinaryLeft(op, n.X)
	p.parenExpr(n.X, leftParens)
	switch {
	case op == ast.OpComma:
	case leftParens:
		p.w.SpaceOpt()
	case op.Keyword():
		p.w.Space()
	default:
		p.w.SpaceOpt()
	}
	p.w.Print(op.Symbol())

	rightParens := prec.BinaryRight(op, n.Y)
	switch {
	case rightParens:
		p.w.SpaceOpt()
	case prec.NeedsSpace(op, n.Y):
		p.w.Space()
	default:
		p.w.SpaceOpt()
	}
	p.parenExpr(n.Y, rightParens)
}

func (p *printer) parenExpr(e ast.Expr, parens bool) {
	if parens {
		p.w.PrintByte('(')
	}
	p.expr(e)
	if parens {
		p.w.PrintByte(')')
	}
}

func (p *printer) args(owner ast.Node, list []ast.Expr) {
	p.w.PrintByte('(')
	p.exprList(owner, list)
	p.w.PrintByte(')')
}

// exprList prints comma separated elements. A doc comment element annotates
// the element after it and is not followed by a comma.
func (p *printer) exprList(owner ast.Node, list []ast.Expr) {
	sep := false
	for i, e := range list {
		if e == nil {
			violation(owner, "", "nil element at index %d", i)
		}
		if sep {
			p.w.PrintByte(',')
			p.w.SpaceOpt()
		}
		p.parenExpr(e, prec.IsComma(e))
		_, isDoc := ast.Unwrap(e).(*ast.DocComment)
		sep = !isDoc
	}
}

func (p *printer) stringLit(n *ast.StringLit) {
	if !n.Verbatim {
		p.w.Print(Quote(n.Value, n.ForceDouble))
		return
	}
	if n.Quote != 0 {
		p.w.PrintByte(n.Quote)
	}
	p.w.Print(n.Value)
	if n.Quote != 0 {
		p.w.PrintByte(n.Quote)
	}
}
