package format

import (
	"jsgen/internal/ast"
	"jsgen/internal/prec"
)

// stmt prints s without its terminator and records in needSemi whether one
// is due.
func (p *printer) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		p.block(n, true)
	case *ast.Vars:
		p.vars(n, false)
		p.needSemi = true
	case *ast.ExprStmt:
		p.exprStmt(n)
	case *ast.If:
		p.ifStmt(n)
	case *ast.While:
		need(n, "Cond", n.Cond)
		need(n, "Body", n.Body)
		p.w.Print("while")
		p.w.SpaceOpt()
		p.w.PrintByte('(')
		p.expr(n.Cond)
		p.w.PrintByte(')')
		p.nestedBody(n.Body, false, true)
	case *ast.DoWhile:
		p.doWhile(n)
	case *ast.For:
		p.forStmt(n)
	case *ast.ForIn:
		p.forIn(n)
	case *ast.Switch:
		p.switchStmt(n)
	case *ast.Try:
		p.tryStmt(n)
	case *ast.Label:
		need(n, "Stmt", n.Stmt)
		p.w.Print(n.Name)
		p.w.PrintByte(':')
		p.w.SpaceOpt()
		p.stmt(n.Stmt)
	case *ast.Break:
		p.jump("break", n.Label)
		p.optionalSemi = true
	case *ast.Continue:
		p.jump("continue", n.Label)
	case *ast.Return:
		p.w.Print("return")
		if n.X != nil {
			p.w.Space()
			p.expr(n.X)
		}
		p.needSemi = true
	case *ast.Throw:
		need(n, "X", n.X)
		p.w.Print("throw")
		p.w.Space()
		p.expr(n.X)
		p.needSemi = true
	case *ast.Debugger:
		p.w.Print("debugger")
		p.needSemi = true
	case *ast.Empty:
		p.needSemi = true
	case *ast.DocComment:
		p.docComment(n)
		p.needSemi = false
	default:
		violation(s, "", "unexpected statement %T", s)
	}
}

func (p *printer) jump(keyword, label string) {
	p.w.Print(keyword)
	if label != "" {
		p.w.Space()
		p.w.Print(label)
	}
	p.needSemi = true
}

func (p *printer) exprStmt(n *ast.ExprStmt) {
	need(n, "X", n.X)
	x := ast.Unwrap(n.X)
	if x == nil {
		violation(n, "X", "unresolved placeholder")
	}
	switch x := x.(type) {
	case *ast.Function:
		if x.Name != "" {
			p.function(x)
			p.needSemi = false
			return
		}
	case *ast.DocComment:
		p.docComment(x)
		p.needSemi = false
		return
	}
	if startsWithFunctionOrObject(x) {
		p.w.PrintByte('(')
		p.expr(x)
		p.w.PrintByte(')')
	} else {
		p.expr(x)
	}
	p.needSemi = true
}

func (p *printer) ifStmt(n *ast.If) {
	need(n, "Cond", n.Cond)
	need(n, "Then", n.Then)
	p.w.Print("if")
	p.w.SpaceOpt()
	p.w.PrintByte('(')
	p.expr(n.Cond)
	p.w.PrintByte(')')

	then := n.Then
	if n.Else != nil && endsWithOpenIf(then) {
		// `if (a) { if (b) x(); } else y();` keeps the else on the outer if.
		then = &ast.Block{Stmts: []ast.Stmt{then}}
	}
	if n.Else == nil {
		p.nestedBody(then, false, true)
		return
	}
	if inlineBranch(then) {
		// `if (a) f(); else g();` keeps a simple then-branch on the if line.
		p.w.SpaceOpt()
		p.stmt(then)
		if p.needSemi {
			p.w.PrintByte(';')
			p.needSemi = false
		}
		p.optionalSemi = false
		p.w.SpaceOpt()
	} else {
		p.nestedBody(then, false, true)
		if p.needSemi {
			p.w.PrintByte(';')
			p.w.NewlineOpt()
			p.needSemi = false
		}
		if !p.w.JustNewlined() {
			p.w.SpaceOpt()
		}
	}
	p.w.Print("else")
	if elseIf, ok := n.Else.(*ast.If); ok {
		p.w.Space()
		p.ifStmt(elseIf)
		return
	}
	if inlineBranch(n.Else) {
		p.w.Space()
		p.stmt(n.Else)
		p.optionalSemi = false
		return
	}
	p.nestedBody(n.Else, true, true)
}

// inlineBranch reports whether an if branch stays on the keyword's line.
// Blocks bring their own layout and a nested if moves to its own line.
func inlineBranch(s ast.Stmt) bool {
	switch s.(type) {
	case *ast.Block, *ast.If, *ast.Empty:
		return false
	}
	return true
}

// endsWithOpenIf reports whether the last statement nested in s is an if
// without else, which would capture a following else.
func endsWithOpenIf(s ast.Stmt) bool {
	for {
		switch n := s.(type) {
		case *ast.If:
			if n.Else == nil {
				return true
			}
			s = n.Else
		case *ast.While:
			s = n.Body
		case *ast.For:
			s = n.Body
		case *ast.ForIn:
			s = n.Body
		case *ast.Label:
			s = n.Stmt
		default:
			return false
		}
	}
}

func (p *printer) doWhile(n *ast.DoWhile) {
	need(n, "Body", n.Body)
	need(n, "Cond", n.Cond)
	p.w.Print("do")
	p.nestedBody(n.Body, true, false)
	if p.needSemi {
		p.w.PrintByte(';')
		p.w.NewlineOpt()
		p.needSemi = false
	} else if !p.w.JustNewlined() {
		p.w.SpaceOpt()
	}
	p.w.Print("while")
	p.w.SpaceOpt()
	p.w.PrintByte('(')
	p.expr(n.Cond)
	p.w.PrintByte(')')
	p.needSemi = true
	p.optionalSemi = true
}

func (p *printer) forStmt(n *ast.For) {
	need(n, "Body", n.Body)
	if n.InitExpr != nil && n.InitVars != nil {
		violation(n, "InitExpr", "both an initializer expression and declarations are set")
	}
	p.w.Print("for")
	p.w.SpaceOpt()
	p.w.PrintByte('(')
	switch {
	case n.InitVars != nil:
		p.vars(n.InitVars, true)
	case n.InitExpr != nil:
		p.parenExpr(n.InitExpr, containsIn(n.InitExpr))
	}
	p.w.PrintByte(';')
	if n.Cond != nil {
		p.w.SpaceOpt()
		p.expr(n.Cond)
	}
	p.w.PrintByte(';')
	if n.Update != nil {
		p.w.SpaceOpt()
		p.expr(n.Update)
	}
	p.w.PrintByte(')')
	p.nestedBody(n.Body, false, true)
}

func (p *printer) forIn(n *ast.ForIn) {
	need(n, "Object", n.Object)
	need(n, "Body", n.Body)
	p.w.Print("for")
	p.w.SpaceOpt()
	p.w.PrintByte('(')
	switch {
	case n.IterVar != "":
		p.w.Print("var ")
		p.w.Print(n.IterVar)
		if n.IterExpr != nil {
			p.w.SpaceOpt()
			p.w.PrintByte('=')
			p.w.SpaceOpt()
			p.parenExpr(n.IterExpr, prec.IsComma(n.IterExpr) || containsIn(n.IterExpr))
		}
	case n.IterExpr != nil:
		p.parenExpr(n.IterExpr, prec.Wrap(prec.Member, n.IterExpr, false))
	default:
		violation(n, "IterVar", "neither a loop variable nor a target expression is set")
	}
	p.w.Print(" in ")
	p.expr(n.Object)
	p.w.PrintByte(')')
	p.nestedBody(n.Body, false, true)
}

// vars prints a declaration list without terminator. noIn parenthesizes
// initializers containing the in operator, as required in a for header.
func (p *printer) vars(n *ast.Vars, noIn bool) {
	if len(n.List) == 0 {
		violation(n, "List", "empty declaration list")
	}
	p.w.Print("var ")
	multiline := n.Multiline && !p.w.Compact() && len(n.List) > 1
	if multiline {
		p.w.IndentIn()
	}
	for i, v := range n.List {
		if i > 0 {
			p.w.PrintByte(',')
			if multiline {
				p.w.Newline()
			} else {
				p.w.SpaceOpt()
			}
		}
		if v == nil {
			violation(n, "List", "nil declaration at index %d", i)
		}
		p.varDecl(v, noIn)
	}
	if multiline {
		p.w.IndentOut()
	}
}

func (p *printer) varDecl(v *ast.Var, noIn bool) {
	p.w.Print(v.Name)
	if v.Init == nil {
		return
	}
	p.w.SpaceOpt()
	p.w.PrintByte('=')
	p.w.SpaceOpt()
	p.parenExpr(v.Init, prec.IsComma(v.Init) || noIn && containsIn(v.Init))
}

// containsIn reports an `in` operator outside nested functions.
func containsIn(e ast.Expr) bool {
	found := false
	ast.Inspect(e, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Binary:
			if n.Op == ast.OpIn {
				found = true
			}
		case *ast.Function:
			return false
		}
		return !found
	})
	return found
}

func (p *printer) switchStmt(n *ast.Switch) {
	need(n, "Tag", n.Tag)
	p.w.Print("switch")
	p.w.SpaceOpt()
	p.w.PrintByte('(')
	p.expr(n.Tag)
	p.w.PrintByte(')')
	p.w.SpaceOpt()
	p.w.PrintByte('{')
	p.w.IndentIn()
	p.w.NewlineOpt()
	for i, m := range n.Members {
		if m == nil {
			violation(n, "Members", "nil member at index %d", i)
		}
		p.switchMember(m)
	}
	p.w.IndentOut()
	p.w.PrintByte('}')
	p.w.NewlineOpt()
	p.needSemi = false
}

// switchMember prints a case label followed by its statements, one level
// deeper and without braces.
func (p *printer) switchMember(m ast.SwitchMember) {
	switch m := m.(type) {
	case *ast.Case:
		need(m, "Label", m.Label)
		p.w.Print("case")
		p.w.Space()
		p.expr(m.Label)
		p.w.PrintByte(':')
	case *ast.Default:
		p.w.Print("default:")
	}
	p.w.NewlineOpt()
	p.w.IndentIn()
	p.stmtList(m.Body(), false)
	p.w.IndentOut()
	p.needSemi = false
}

func (p *printer) tryStmt(n *ast.Try) {
	if n.Block == nil {
		violation(n, "Block", "required child is missing")
	}
	if len(n.Catches) == 0 && n.Finally == nil {
		violation(n, "Catches", "try needs a catch or a finally block")
	}
	p.w.Print("try")
	p.w.SpaceOpt()
	p.bracedBlock(n.Block.Stmts, true)
	for i, c := range n.Catches {
		if c == nil {
			violation(n, "Catches", "nil catch at index %d", i)
		}
		p.catchClause(c)
	}
	if n.Finally != nil {
		p.w.Print("finally")
		p.w.SpaceOpt()
		p.bracedBlock(n.Finally.Stmts, true)
	}
	p.needSemi = false
}

func (p *printer) catchClause(c *ast.Catch) {
	if c.Body == nil {
		violation(c, "Body", "required child is missing")
	}
	p.w.Print("catch")
	p.w.SpaceOpt()
	p.w.PrintByte('(')
	p.w.Print(c.Param)
	if c.Cond != nil {
		p.w.Print(" if ")
		p.expr(c.Cond)
	}
	p.w.PrintByte(')')
	p.w.SpaceOpt()
	p.bracedBlock(c.Body.Stmts, true)
}
