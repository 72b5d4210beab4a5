package check

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"jsgen/internal/ast"
	"jsgen/internal/diag"
	"jsgen/internal/format"
	"jsgen/internal/source"
	"jsgen/internal/symbols"
)

// snippetWidth bounds the rendered code attached to statement diagnostics.
const snippetWidth = 60

// Program walks p and collects at most max diagnostics.
func Program(p *ast.Program, max int) *diag.Bag {
	c := checker{bag: diag.NewBag(max)}
	if p == nil {
		c.report(diag.SevError, diag.TreeMissingChild, "program", nil, "program is nil")
		return c.bag
	}
	c.stmts("program.stmts", p.Stmts)
	return c.bag
}

type checker struct {
	bag *diag.Bag
	// labels enclosing the current statement, innermost last; reset at
	// function boundaries.
	labels []string
	// stmt is the statement currently being checked, used for snippets.
	stmt ast.Stmt
}

func (c *checker) report(sev diag.Severity, code diag.Code, path string, n ast.Node, msg string, args ...any) {
	d := diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(msg, args...),
		Path:     path,
	}
	if n != nil {
		if pos, ok := n.Source().(source.Pos); ok {
			d.Pos = pos
			d.HasPos = true
		}
	}
	if c.stmt != nil && sev >= diag.SevError {
		d.Notes = append(d.Notes, diag.Note{Path: path, Msg: c.snippet()})
	}
	c.bag.Add(d)
}

// snippet renders the enclosing statement, guarding against trees the
// emitter itself rejects.
func (c *checker) snippet() (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = "<unprintable>"
		}
	}()
	return diag.Snippet(format.Debug(c.stmt), snippetWidth)
}

func (c *checker) missing(path string, n ast.Node, field string) {
	c.report(diag.SevError, diag.TreeMissingChild, path, n, "%s requires %s", n.Kind(), field)
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func (c *checker) stmts(path string, list []ast.Stmt) {
	for i, s := range list {
		c.stmt0(index(path, i), s)
	}
}

// stmt0 checks a statement that starts a new snippet context.
func (c *checker) stmt0(path string, s ast.Stmt) {
	prev := c.stmt
	c.stmt = s
	c.stmtNode(path, s)
	c.stmt = prev
}

// body checks a required statement child.
func (c *checker) body(path string, parent ast.Node, field string, s ast.Stmt) {
	if s == nil {
		c.missing(path, parent, field)
		return
	}
	c.stmt0(path, s)
}

func (c *checker) stmtNode(path string, s ast.Stmt) {
	switch n := s.(type) {
	case nil:
		c.report(diag.SevError, diag.TreeMissingChild, path, nil, "statement is nil")
	case *ast.Block:
		if n == nil {
			c.report(diag.SevError, diag.TreeMissingChild, path, nil, "block is nil")
			return
		}
		c.stmts(path+".stmts", n.Stmts)
	case *ast.Vars:
		c.vars(path, n)
	case *ast.ExprStmt:
		if n.X == nil {
			c.missing(path, n, "an expression")
			return
		}
		c.expr(path+".x", n.X)
	case *ast.If:
		c.requiredExpr(path+".cond", n, "a condition", n.Cond)
		c.body(path+".then", n, "a then branch", n.Then)
		if n.Else != nil {
			c.stmt0(path+".else", n.Else)
		}
	case *ast.While:
		c.requiredExpr(path+".cond", n, "a condition", n.Cond)
		c.body(path+".body", n, "a body", n.Body)
	case *ast.DoWhile:
		c.body(path+".body", n, "a body", n.Body)
		c.requiredExpr(path+".cond", n, "a condition", n.Cond)
	case *ast.For:
		if n.InitExpr != nil && n.InitVars != nil {
			c.report(diag.SevError, diag.TreeForBothInits, path, n, "for statement has both an initializer expression and declarations")
		}
		c.optExpr(path+".initExpr", n.InitExpr)
		if n.InitVars != nil {
			c.vars(path+".initVars", n.InitVars)
		}
		c.optExpr(path+".cond", n.Cond)
		c.optExpr(path+".update", n.Update)
		c.body(path+".body", n, "a body", n.Body)
	case *ast.ForIn:
		c.forIn(path, n)
	case *ast.Switch:
		c.switchStmt(path, n)
	case *ast.Try:
		c.tryStmt(path, n)
	case *ast.Label:
		c.label(path, n)
	case *ast.Break:
		c.jump(path, n, n.Label)
	case *ast.Continue:
		c.jump(path, n, n.Label)
	case *ast.Return:
		c.optExpr(path+".x", n.X)
	case *ast.Throw:
		c.requiredExpr(path+".x", n, "an operand", n.X)
	case *ast.DocComment:
		c.docComment(path, n)
	case *ast.Debugger, *ast.Empty:
	default:
		c.report(diag.SevError, diag.TreeMissingChild, path, s, "unsupported statement %T", s)
	}
}

func (c *checker) vars(path string, n *ast.Vars) {
	if len(n.List) == 0 {
		c.report(diag.SevError, diag.TreeEmptyVars, path, n, "var list declares nothing")
		return
	}
	for i, v := range n.List {
		p := index(path+".list", i)
		if v == nil {
			c.report(diag.SevError, diag.TreeMissingChild, p, nil, "declaration is nil")
			continue
		}
		c.binding(p+".name", v, v.Name)
		c.optExpr(p+".init", v.Init)
	}
}

func (c *checker) forIn(path string, n *ast.ForIn) {
	switch {
	case n.IterVar != "":
		c.binding(path+".iterVar", n, n.IterVar)
		c.optExpr(path+".iterExpr", n.IterExpr)
	case n.IterExpr != nil:
		c.expr(path+".iterExpr", n.IterExpr)
	default:
		c.missing(path, n, "an iteration variable or target")
	}
	c.requiredExpr(path+".object", n, "an object", n.Object)
	c.body(path+".body", n, "a body", n.Body)
}

func (c *checker) switchStmt(path string, n *ast.Switch) {
	c.requiredExpr(path+".tag", n, "a tag", n.Tag)
	seenDefault := false
	for i, m := range n.Members {
		p := index(path+".members", i)
		switch m := m.(type) {
		case nil:
			c.report(diag.SevError, diag.TreeMissingChild, p, nil, "switch member is nil")
			continue
		case *ast.Case:
			c.requiredExpr(p+".label", m, "a label", m.Label)
		case *ast.Default:
			if seenDefault {
				c.report(diag.SevError, diag.TreeDuplicateDefault, p, m, "switch has more than one default")
			}
			seenDefault = true
		}
		c.stmts(p+".stmts", m.Body())
	}
}

func (c *checker) tryStmt(path string, n *ast.Try) {
	if n.Block == nil {
		c.missing(path, n, "a protected block")
	} else {
		c.stmts(path+".block.stmts", n.Block.Stmts)
	}
	if len(n.Catches) == 0 && n.Finally == nil {
		c.missing(path, n, "a catch clause or a finally block")
	}
	for i, cc := range n.Catches {
		p := index(path+".catches", i)
		if cc == nil {
			c.report(diag.SevError, diag.TreeMissingChild, p, nil, "catch clause is nil")
			continue
		}
		c.binding(p+".param", cc, cc.Param)
		c.optExpr(p+".cond", cc.Cond)
		if cc.Body == nil {
			c.missing(p, cc, "a body")
			continue
		}
		c.stmts(p+".body.stmts", cc.Body.Stmts)
	}
	if n.Finally != nil {
		c.stmts(path+".finally.stmts", n.Finally.Stmts)
	}
}

func (c *checker) label(path string, n *ast.Label) {
	c.binding(path+".name", n, n.Name)
	for _, l := range c.labels {
		if l == n.Name {
			c.report(diag.SevError, diag.NameDuplicateLabel, path, n, "label %q is already declared by an enclosing statement", n.Name)
			break
		}
	}
	c.labels = append(c.labels, n.Name)
	c.body(path+".stmt", n, "a statement", n.Stmt)
	c.labels = c.labels[:len(c.labels)-1]
}

func (c *checker) jump(path string, n ast.Stmt, label string) {
	if label == "" {
		return
	}
	for _, l := range c.labels {
		if l == label {
			return
		}
	}
	c.report(diag.SevError, diag.NameUndefinedLabel, path, n, "label %q does not enclose this %s", label, n.Kind())
}

func (c *checker) docComment(path string, n *ast.DocComment) {
	if len(n.Tags) == 0 {
		c.report(diag.SevWarning, diag.TreeEmptyDocComment, path, n, "documentation comment has no tags")
	}
	for i, tag := range n.Tags {
		if tag.Value != nil {
			c.expr(index(path+".tags", i)+".value", tag.Value)
		}
	}
}

// binding checks a declared name.
func (c *checker) binding(path string, n ast.Node, name string) {
	switch {
	case name == "":
		c.missing(path, n, "a name")
	case !symbols.IsIdentifierName(name):
		c.report(diag.SevError, diag.NameInvalidIdent, path, n, "%q is not a valid identifier", name)
	case symbols.IsReserved(name):
		c.report(diag.SevError, diag.NameReservedWord, path, n, "reserved word %q cannot be bound", name)
	default:
		c.normalized(path, n, name)
	}
}

func (c *checker) normalized(path string, n ast.Node, name string) {
	if !norm.NFC.IsNormalString(name) {
		c.report(diag.SevWarning, diag.NameNotNFC, path, n, "identifier %q is not NFC-normalized", name)
	}
}

func (c *checker) requiredExpr(path string, parent ast.Node, field string, e ast.Expr) {
	if e == nil {
		c.missing(path, parent, field)
		return
	}
	c.expr(path, e)
}

func (c *checker) optExpr(path string, e ast.Expr) {
	if e != nil {
		c.expr(path, e)
	}
}

func (c *checker) exprs(path string, list []ast.Expr) {
	for i, e := range list {
		p := index(path, i)
		if e == nil {
			c.report(diag.SevError, diag.TreeMissingChild, p, nil, "expression is nil")
			continue
		}
		c.expr(p, e)
	}
}

func (c *checker) expr(path string, e ast.Expr) {
	switch n := e.(type) {
	case *ast.Binary:
		c.requiredExpr(path+".x", n, "a left operand", n.X)
		c.requiredExpr(path+".y", n, "a right operand", n.Y)
	case *ast.Prefix:
		c.requiredExpr(path+".x", n, "an operand", n.X)
	case *ast.Postfix:
		c.requiredExpr(path+".x", n, "an operand", n.X)
	case *ast.Conditional:
		c.requiredExpr(path+".test", n, "a test", n.Test)
		c.requiredExpr(path+".then", n, "a then branch", n.Then)
		c.requiredExpr(path+".else", n, "an else branch", n.Else)
	case *ast.Invocation:
		c.requiredExpr(path+".fn", n, "a callee", n.Fn)
		c.exprs(path+".args", n.Args)
	case *ast.New:
		c.requiredExpr(path+".ctor", n, "a constructor", n.Ctor)
		c.exprs(path+".args", n.Args)
	case *ast.ArrayAccess:
		c.requiredExpr(path+".x", n, "an array", n.X)
		c.requiredExpr(path+".index", n, "an index", n.Index)
	case *ast.ArrayLit:
		c.exprs(path+".elems", n.Elems)
	case *ast.ObjectLit:
		for i, prop := range n.Props {
			p := index(path+".props", i)
			if prop == nil {
				c.report(diag.SevError, diag.TreeMissingChild, p, nil, "property is nil")
				continue
			}
			c.requiredExpr(p+".label", prop, "a label", prop.Label)
			c.requiredExpr(p+".value", prop, "a value", prop.Value)
		}
	case *ast.NameRef:
		c.nameRef(path, n)
	case *ast.Function:
		c.function(path, n)
	case *ast.DocComment:
		c.docComment(path, n)
	case *ast.Chameleon:
		if !n.Resolved() {
			c.report(diag.SevError, diag.TreeUnresolvedChameleon, path, n, "placeholder expression was never resolved")
			return
		}
		c.expr(path+".target", n.Target())
	case *ast.This, *ast.Null, *ast.Bool, *ast.Int, *ast.Double, *ast.StringLit, *ast.RegExp:
	default:
		c.report(diag.SevError, diag.TreeMissingChild, path, e, "unsupported expression %T", e)
	}
}

func (c *checker) nameRef(path string, n *ast.NameRef) {
	if n.Qualifier != nil {
		c.expr(path+".qualifier", n.Qualifier)
		if !symbols.IsIdentifierName(n.Name) {
			c.report(diag.SevError, diag.NameInvalidIdent, path+".name", n, "%q is not a valid property name", n.Name)
		}
		return
	}
	switch {
	case n.Name == "":
		c.missing(path, n, "a name")
	case !symbols.IsIdentifierName(n.Name):
		c.report(diag.SevError, diag.NameInvalidIdent, path+".name", n, "%q is not a valid identifier", n.Name)
	case symbols.IsReserved(n.Name):
		c.report(diag.SevError, diag.NameReservedWord, path+".name", n, "reserved word %q used as a variable", n.Name)
	default:
		c.normalized(path+".name", n, n.Name)
	}
}

func (c *checker) function(path string, n *ast.Function) {
	if n.Name != "" {
		c.binding(path+".name", n, n.Name)
	}
	for i, param := range n.Params {
		p := index(path+".params", i)
		if param == nil {
			c.report(diag.SevError, diag.TreeMissingChild, p, nil, "parameter is nil")
			continue
		}
		c.binding(p+".name", param, param.Name)
	}
	if n.Body == nil {
		c.missing(path, n, "a body")
		return
	}
	outer := c.labels
	c.labels = nil
	c.stmts(path+".body.stmts", n.Body.Stmts)
	c.labels = outer
}
