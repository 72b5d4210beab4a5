package astio

import (
	"errors"
	"fmt"
	"strconv"

	"jsgen/internal/ast"
	"jsgen/internal/source"
)

// ErrUnresolved reports a chameleon that has no target yet.
var ErrUnresolved = errors.New("unresolved chameleon")

// Encode converts p to its wire form. Only source.Pos metadata survives.
func Encode(p *ast.Program) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			unresolved, ok := r.(unresolvedPanic)
			if !ok {
				panic(r)
			}
			doc, err = nil, fmt.Errorf("%w at %s", ErrUnresolved, unresolved.path)
		}
	}()
	if p == nil {
		return nil, errors.New("encode: program is nil")
	}
	root := &Node{Kind: ast.KindProgram.String(), Pos: wirePos(p), Stmts: encodeStmts("program.stmts", p.Stmts)}
	return &Document{Version: SchemaVersion, Program: root}, nil
}

type unresolvedPanic struct{ path string }

func wirePos(n ast.Node) *Pos {
	if n == nil {
		return nil
	}
	pos, ok := n.Source().(source.Pos)
	if !ok {
		return nil
	}
	return &Pos{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
}

func encodeStmts(path string, list []ast.Stmt) []*Node {
	out := make([]*Node, 0, len(list))
	for i, s := range list {
		out = append(out, encodeStmt(fmt.Sprintf("%s[%d]", path, i), s))
	}
	return out
}

func encodeExprs(path string, list []ast.Expr) []*Node {
	out := make([]*Node, 0, len(list))
	for i, e := range list {
		out = append(out, encodeExpr(fmt.Sprintf("%s[%d]", path, i), e))
	}
	return out
}

func encodeBlock(path string, b *ast.Block) *Node {
	if b == nil {
		return nil
	}
	return &Node{Kind: ast.KindBlock.String(), Pos: wirePos(b), Stmts: encodeStmts(path+".stmts", b.Stmts), Global: b.Global}
}

func encodeDecls(path string, v *ast.Vars) []*Node {
	out := make([]*Node, 0, len(v.List))
	for i, one := range v.List {
		p := fmt.Sprintf("%s.decls[%d]", path, i)
		out = append(out, &Node{Kind: ast.KindVar.String(), Pos: wirePos(one), Name: one.Name, X: encodeExpr(p+".x", one.Init)})
	}
	return out
}

func encodeStmt(path string, s ast.Stmt) *Node {
	if s == nil {
		return nil
	}
	n := &Node{Kind: s.Kind().String(), Pos: wirePos(s)}
	switch s := s.(type) {
	case *ast.Block:
		return encodeBlock(path, s)
	case *ast.Vars:
		n.Decls = encodeDecls(path, s)
		n.Multiline = s.Multiline
	case *ast.ExprStmt:
		if fn, ok := s.X.(*ast.Function); ok && ast.IsFunctionDeclaration(s) {
			return encodeExpr(path, fn)
		}
		n.Pos = nil
		n.X = encodeExpr(path+".x", s.X)
	case *ast.If:
		n.Cond = encodeExpr(path+".cond", s.Cond)
		n.Then = encodeStmt(path+".then", s.Then)
		n.Else = encodeStmt(path+".else", s.Else)
	case *ast.While:
		n.Cond = encodeExpr(path+".cond", s.Cond)
		n.Body = encodeStmt(path+".body", s.Body)
	case *ast.DoWhile:
		n.Body = encodeStmt(path+".body", s.Body)
		n.Cond = encodeExpr(path+".cond", s.Cond)
	case *ast.For:
		n.X = encodeExpr(path+".x", s.InitExpr)
		if s.InitVars != nil {
			n.Decls = encodeDecls(path, s.InitVars)
			n.Multiline = s.InitVars.Multiline
		}
		n.Cond = encodeExpr(path+".cond", s.Cond)
		n.Update = encodeExpr(path+".update", s.Update)
		n.Body = encodeStmt(path+".body", s.Body)
	case *ast.ForIn:
		n.Name = s.IterVar
		n.X = encodeExpr(path+".x", s.IterExpr)
		n.Object = encodeExpr(path+".object", s.Object)
		n.Body = encodeStmt(path+".body", s.Body)
	case *ast.Switch:
		n.X = encodeExpr(path+".x", s.Tag)
		for i, m := range s.Members {
			p := fmt.Sprintf("%s.members[%d]", path, i)
			member := &Node{Kind: m.Kind().String(), Pos: wirePos(m), Stmts: encodeStmts(p+".stmts", m.Body())}
			if c, ok := m.(*ast.Case); ok {
				member.X = encodeExpr(p+".x", c.Label)
			}
			n.Members = append(n.Members, member)
		}
	case *ast.Try:
		n.Block = encodeBlock(path+".block", s.Block)
		for i, c := range s.Catches {
			p := fmt.Sprintf("%s.catches[%d]", path, i)
			n.Catches = append(n.Catches, &Node{
				Kind: ast.KindCatch.String(),
				Pos:  wirePos(c),
				Name: c.Param,
				Cond: encodeExpr(p+".cond", c.Cond),
				Body: encodeBlock(p+".body", c.Body),
			})
		}
		n.Finally = encodeBlock(path+".finally", s.Finally)
	case *ast.Label:
		n.Name = s.Name
		n.Body = encodeStmt(path+".body", s.Stmt)
	case *ast.Break:
		n.Name = s.Label
	case *ast.Continue:
		n.Name = s.Label
	case *ast.Return:
		n.X = encodeExpr(path+".x", s.X)
	case *ast.Throw:
		n.X = encodeExpr(path+".x", s.X)
	case *ast.DocComment:
		n.Tags = encodeTags(path, s)
	case *ast.Debugger, *ast.Empty:
	}
	return n
}

func encodeTags(path string, d *ast.DocComment) []Tag {
	tags := make([]Tag, 0, len(d.Tags))
	for i, t := range d.Tags {
		tags = append(tags, Tag{Name: t.Name, Text: t.Text, Value: encodeExpr(fmt.Sprintf("%s.tags[%d].value", path, i), t.Value)})
	}
	return tags
}

func encodeExpr(path string, e ast.Expr) *Node {
	if e == nil {
		return nil
	}
	n := &Node{Kind: e.Kind().String(), Pos: wirePos(e)}
	switch e := e.(type) {
	case *ast.Binary:
		n.Op = e.Op.Symbol()
		n.X = encodeExpr(path+".x", e.X)
		n.Y = encodeExpr(path+".y", e.Y)
	case *ast.Prefix:
		n.Op = e.Op.Symbol()
		n.X = encodeExpr(path+".x", e.X)
	case *ast.Postfix:
		n.Op = e.Op.Symbol()
		n.X = encodeExpr(path+".x", e.X)
	case *ast.Conditional:
		n.Cond = encodeExpr(path+".cond", e.Test)
		n.Then = encodeExpr(path+".then", e.Then)
		n.Else = encodeExpr(path+".else", e.Else)
	case *ast.Invocation:
		n.X = encodeExpr(path+".x", e.Fn)
		n.Args = encodeExprs(path+".args", e.Args)
	case *ast.New:
		n.X = encodeExpr(path+".x", e.Ctor)
		n.Args = encodeExprs(path+".args", e.Args)
	case *ast.ArrayAccess:
		n.X = encodeExpr(path+".x", e.X)
		n.Y = encodeExpr(path+".y", e.Index)
	case *ast.ArrayLit:
		n.Args = encodeExprs(path+".args", e.Elems)
	case *ast.ObjectLit:
		n.Multiline = e.Multiline
		for i, p := range e.Props {
			pp := fmt.Sprintf("%s.props[%d]", path, i)
			n.Props = append(n.Props, &Node{
				Kind: ast.KindProperty.String(),
				Pos:  wirePos(p),
				X:    encodeExpr(pp+".x", p.Label),
				Y:    encodeExpr(pp+".y", p.Value),
			})
		}
	case *ast.NameRef:
		n.Name = e.Name
		n.X = encodeExpr(path+".x", e.Qualifier)
	case *ast.Bool:
		n.Bool = e.Value
	case *ast.Int:
		n.Int = e.Value
	case *ast.Double:
		n.Number = strconv.FormatFloat(e.Value, 'g', -1, 64)
	case *ast.StringLit:
		n.Text = e.Value
		n.Verbatim = e.Verbatim
		n.ForceDouble = e.ForceDouble
		if e.Quote != 0 {
			n.Quote = string(rune(e.Quote))
		}
	case *ast.RegExp:
		n.Text = e.Pattern
		n.Flags = e.Flags
	case *ast.Function:
		n.Name = e.Name
		for _, p := range e.Params {
			n.Params = append(n.Params, p.Name)
		}
		n.Body = encodeBlock(path+".body", e.Body)
	case *ast.DocComment:
		n.Tags = encodeTags(path, e)
	case *ast.Chameleon:
		if !e.Resolved() {
			panic(unresolvedPanic{path: path})
		}
		n.X = encodeExpr(path+".x", e.Target())
	case *ast.This, *ast.Null:
	}
	return n
}
