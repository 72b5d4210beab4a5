package astio

import (
	"errors"
	"fmt"
	"strconv"

	"jsgen/internal/ast"
	"jsgen/internal/source"
	"jsgen/internal/symbols"
)

var (
	// ErrVersion reports a document written with another schema version.
	ErrVersion = errors.New("unsupported document version")
	// ErrMalformed wraps every structural decoding failure.
	ErrMalformed = errors.New("malformed document")
)

// DecodeError locates a structural problem in a document.
type DecodeError struct {
	Path string
	Msg  string
}

func (e *DecodeError) Error() string { return e.Path + ": " + e.Msg }

func (e *DecodeError) Unwrap() error { return ErrMalformed }

// Decode builds a program from doc. Function scopes are allocated in the
// program's arena and bindings are declared in the scope that owns them.
func Decode(doc *Document) (*ast.Program, error) {
	if doc == nil || doc.Program == nil {
		return nil, &DecodeError{Path: "program", Msg: "document has no program"}
	}
	if doc.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: %d (want %d)", ErrVersion, doc.Version, SchemaVersion)
	}
	if doc.Program.Kind != ast.KindProgram.String() {
		return nil, &DecodeError{Path: "program", Msg: fmt.Sprintf("root is %q, want %q", doc.Program.Kind, ast.KindProgram)}
	}
	d := decoder{prog: ast.NewProgram()}
	d.scope = d.prog.Top
	stmts, err := d.stmts("program.stmts", doc.Program.Stmts)
	if err != nil {
		return nil, err
	}
	d.prog.Stmts = stmts
	setPos(d.prog, doc.Program.Pos)
	return d.prog, nil
}

type decoder struct {
	prog  *ast.Program
	scope symbols.ScopeID
}

func fail(path, format string, args ...any) error {
	return &DecodeError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

func setPos(n ast.Node, p *Pos) {
	if p == nil {
		return
	}
	n.SetSource(source.Pos{Offset: p.Offset, Line: p.Line, Column: p.Column})
}

func (d *decoder) declare(name string) {
	if name != "" {
		d.prog.Scope(d.scope).DeclareName(name)
	}
}

func (d *decoder) stmts(path string, list []*Node) ([]ast.Stmt, error) {
	out := make([]ast.Stmt, 0, len(list))
	for i, n := range list {
		s, err := d.stmt(fmt.Sprintf("%s[%d]", path, i), n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) exprs(path string, list []*Node) ([]ast.Expr, error) {
	out := make([]ast.Expr, 0, len(list))
	for i, n := range list {
		e, err := d.expr(fmt.Sprintf("%s[%d]", path, i), n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (d *decoder) optExpr(path string, n *Node) (ast.Expr, error) {
	if n == nil {
		return nil, nil
	}
	return d.expr(path, n)
}

func (d *decoder) optStmt(path string, n *Node) (ast.Stmt, error) {
	if n == nil {
		return nil, nil
	}
	return d.stmt(path, n)
}

func (d *decoder) block(path string, n *Node) (*ast.Block, error) {
	if n == nil {
		return nil, fail(path, "missing block")
	}
	if n.Kind != ast.KindBlock.String() {
		return nil, fail(path, "got %q, want %q", n.Kind, ast.KindBlock)
	}
	stmts, err := d.stmts(path+".stmts", n.Stmts)
	if err != nil {
		return nil, err
	}
	b := &ast.Block{Stmts: stmts, Global: n.Global}
	setPos(b, n.Pos)
	return b, nil
}

func (d *decoder) vars(path string, n *Node) (*ast.Vars, error) {
	v := &ast.Vars{Multiline: n.Multiline}
	for i, decl := range n.Decls {
		p := fmt.Sprintf("%s.decls[%d]", path, i)
		if decl == nil || decl.Kind != ast.KindVar.String() {
			return nil, fail(p, "want a %q node", ast.KindVar)
		}
		init, err := d.optExpr(p+".x", decl.X)
		if err != nil {
			return nil, err
		}
		d.declare(decl.Name)
		one := &ast.Var{Name: decl.Name, Init: init}
		setPos(one, decl.Pos)
		v.List = append(v.List, one)
	}
	return v, nil
}

func (d *decoder) stmt(path string, n *Node) (ast.Stmt, error) {
	if n == nil {
		return nil, fail(path, "missing statement")
	}
	kind, ok := ast.KindByName(n.Kind)
	if !ok {
		return nil, fail(path, "unknown kind %q", n.Kind)
	}
	var (
		s   ast.Stmt
		err error
	)
	switch kind {
	case ast.KindBlock:
		return d.block(path, n)
	case ast.KindVars:
		s, err = d.vars(path, n)
	case ast.KindExprStmt:
		var x ast.Expr
		if x, err = d.required(path+".x", n.X); err != nil {
			return nil, err
		}
		return ast.NewExprStmt(x), nil
	case ast.KindIf:
		s, err = d.ifStmt(path, n)
	case ast.KindWhile:
		w := &ast.While{}
		if w.Cond, err = d.required(path+".cond", n.Cond); err == nil {
			w.Body, err = d.requiredStmt(path+".body", n.Body)
		}
		s = w
	case ast.KindDoWhile:
		w := &ast.DoWhile{}
		if w.Body, err = d.requiredStmt(path+".body", n.Body); err == nil {
			w.Cond, err = d.required(path+".cond", n.Cond)
		}
		s = w
	case ast.KindFor:
		s, err = d.forStmt(path, n)
	case ast.KindForIn:
		s, err = d.forIn(path, n)
	case ast.KindSwitch:
		s, err = d.switchStmt(path, n)
	case ast.KindTry:
		s, err = d.tryStmt(path, n)
	case ast.KindLabel:
		l := &ast.Label{Name: n.Name}
		l.Stmt, err = d.requiredStmt(path+".body", n.Body)
		s = l
	case ast.KindBreak:
		s = &ast.Break{Label: n.Name}
	case ast.KindContinue:
		s = &ast.Continue{Label: n.Name}
	case ast.KindReturn:
		r := &ast.Return{}
		r.X, err = d.optExpr(path+".x", n.X)
		s = r
	case ast.KindThrow:
		t := &ast.Throw{}
		t.X, err = d.required(path+".x", n.X)
		s = t
	case ast.KindDebugger:
		s = &ast.Debugger{}
	case ast.KindEmpty:
		s = &ast.Empty{}
	case ast.KindDocComment:
		s, err = d.docComment(path, n)
	case ast.KindFunction:
		// a function in statement position is a declaration
		var fn ast.Expr
		if fn, err = d.function(path, n); err != nil {
			return nil, err
		}
		return ast.NewExprStmt(fn), nil
	default:
		return nil, fail(path, "%s is not a statement", kind)
	}
	if err != nil {
		return nil, err
	}
	setPos(s, n.Pos)
	return s, nil
}

func (d *decoder) required(path string, n *Node) (ast.Expr, error) {
	if n == nil {
		return nil, fail(path, "missing expression")
	}
	return d.expr(path, n)
}

func (d *decoder) requiredStmt(path string, n *Node) (ast.Stmt, error) {
	if n == nil {
		return nil, fail(path, "missing statement")
	}
	return d.stmt(path, n)
}

func (d *decoder) ifStmt(path string, n *Node) (*ast.If, error) {
	cond, err := d.required(path+".cond", n.Cond)
	if err != nil {
		return nil, err
	}
	then, err := d.requiredStmt(path+".then", n.Then)
	if err != nil {
		return nil, err
	}
	els, err := d.optStmt(path+".else", n.Else)
	if err != nil {
		return nil, err
	}
	return &ast.If{Cond: cond, Then: then, Else: els}, nil
}

func (d *decoder) forStmt(path string, n *Node) (*ast.For, error) {
	f := &ast.For{}
	var err error
	if f.InitExpr, err = d.optExpr(path+".x", n.X); err != nil {
		return nil, err
	}
	if len(n.Decls) > 0 {
		if f.InitVars, err = d.vars(path, n); err != nil {
			return nil, err
		}
	}
	if f.Cond, err = d.optExpr(path+".cond", n.Cond); err != nil {
		return nil, err
	}
	if f.Update, err = d.optExpr(path+".update", n.Update); err != nil {
		return nil, err
	}
	if f.Body, err = d.requiredStmt(path+".body", n.Body); err != nil {
		return nil, err
	}
	return f, nil
}

func (d *decoder) forIn(path string, n *Node) (*ast.ForIn, error) {
	if n.Name == "" && n.X == nil {
		return nil, fail(path, "missing iteration variable or target")
	}
	d.declare(n.Name)
	f := &ast.ForIn{IterVar: n.Name}
	var err error
	if f.IterExpr, err = d.optExpr(path+".x", n.X); err != nil {
		return nil, err
	}
	if f.Object, err = d.required(path+".object", n.Object); err != nil {
		return nil, err
	}
	if f.Body, err = d.requiredStmt(path+".body", n.Body); err != nil {
		return nil, err
	}
	return f, nil
}

func (d *decoder) switchStmt(path string, n *Node) (*ast.Switch, error) {
	tag, err := d.required(path+".x", n.X)
	if err != nil {
		return nil, err
	}
	sw := &ast.Switch{Tag: tag}
	for i, m := range n.Members {
		p := fmt.Sprintf("%s.members[%d]", path, i)
		if m == nil {
			return nil, fail(p, "missing switch member")
		}
		body, err := d.stmts(p+".stmts", m.Stmts)
		if err != nil {
			return nil, err
		}
		var member ast.SwitchMember
		switch m.Kind {
		case ast.KindCase.String():
			label, err := d.required(p+".x", m.X)
			if err != nil {
				return nil, err
			}
			member = &ast.Case{Label: label, Stmts: body}
		case ast.KindDefault.String():
			member = &ast.Default{Stmts: body}
		default:
			return nil, fail(p, "got %q, want %q or %q", m.Kind, ast.KindCase, ast.KindDefault)
		}
		setPos(member, m.Pos)
		sw.Members = append(sw.Members, member)
	}
	return sw, nil
}

func (d *decoder) tryStmt(path string, n *Node) (*ast.Try, error) {
	protected, err := d.block(path+".block", n.Block)
	if err != nil {
		return nil, err
	}
	t := &ast.Try{Block: protected}
	for i, c := range n.Catches {
		p := fmt.Sprintf("%s.catches[%d]", path, i)
		if c == nil || c.Kind != ast.KindCatch.String() {
			return nil, fail(p, "want a %q node", ast.KindCatch)
		}
		d.declare(c.Name)
		cond, err := d.optExpr(p+".cond", c.Cond)
		if err != nil {
			return nil, err
		}
		body, err := d.block(p+".body", c.Body)
		if err != nil {
			return nil, err
		}
		clause := &ast.Catch{Param: c.Name, Cond: cond, Body: body}
		setPos(clause, c.Pos)
		t.Catches = append(t.Catches, clause)
	}
	if n.Finally != nil {
		if t.Finally, err = d.block(path+".finally", n.Finally); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (d *decoder) docComment(path string, n *Node) (*ast.DocComment, error) {
	doc := &ast.DocComment{}
	for i, tag := range n.Tags {
		if tag.Value == nil {
			doc.Tag(tag.Name, tag.Text)
			continue
		}
		v, err := d.expr(fmt.Sprintf("%s.tags[%d].value", path, i), tag.Value)
		if err != nil {
			return nil, err
		}
		doc.TagExpr(tag.Name, v)
	}
	return doc, nil
}

func (d *decoder) function(path string, n *Node) (*ast.Function, error) {
	fn := d.prog.NewFunction(d.scope, n.Name, n.Params...)
	if n.Body == nil {
		return nil, fail(path+".body", "missing block")
	}
	outer := d.scope
	d.scope = fn.Scope
	body, err := d.block(path+".body", n.Body)
	d.scope = outer
	if err != nil {
		return nil, err
	}
	fn.Body = body
	setPos(fn, n.Pos)
	return fn, nil
}

func (d *decoder) expr(path string, n *Node) (ast.Expr, error) {
	if n == nil {
		return nil, fail(path, "missing expression")
	}
	kind, ok := ast.KindByName(n.Kind)
	if !ok {
		return nil, fail(path, "unknown kind %q", n.Kind)
	}
	var (
		e   ast.Expr
		err error
	)
	switch kind {
	case ast.KindBinary:
		op, ok := ast.BinaryOpBySymbol(n.Op)
		if !ok {
			return nil, fail(path+".op", "unknown binary operator %q", n.Op)
		}
		b := &ast.Binary{Op: op}
		if b.X, err = d.required(path+".x", n.X); err == nil {
			b.Y, err = d.required(path+".y", n.Y)
		}
		e = b
	case ast.KindPrefix, ast.KindPostfix:
		e, err = d.unary(path, kind, n)
	case ast.KindConditional:
		c := &ast.Conditional{}
		if c.Test, err = d.required(path+".cond", n.Cond); err == nil {
			if c.Then, err = d.required(path+".then", n.Then); err == nil {
				c.Else, err = d.required(path+".else", n.Else)
			}
		}
		e = c
	case ast.KindInvocation:
		call := &ast.Invocation{}
		if call.Fn, err = d.required(path+".x", n.X); err == nil {
			call.Args, err = d.exprs(path+".args", n.Args)
		}
		e = call
	case ast.KindNew:
		nw := &ast.New{}
		if nw.Ctor, err = d.required(path+".x", n.X); err == nil {
			nw.Args, err = d.exprs(path+".args", n.Args)
		}
		e = nw
	case ast.KindArrayAccess:
		a := &ast.ArrayAccess{}
		if a.X, err = d.required(path+".x", n.X); err == nil {
			a.Index, err = d.required(path+".y", n.Y)
		}
		e = a
	case ast.KindArrayLit:
		a := &ast.ArrayLit{}
		a.Elems, err = d.exprs(path+".args", n.Args)
		e = a
	case ast.KindObjectLit:
		e, err = d.objectLit(path, n)
	case ast.KindNameRef:
		if n.Name == "" {
			return nil, fail(path+".name", "missing name")
		}
		ref := &ast.NameRef{Name: n.Name}
		ref.Qualifier, err = d.optExpr(path+".x", n.X)
		e = ref
	case ast.KindThis:
		e = &ast.This{}
	case ast.KindNull:
		e = &ast.Null{}
	case ast.KindBool:
		e = ast.NewBool(n.Bool)
	case ast.KindInt:
		e = ast.NewInt(n.Int)
	case ast.KindDouble:
		v, perr := strconv.ParseFloat(n.Number, 64)
		if perr != nil {
			return nil, fail(path+".number", "invalid number %q", n.Number)
		}
		e = ast.NewDouble(v)
	case ast.KindString:
		e, err = stringLit(path, n)
	case ast.KindRegExp:
		e = &ast.RegExp{Pattern: n.Text, Flags: n.Flags}
	case ast.KindFunction:
		e, err = d.function(path, n)
	case ast.KindDocComment:
		e, err = d.docComment(path, n)
	case ast.KindChameleon:
		target, terr := d.required(path+".x", n.X)
		if terr != nil {
			return nil, terr
		}
		c := ast.NewChameleon()
		setPos(c, n.Pos)
		c.Resolve(target)
		return c, nil
	default:
		return nil, fail(path, "%s is not an expression", kind)
	}
	if err != nil {
		return nil, err
	}
	setPos(e, n.Pos)
	return e, nil
}

func (d *decoder) unary(path string, kind ast.Kind, n *Node) (ast.Expr, error) {
	op, ok := ast.UnaryOpBySymbol(n.Op)
	if !ok {
		return nil, fail(path+".op", "unknown unary operator %q", n.Op)
	}
	if kind == ast.KindPostfix && !op.IsPostfix() || kind == ast.KindPrefix && !op.IsPrefix() {
		return nil, fail(path+".op", "%q cannot be used in %s position", n.Op, kind)
	}
	x, err := d.required(path+".x", n.X)
	if err != nil {
		return nil, err
	}
	if kind == ast.KindPostfix {
		return ast.NewPostfix(op, x), nil
	}
	return ast.NewPrefix(op, x), nil
}

func (d *decoder) objectLit(path string, n *Node) (*ast.ObjectLit, error) {
	obj := &ast.ObjectLit{Multiline: n.Multiline}
	for i, p := range n.Props {
		pp := fmt.Sprintf("%s.props[%d]", path, i)
		if p == nil || p.Kind != ast.KindProperty.String() {
			return nil, fail(pp, "want a %q node", ast.KindProperty)
		}
		label, err := d.required(pp+".x", p.X)
		if err != nil {
			return nil, err
		}
		value, err := d.required(pp+".y", p.Y)
		if err != nil {
			return nil, err
		}
		prop := &ast.Property{Label: label, Value: value}
		setPos(prop, p.Pos)
		obj.Props = append(obj.Props, prop)
	}
	return obj, nil
}

func stringLit(path string, n *Node) (*ast.StringLit, error) {
	if len(n.Quote) > 1 {
		return nil, fail(path+".quote", "quote must be a single character, got %q", n.Quote)
	}
	s := &ast.StringLit{Value: n.Text, Verbatim: n.Verbatim, ForceDouble: n.ForceDouble}
	if n.Quote != "" {
		s.Quote = n.Quote[0]
	}
	return s, nil
}
