package ast

// Block is a braced statement list. A Global block prints its statements
// without braces.
type Block struct {
	meta
	Stmts  []Stmt
	Global bool
}

// Var is one name/initializer pair of a Vars list.
type Var struct {
	meta
	Name string
	Init Expr // optional
}

// Vars is a `var` declaration list. Multiline only affects layout.
type Vars struct {
	meta
	List      []*Var
	Multiline bool
}

// ExprStmt wraps an expression used as a statement. It has no source
// metadata of its own: Source reports the expression's and SetSource panics.
type ExprStmt struct {
	X Expr
}

type If struct {
	meta
	Cond Expr
	Then Stmt
	Else Stmt // optional
}

type While struct {
	meta
	Cond Expr
	Body Stmt
}

type DoWhile struct {
	meta
	Body Stmt
	Cond Expr
}

// For is a C-style loop. At most one of InitExpr and InitVars is set.
type For struct {
	meta
	InitExpr Expr
	InitVars *Vars
	Cond     Expr
	Update   Expr
	Body     Stmt
}

// ForIn iterates Object's keys. With IterVar set it renders as
// `for (var IterVar[ = IterExpr] in Object)`, otherwise IterExpr is the
// assignment target.
type ForIn struct {
	meta
	IterVar  string
	IterExpr Expr
	Object   Expr
	Body     Stmt
}

// SwitchMember is a Case or a Default.
type SwitchMember interface {
	Node
	Body() []Stmt
	switchMember()
}

type Switch struct {
	meta
	Tag     Expr
	Members []SwitchMember
}

type Case struct {
	meta
	Label Expr
	Stmts []Stmt
}

type Default struct {
	meta
	Stmts []Stmt
}

type Try struct {
	meta
	Block   *Block
	Catches []*Catch
	Finally *Block // optional
}

// Catch binds Param in Body. Cond is the non-standard guard of
// `catch (e if cond)`.
type Catch struct {
	meta
	Param string
	Cond  Expr // optional
	Body  *Block
}

type Label struct {
	meta
	Name string
	Stmt Stmt
}

type Break struct {
	meta
	Label string // optional
}

type Continue struct {
	meta
	Label string // optional
}

type Return struct {
	meta
	X Expr // optional
}

type Throw struct {
	meta
	X Expr
}

type Debugger struct{ meta }

type Empty struct{ meta }

func (*Block) Kind() Kind    { return KindBlock }
func (*Var) Kind() Kind      { return KindVar }
func (*Vars) Kind() Kind     { return KindVars }
func (*ExprStmt) Kind() Kind { return KindExprStmt }
func (*If) Kind() Kind       { return KindIf }
func (*While) Kind() Kind    { return KindWhile }
func (*DoWhile) Kind() Kind  { return KindDoWhile }
func (*For) Kind() Kind      { return KindFor }
func (*ForIn) Kind() Kind    { return KindForIn }
func (*Switch) Kind() Kind   { return KindSwitch }
func (*Case) Kind() Kind     { return KindCase }
func (*Default) Kind() Kind  { return KindDefault }
func (*Try) Kind() Kind      { return KindTry }
func (*Catch) Kind() Kind    { return KindCatch }
func (*Label) Kind() Kind    { return KindLabel }
func (*Break) Kind() Kind    { return KindBreak }
func (*Continue) Kind() Kind { return KindContinue }
func (*Return) Kind() Kind   { return KindReturn }
func (*Throw) Kind() Kind    { return KindThrow }
func (*Debugger) Kind() Kind { return KindDebugger }
func (*Empty) Kind() Kind    { return KindEmpty }

func (*Block) stmtNode()    {}
func (*Vars) stmtNode()     {}
func (*ExprStmt) stmtNode() {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*DoWhile) stmtNode()  {}
func (*For) stmtNode()      {}
func (*ForIn) stmtNode()    {}
func (*Switch) stmtNode()   {}
func (*Try) stmtNode()      {}
func (*Label) stmtNode()    {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}
func (*Return) stmtNode()   {}
func (*Throw) stmtNode()    {}
func (*Debugger) stmtNode() {}
func (*Empty) stmtNode()    {}

func (c *Case) Body() []Stmt    { return c.Stmts }
func (d *Default) Body() []Stmt { return d.Stmts }
func (*Case) switchMember()     {}
func (*Default) switchMember()  {}

func (s *ExprStmt) Source() any {
	if s.X == nil {
		return nil
	}
	return s.X.Source()
}

func (*ExprStmt) SetSource(any) {
	contractViolation(KindExprStmt, "Source", "expression statements take their source from the expression")
}

func (*ExprStmt) aNode() {}

// IsFunctionDeclaration reports whether s is a named function used as a
// statement, which renders as a declaration.
func IsFunctionDeclaration(s Stmt) bool {
	es, ok := s.(*ExprStmt)
	if !ok {
		return false
	}
	fn, ok := Unwrap(es.X).(*Function)
	return ok && fn.Name != ""
}

func NewExprStmt(x Expr) *ExprStmt { return &ExprStmt{X: x} }
