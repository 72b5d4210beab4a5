package ast

import (
	"math"

	"jsgen/internal/diag"
	"jsgen/internal/symbols"
)

type Binary struct {
	meta
	Op   BinaryOp
	X, Y Expr
}

type Prefix struct {
	meta
	Op UnaryOp
	X  Expr
}

type Postfix struct {
	meta
	Op UnaryOp
	X  Expr
}

type Conditional struct {
	meta
	Test, Then, Else Expr
}

type Invocation struct {
	meta
	Fn   Expr
	Args []Expr
}

type New struct {
	meta
	Ctor Expr
	Args []Expr
}

type ArrayAccess struct {
	meta
	X     Expr
	Index Expr
}

type ArrayLit struct {
	meta
	Elems []Expr
}

// Property is one `label: value` initializer. Label is a *StringLit for a
// literal key, a *NameRef rendered by its simple name, or any expression.
type Property struct {
	meta
	Label Expr
	Value Expr
}

type ObjectLit struct {
	meta
	Props     []*Property
	Multiline bool
}

// NameRef is Name, or Qualifier.Name when Qualifier is set.
type NameRef struct {
	meta
	Name      string
	Qualifier Expr
}

type This struct{ meta }

type Parameter struct {
	meta
	Name string
}

// Function is a function literal. Scope is owned by the function and its
// parent is the enclosing scope; see Program.NewFunction.
type Function struct {
	meta
	Name   string // optional
	Params []*Parameter
	Body   *Block
	Scope  symbols.ScopeID
}

func (*Binary) Kind() Kind      { return KindBinary }
func (*Prefix) Kind() Kind      { return KindPrefix }
func (*Postfix) Kind() Kind     { return KindPostfix }
func (*Conditional) Kind() Kind { return KindConditional }
func (*Invocation) Kind() Kind  { return KindInvocation }
func (*New) Kind() Kind         { return KindNew }
func (*ArrayAccess) Kind() Kind { return KindArrayAccess }
func (*ArrayLit) Kind() Kind    { return KindArrayLit }
func (*Property) Kind() Kind    { return KindProperty }
func (*ObjectLit) Kind() Kind   { return KindObjectLit }
func (*NameRef) Kind() Kind     { return KindNameRef }
func (*This) Kind() Kind        { return KindThis }
func (*Parameter) Kind() Kind   { return KindParameter }
func (*Function) Kind() Kind    { return KindFunction }

func (*Binary) exprNode()      {}
func (*Prefix) exprNode()      {}
func (*Postfix) exprNode()     {}
func (*Conditional) exprNode() {}
func (*Invocation) exprNode()  {}
func (*New) exprNode()         {}
func (*ArrayAccess) exprNode() {}
func (*ArrayLit) exprNode()    {}
func (*ObjectLit) exprNode()   {}
func (*NameRef) exprNode()     {}
func (*This) exprNode()        {}
func (*Function) exprNode()    {}

func NewBinary(op BinaryOp, x, y Expr) *Binary { return &Binary{Op: op, X: x, Y: y} }

func NewPrefix(op UnaryOp, x Expr) *Prefix {
	if !op.IsPrefix() {
		contractViolation(KindPrefix, "Op", "%q is not a prefix operator", op.Symbol())
	}
	return &Prefix{Op: op, X: x}
}

func NewPostfix(op UnaryOp, x Expr) *Postfix {
	if !op.IsPostfix() {
		contractViolation(KindPostfix, "Op", "%q is not a postfix operator", op.Symbol())
	}
	return &Postfix{Op: op, X: x}
}

func NewName(name string) *NameRef { return &NameRef{Name: name} }

// NewQualified builds Qualifier.Name.
func NewQualified(qualifier Expr, name string) *NameRef {
	return &NameRef{Name: name, Qualifier: qualifier}
}

func NewCall(fn Expr, args ...Expr) *Invocation { return &Invocation{Fn: fn, Args: args} }

func NewNew(ctor Expr, args ...Expr) *New { return &New{Ctor: ctor, Args: args} }

// IsNegativeNumber reports numeric literals that render with a leading minus.
func IsNegativeNumber(e Expr) bool {
	switch n := Unwrap(e).(type) {
	case *Int:
		return n.Value < 0
	case *Double:
		return !math.IsNaN(n.Value) && math.Signbit(n.Value)
	}
	return false
}

// IsNumber reports integer and double literals.
func IsNumber(e Expr) bool {
	switch Unwrap(e).(type) {
	case *Int, *Double:
		return true
	}
	return false
}

func contractViolation(kind Kind, field, format string, args ...any) {
	diag.Violation(kind.String(), field, format, args...)
}
