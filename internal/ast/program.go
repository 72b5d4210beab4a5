package ast

import "jsgen/internal/symbols"

// Program is the root node. It owns the scope arena for the whole tree: a
// root scope seeded with the reserved words and the top-level scope nested
// in it. Function literals allocate their scopes from the same arena.
type Program struct {
	meta
	Stmts  []Stmt
	Scopes *symbols.Scopes
	Root   symbols.ScopeID
	Top    symbols.ScopeID
}

func (*Program) Kind() Kind { return KindProgram }

func NewProgram() *Program {
	scopes := symbols.NewScopes(0)
	root := scopes.NewRoot()
	top := scopes.New(symbols.ScopeProgram, root, "Global")
	return &Program{Scopes: scopes, Root: root, Top: top}
}

// Scope returns the scope with the given ID. The pointer is invalidated by
// the next scope allocation.
func (p *Program) Scope(id symbols.ScopeID) *symbols.Scope {
	return p.Scopes.MustGet(id)
}

// TopScope returns the top-level scope.
func (p *Program) TopScope() *symbols.Scope { return p.Scope(p.Top) }

// Add appends top-level statements.
func (p *Program) Add(stmts ...Stmt) { p.Stmts = append(p.Stmts, stmts...) }

// NewFunction allocates a function literal with a fresh scope nested in
// parent. A non-empty name is declared in parent, and each parameter in the
// function's own scope.
func (p *Program) NewFunction(parent symbols.ScopeID, name string, params ...string) *Function {
	desc := "function"
	if name != "" {
		desc = "function " + name
		p.Scope(parent).DeclareName(name)
	}
	fn := &Function{
		Name:  name,
		Body:  &Block{},
		Scope: p.Scopes.Inner(parent, desc),
	}
	for _, param := range params {
		fn.Params = append(fn.Params, &Parameter{Name: p.Scope(fn.Scope).DeclareName(param)})
	}
	return fn
}
