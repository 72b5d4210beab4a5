package ast

// Chameleon is a placeholder expression resolved exactly once after it is
// placed in the tree. It lets producers reference a value before it exists.
// Every chameleon must be resolved before emission.
type Chameleon struct {
	src    any
	target Expr
}

func NewChameleon() *Chameleon { return &Chameleon{} }

// Resolve binds the placeholder. Resolving twice, to nil, or to itself is a
// contract violation.
func (c *Chameleon) Resolve(e Expr) {
	switch {
	case c.target != nil:
		contractViolation(KindChameleon, "Target", "already resolved")
	case e == nil:
		contractViolation(KindChameleon, "Target", "resolved to nil")
	case e == Expr(c):
		contractViolation(KindChameleon, "Target", "resolved to itself")
	case Unwrap(e) == nil:
		contractViolation(KindChameleon, "Target", "resolved to an unresolved chameleon")
	}
	c.target = e
	if c.src != nil && e.Source() == nil {
		e.SetSource(c.src)
	}
}

func (c *Chameleon) Resolved() bool { return c.target != nil }

// Target returns the resolved expression, nil before Resolve.
func (c *Chameleon) Target() Expr { return c.target }

func (c *Chameleon) Source() any {
	if c.target != nil {
		return c.target.Source()
	}
	return c.src
}

func (c *Chameleon) SetSource(src any) {
	if c.target != nil {
		c.target.SetSource(src)
		return
	}
	c.src = src
}

func (*Chameleon) Kind() Kind { return KindChameleon }
func (*Chameleon) aNode()     {}
func (*Chameleon) exprNode()  {}

// Unwrap strips resolved chameleons. It returns nil for an unresolved one.
func Unwrap(e Expr) Expr {
	for {
		c, ok := e.(*Chameleon)
		if !ok {
			return e
		}
		if c.target == nil {
			return nil
		}
		e = c.target
	}
}
