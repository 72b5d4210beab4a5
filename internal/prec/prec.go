// Package prec ranks expressions by binding strength and decides where the
// printer must add parentheses or separating spaces.
//
// Ranks grow with binding strength: the comma operator binds loosest, literals
// and other primary expressions bind tightest. A child is parenthesized when
// its parent binds tighter, or binds equally and the child sits on the side
// the operator does not associate towards.
package prec

import "jsgen/internal/ast"

const (
	Comma       = 1
	Assign      = 2
	Conditional = 3
	// binary operators occupy 4 (||) through 13 (* / %)
	Unary   = 14
	Member  = 15
	New     = 16
	Primary = 17
)

// Operator is implemented by ast.BinaryOp and ast.UnaryOp.
type Operator interface {
	Symbol() string
	Precedence() int
	Keyword() bool
}

// Of returns the rank of e as it renders.
func Of(e ast.Expr) int {
	switch n := ast.Unwrap(e).(type) {
	case *ast.Binary:
		return n.Op.Precedence()
	case *ast.Prefix, *ast.Postfix:
		return Unary
	case *ast.Conditional:
		return Conditional
	case *ast.Invocation, *ast.ArrayAccess:
		return Member
	case *ast.NameRef:
		if n.Qualifier != nil {
			return Member
		}
		return Primary
	case *ast.New:
		return New
	case *ast.Int, *ast.Double:
		if ast.IsNegativeNumber(n) {
			return Unary
		}
		return Primary
	}
	return Primary
}

// NeedsParens is the general rule. wrongAssoc is true when the child sits on
// the side its parent operator does not associate towards.
func NeedsParens(parent, child int, wrongAssoc bool) bool {
	return parent > child || parent == child && wrongAssoc
}

// Wrap applies the general rule to child under a parent of rank parent.
func Wrap(parent int, child ast.Expr, wrongAssoc bool) bool {
	return NeedsParens(parent, Of(child), wrongAssoc)
}

// BinaryLeft reports whether the left operand of op needs parentheses.
func BinaryLeft(op ast.BinaryOp, x ast.Expr) bool {
	return Wrap(op.Precedence(), x, !op.LeftAssoc())
}

// BinaryRight reports whether the right operand of op needs parentheses.
// A logical-and on the right is always parenthesized.
func BinaryRight(op ast.BinaryOp, y ast.Expr) bool {
	if b, ok := ast.Unwrap(y).(*ast.Binary); ok && b.Op == ast.OpAnd {
		return true
	}
	return Wrap(op.Precedence(), y, op.LeftAssoc())
}

// PrefixOperand reports whether the operand of a prefix operator needs
// parentheses.
func PrefixOperand(x ast.Expr) bool {
	return Wrap(Unary, x, false)
}

// PostfixOperand reports whether the operand of a postfix operator needs
// parentheses; `(-a)++` keeps them.
func PostfixOperand(x ast.Expr) bool {
	return Wrap(Unary, x, true)
}

// ConditionalTest reports whether the test of `?:` needs parentheses; a
// nested conditional there does.
func ConditionalTest(x ast.Expr) bool { return Wrap(Conditional, x, true) }

func ConditionalBranch(x ast.Expr) bool { return Wrap(Conditional, x, false) }

// Qualifier reports whether the base of a member access, index or call needs
// parentheses. Numeric literals always get them so `(1).toString` is not
// read as a malformed number.
func Qualifier(q ast.Expr) bool {
	if ast.IsNumber(q) {
		return true
	}
	return Wrap(Member, q, false)
}

// IsComma reports a top-level comma expression. Those are parenthesized in
// argument, initializer, array element and property positions.
func IsComma(e ast.Expr) bool {
	b, ok := ast.Unwrap(e).(*ast.Binary)
	return ok && b.Op == ast.OpComma
}

// ConstructorNeedsParens reports whether the callee of `new` must be wrapped:
// it has to be a member expression whose chain contains no call, otherwise
// `new f().g()` would bind the arguments to the wrong callee.
func ConstructorNeedsParens(ctor ast.Expr) bool {
	e := ast.Unwrap(ctor)
	switch e.(type) {
	case *ast.NameRef, *ast.ArrayAccess:
	default:
		return true
	}
	for e != nil {
		switch n := e.(type) {
		case *ast.NameRef:
			e = ast.Unwrap(n.Qualifier)
		case *ast.ArrayAccess:
			e = ast.Unwrap(n.X)
		case *ast.Invocation, *ast.New:
			return true
		default:
			return false
		}
	}
	return false
}

// NeedsSpace reports whether a space is required between the operator token
// and the operand that follows it, so the two do not lex as something else:
// keyword operators, `- -x`, `- --x`, `- -1`, `+ +x`, `+ ++x`, `/ /re/`
// (a comment) and `< !--x` (an HTML-like comment opener in scripts). Only the left-most token of arg can collide, so a higher-ranked
// binary operand, which renders without parentheses, is checked through its
// left operand.
func NeedsSpace(op Operator, arg ast.Expr) bool {
	if op.Keyword() {
		return true
	}
	switch n := ast.Unwrap(arg).(type) {
	case *ast.Binary:
		if n.Op.Precedence() > op.Precedence() {
			return NeedsSpace(op, n.X)
		}
		return false
	case *ast.Prefix:
		switch op.Symbol() {
		case "-":
			return n.Op == ast.OpNeg || n.Op == ast.OpDec
		case "+":
			return n.Op == ast.OpPos || n.Op == ast.OpInc
		case "<":
			if n.Op != ast.OpNot {
				return false
			}
			dec, ok := ast.Unwrap(n.X).(*ast.Prefix)
			return ok && dec.Op == ast.OpDec
		}
		return false
	case *ast.Int, *ast.Double:
		return op.Symbol() == "-" && ast.IsNegativeNumber(n)
	case *ast.RegExp:
		return op.Symbol() == "/"
	}
	return false
}
