package format

import "jsgen/internal/ast"

// startsWithFunctionOrObject reports whether the left-most sub-expression of
// e is a function or object literal. As the first token of a statement those
// would read as a declaration or a block. Array literals, new and prefix
// operators start with their own token and end the search.
func startsWithFunctionOrObject(e ast.Expr) bool {
	for {
		switch n := ast.Unwrap(e).(type) {
		case *ast.Function, *ast.ObjectLit:
			return true
		case *ast.ArrayAccess:
			e = n.X
		case *ast.Binary:
			e = n.X
		case *ast.Conditional:
			e = n.Test
		case *ast.Invocation:
			e = n.Fn
		case *ast.NameRef:
			if n.Qualifier == nil {
				return false
			}
			e = n.Qualifier
		case *ast.Postfix:
			e = n.X
		default:
			return false
		}
	}
}
