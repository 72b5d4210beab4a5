package ast

// Visitor's Visit is called for each node by Walk. If the result w is not
// nil, Walk visits each child of node with w, followed by w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree in depth-first declaration order. Resolved
// chameleons are walked through; unresolved ones are leaves. Missing
// children are skipped.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	switch n := node.(type) {
	case *Program:
		walkStmts(v, n.Stmts)
	case *Block:
		walkStmts(v, n.Stmts)
	case *Vars:
		for _, d := range n.List {
			Walk(v, d)
		}
	case *Var:
		Walk(v, n.Init)
	case *ExprStmt:
		Walk(v, n.X)
	case *If:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *While:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *DoWhile:
		Walk(v, n.Body)
		Walk(v, n.Cond)
	case *For:
		if n.InitVars != nil {
			Walk(v, n.InitVars)
		}
		Walk(v, n.InitExpr)
		Walk(v, n.Cond)
		Walk(v, n.Update)
		Walk(v, n.Body)
	case *ForIn:
		Walk(v, n.IterExpr)
		Walk(v, n.Object)
		Walk(v, n.Body)
	case *Switch:
		Walk(v, n.Tag)
		for _, m := range n.Members {
			Walk(v, m)
		}
	case *Case:
		Walk(v, n.Label)
		walkStmts(v, n.Stmts)
	case *Default:
		walkStmts(v, n.Stmts)
	case *Try:
		walkBlock(v, n.Block)
		for _, c := range n.Catches {
			Walk(v, c)
		}
		walkBlock(v, n.Finally)
	case *Catch:
		Walk(v, n.Cond)
		walkBlock(v, n.Body)
	case *Label:
		Walk(v, n.Stmt)
	case *Return:
		Walk(v, n.X)
	case *Throw:
		Walk(v, n.X)
	case *Binary:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *Prefix:
		Walk(v, n.X)
	case *Postfix:
		Walk(v, n.X)
	case *Conditional:
		Walk(v, n.Test)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *Invocation:
		Walk(v, n.Fn)
		walkExprs(v, n.Args)
	case *New:
		Walk(v, n.Ctor)
		walkExprs(v, n.Args)
	case *ArrayAccess:
		Walk(v, n.X)
		Walk(v, n.Index)
	case *ArrayLit:
		walkExprs(v, n.Elems)
	case *ObjectLit:
		for _, p := range n.Props {
			Walk(v, p)
		}
	case *Property:
		Walk(v, n.Label)
		Walk(v, n.Value)
	case *NameRef:
		Walk(v, n.Qualifier)
	case *Function:
		for _, p := range n.Params {
			Walk(v, p)
		}
		walkBlock(v, n.Body)
	case *DocComment:
		for _, tag := range n.Tags {
			Walk(v, tag.Value)
		}
	case *Chameleon:
		Walk(v, n.target)
	case *Break, *Continue, *Debugger, *Empty, *This, *Null, *Bool, *Int,
		*Double, *StringLit, *RegExp, *Parameter:
		// leaves
	default:
		contractViolation(node.Kind(), "", "unexpected node %T in Walk", node)
	}
	v.Visit(nil)
}

func walkStmts(v Visitor, list []Stmt) {
	for _, s := range list {
		Walk(v, s)
	}
}

func walkExprs(v Visitor, list []Expr) {
	for _, e := range list {
		Walk(v, e)
	}
}

func walkBlock(v Visitor, b *Block) {
	if b != nil {
		Walk(v, b)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for each node in depth-first order, starting with node.
// If f returns true, Inspect descends into the node's children, then calls
// f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
