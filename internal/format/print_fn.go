package format

import "jsgen/internal/ast"

func (p *printer) function(fn *ast.Function) {
	if fn.Body == nil {
		violation(fn, "Body", "required child is missing")
	}
	p.w.Print("function")
	if fn.Name != "" {
		p.w.Space()
		p.w.Print(fn.Name)
	} else {
		p.w.SpaceOpt()
	}
	p.w.PrintByte('(')
	for i, param := range fn.Params {
		if param == nil {
			violation(fn, "Params", "nil parameter at index %d", i)
		}
		if i > 0 {
			p.w.PrintByte(',')
			p.w.SpaceOpt()
		}
		p.w.Print(param.Name)
	}
	p.w.PrintByte(')')
	p.w.SpaceOpt()
	// the body ends inside an expression; the caller decides what follows
	p.bracedBlock(fn.Body.Stmts, false)
}
