package format

import (
	"strings"

	"jsgen/internal/ast"
	"jsgen/internal/prec"
	"jsgen/internal/symbols"
)

func (p *printer) objectLit(n *ast.ObjectLit) {
	p.w.PrintByte('{')
	if len(n.Props) == 0 {
		p.w.PrintByte('}')
		return
	}
	multiline := n.Multiline && !p.w.Compact()
	if multiline {
		p.w.IndentIn()
		p.w.Newline()
	}
	for i, prop := range n.Props {
		if prop == nil {
			violation(n, "Props", "nil property at index %d", i)
		}
		if i > 0 {
			p.w.PrintByte(',')
			if multiline {
				p.w.Newline()
			} else {
				p.w.SpaceOpt()
			}
		}
		p.property(prop)
	}
	if multiline {
		p.w.IndentOut()
		p.w.Newline()
	}
	p.w.PrintByte('}')
}

func (p *printer) property(prop *ast.Property) {
	need(prop, "Label", prop.Label)
	need(prop, "Value", prop.Value)
	p.propertyLabel(prop.Label)
	p.w.PrintByte(':')
	p.w.SpaceOpt()
	p.parenExpr(prop.Value, prec.IsComma(prop.Value))
}

// propertyLabel renders an identifier-like label bare. A name reference
// contributes its simple name only.
func (p *printer) propertyLabel(label ast.Expr) {
	switch l := ast.Unwrap(label).(type) {
	case *ast.NameRef:
		p.w.Print(l.Name)
	case *ast.StringLit:
		if !l.Verbatim && (symbols.IsIdentifierName(l.Value) || isArrayIndex(l.Value)) {
			p.w.Print(l.Value)
			return
		}
		p.stringLit(l)
	default:
		p.parenExpr(label, prec.IsComma(label))
	}
}

// isArrayIndex reports decimal integers that read back as the same key.
func isArrayIndex(s string) bool {
	if s == "" || len(s) > 15 {
		return false
	}
	if s == "0" {
		return true
	}
	if s[0] == '0' {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}
