package format

import "jsgen/internal/ast"

// docComment prints `/** @tag value */` for one tag and a starred block,
// one tag per line, for more. Compact output keeps everything on one line.
func (p *printer) docComment(d *ast.DocComment) {
	if len(d.Tags) == 1 || len(d.Tags) > 1 && p.w.Compact() {
		p.w.Print("/**")
		for _, tag := range d.Tags {
			p.w.PrintByte(' ')
			p.docTag(tag)
		}
		p.w.Print(" */")
		return
	}
	p.w.Print("/**")
	for _, tag := range d.Tags {
		p.w.Newline()
		p.w.Print(" * ")
		p.docTag(tag)
	}
	p.w.Newline()
	p.w.Print(" */")
}

func (p *printer) docTag(tag ast.DocTag) {
	p.w.PrintByte('@')
	p.w.Print(tag.Name)
	switch {
	case tag.Value != nil:
		p.w.PrintByte(' ')
		p.expr(tag.Value)
	case tag.Text != "":
		p.w.PrintByte(' ')
		p.w.Print(tag.Text)
	}
}
