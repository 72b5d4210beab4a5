package ast

type Null struct{ meta }

type Bool struct {
	meta
	Value bool
}

type Int struct {
	meta
	Value int64
}

type Double struct {
	meta
	Value float64
}

// StringLit is a string literal. Value is the decoded text and is escaped on
// output unless Verbatim is set, in which case Value is copied as is between
// Quote characters (no quotes when Quote is 0).
type StringLit struct {
	meta
	Value       string
	Verbatim    bool
	Quote       byte
	ForceDouble bool
}

type RegExp struct {
	meta
	Pattern string
	Flags   string
}

// DocTag is one `@name value` entry. Exactly one of Text and Value is
// meaningful: Value when set, Text otherwise.
type DocTag struct {
	Name  string
	Text  string
	Value Expr
}

// DocComment is a `/** ... */` comment. It is both a statement and an
// expression: in argument and element lists it annotates the next item.
type DocComment struct {
	meta
	Tags []DocTag
}

func (*Null) Kind() Kind       { return KindNull }
func (*Bool) Kind() Kind       { return KindBool }
func (*Int) Kind() Kind        { return KindInt }
func (*Double) Kind() Kind     { return KindDouble }
func (*StringLit) Kind() Kind  { return KindString }
func (*RegExp) Kind() Kind     { return KindRegExp }
func (*DocComment) Kind() Kind { return KindDocComment }

func (*Null) exprNode()       {}
func (*Bool) exprNode()       {}
func (*Int) exprNode()        {}
func (*Double) exprNode()     {}
func (*StringLit) exprNode()  {}
func (*RegExp) exprNode()     {}
func (*DocComment) exprNode() {}
func (*DocComment) stmtNode() {}

func NewString(value string) *StringLit { return &StringLit{Value: value} }

// NewVerbatim wraps text that is already valid JavaScript source.
func NewVerbatim(raw string, quote byte) *StringLit {
	return &StringLit{Value: raw, Verbatim: true, Quote: quote}
}

func NewInt(v int64) *Int { return &Int{Value: v} }

func NewDouble(v float64) *Double { return &Double{Value: v} }

func NewBool(v bool) *Bool { return &Bool{Value: v} }

// Tag appends a textual tag and returns d for chaining.
func (d *DocComment) Tag(name, text string) *DocComment {
	d.Tags = append(d.Tags, DocTag{Name: name, Text: text})
	return d
}

// TagExpr appends a tag whose value is rendered as an expression.
func (d *DocComment) TagExpr(name string, value Expr) *DocComment {
	d.Tags = append(d.Tags, DocTag{Name: name, Value: value})
	return d
}
