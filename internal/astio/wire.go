package astio

// SchemaVersion is the document format version; bump it when Node changes
// incompatibly.
const SchemaVersion uint16 = 1

// Document is a serialized program.
type Document struct {
	Version uint16 `json:"version" msgpack:"version"`
	Program *Node  `json:"program" msgpack:"program"`
}

// Pos mirrors source.Pos on the wire.
type Pos struct {
	Offset uint32 `json:"offset" msgpack:"offset"`
	Line   uint32 `json:"line" msgpack:"line"`
	Column uint32 `json:"column" msgpack:"column"`
}

// Tag is one documentation comment entry. Value wins over Text when set.
type Tag struct {
	Name  string `json:"name" msgpack:"name"`
	Text  string `json:"text,omitempty" msgpack:"text,omitempty"`
	Value *Node  `json:"value,omitempty" msgpack:"value,omitempty"`
}

// Node is the wire record of every tree node. Kind selects which fields are
// meaningful:
//
//	Program, Block      Stmts (Global)
//	Vars                Decls of kind Var (Multiline)
//	Var                 Name, X (initializer)
//	ExprStmt            X
//	If                  Cond, Then, Else
//	While, DoWhile      Cond, Body
//	For                 X (init expression) or Decls (init declarations), Cond, Update, Body
//	ForIn               Name (var) and/or X (target or var initializer), Object, Body
//	Switch              X (tag), Members of kind Case (X, Stmts) or Default (Stmts)
//	Try                 Block, Catches of kind Catch (Name, Cond, Body), Finally
//	Label               Name, Body
//	Break, Continue     Name (optional label)
//	Return, Throw       X
//	Binary              Op, X, Y
//	Prefix, Postfix     Op, X
//	Conditional         Cond, Then, Else
//	Invocation, New     X (callee), Args
//	ArrayAccess         X, Y (index)
//	ArrayLit            Args (elements)
//	ObjectLit           Props of kind Property (X label, Y value) (Multiline)
//	NameRef             Name, X (qualifier)
//	Bool                Bool
//	Int                 Int
//	Double              Number, in strconv.ParseFloat syntax
//	String              Text, Verbatim, Quote, ForceDouble
//	RegExp              Text (pattern), Flags
//	Function            Name, Params, Body
//	DocComment          Tags
//	Chameleon           X (the resolved expression)
type Node struct {
	Kind string `json:"kind" msgpack:"kind"`
	Pos  *Pos   `json:"pos,omitempty" msgpack:"pos,omitempty"`

	Name   string   `json:"name,omitempty" msgpack:"name,omitempty"`
	Op     string   `json:"op,omitempty" msgpack:"op,omitempty"`
	Params []string `json:"params,omitempty" msgpack:"params,omitempty"`

	X      *Node `json:"x,omitempty" msgpack:"x,omitempty"`
	Y      *Node `json:"y,omitempty" msgpack:"y,omitempty"`
	Cond   *Node `json:"cond,omitempty" msgpack:"cond,omitempty"`
	Then   *Node `json:"then,omitempty" msgpack:"then,omitempty"`
	Else   *Node `json:"else,omitempty" msgpack:"else,omitempty"`
	Update *Node `json:"update,omitempty" msgpack:"update,omitempty"`
	Object *Node `json:"object,omitempty" msgpack:"object,omitempty"`
	Body   *Node `json:"body,omitempty" msgpack:"body,omitempty"`

	Block   *Node   `json:"block,omitempty" msgpack:"block,omitempty"`
	Finally *Node   `json:"finally,omitempty" msgpack:"finally,omitempty"`
	Catches []*Node `json:"catches,omitempty" msgpack:"catches,omitempty"`
	Members []*Node `json:"members,omitempty" msgpack:"members,omitempty"`
	Stmts   []*Node `json:"stmts,omitempty" msgpack:"stmts,omitempty"`
	Decls   []*Node `json:"decls,omitempty" msgpack:"decls,omitempty"`
	Args    []*Node `json:"args,omitempty" msgpack:"args,omitempty"`
	Props   []*Node `json:"props,omitempty" msgpack:"props,omitempty"`
	Tags    []Tag   `json:"tags,omitempty" msgpack:"tags,omitempty"`

	Bool        bool   `json:"bool,omitempty" msgpack:"bool,omitempty"`
	Int         int64  `json:"int,omitempty" msgpack:"int,omitempty"`
	Number      string `json:"number,omitempty" msgpack:"number,omitempty"`
	Text        string `json:"text,omitempty" msgpack:"text,omitempty"`
	Flags       string `json:"flags,omitempty" msgpack:"flags,omitempty"`
	Quote       string `json:"quote,omitempty" msgpack:"quote,omitempty"`
	Verbatim    bool   `json:"verbatim,omitempty" msgpack:"verbatim,omitempty"`
	ForceDouble bool   `json:"force_double,omitempty" msgpack:"force_double,omitempty"`
	Global      bool   `json:"global,omitempty" msgpack:"global,omitempty"`
	Multiline   bool   `json:"multiline,omitempty" msgpack:"multiline,omitempty"`
}
