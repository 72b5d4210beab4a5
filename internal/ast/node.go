// Package ast defines the JavaScript syntax tree rendered by package format.
//
// The node set is closed: every concrete kind is a struct in this package and
// implements Node through an unexported marker, so dispatch over nodes is an
// exhaustive type switch keyed by Kind. Children are owned by exactly one
// parent; the tree has no parent links and no sharing.
package ast

import "fmt"

type Kind uint8

const (
	KindInvalid Kind = iota

	// program structure
	KindProgram
	KindVar
	KindParameter
	KindProperty
	KindCase
	KindDefault
	KindCatch

	// statements
	KindBlock
	KindVars
	KindExprStmt
	KindIf
	KindWhile
	KindDoWhile
	KindFor
	KindForIn
	KindSwitch
	KindTry
	KindLabel
	KindBreak
	KindContinue
	KindReturn
	KindThrow
	KindDebugger
	KindEmpty

	// expressions
	KindBinary
	KindPrefix
	KindPostfix
	KindConditional
	KindInvocation
	KindNew
	KindArrayAccess
	KindArrayLit
	KindObjectLit
	KindNameRef
	KindThis
	KindNull
	KindBool
	KindInt
	KindDouble
	KindString
	KindRegExp
	KindFunction
	KindDocComment
	KindChameleon

	// KindCount is the number of kinds, KindInvalid included.
	KindCount
)

var kindNames = [...]string{
	KindInvalid:     "Invalid",
	KindProgram:     "Program",
	KindVar:         "Var",
	KindParameter:   "Parameter",
	KindProperty:    "Property",
	KindCase:        "Case",
	KindDefault:     "Default",
	KindCatch:       "Catch",
	KindBlock:       "Block",
	KindVars:        "Vars",
	KindExprStmt:    "ExprStmt",
	KindIf:          "If",
	KindWhile:       "While",
	KindDoWhile:     "DoWhile",
	KindFor:         "For",
	KindForIn:       "ForIn",
	KindSwitch:      "Switch",
	KindTry:         "Try",
	KindLabel:       "Label",
	KindBreak:       "Break",
	KindContinue:    "Continue",
	KindReturn:      "Return",
	KindThrow:       "Throw",
	KindDebugger:    "Debugger",
	KindEmpty:       "Empty",
	KindBinary:      "Binary",
	KindPrefix:      "Prefix",
	KindPostfix:     "Postfix",
	KindConditional: "Conditional",
	KindInvocation:  "Invocation",
	KindNew:         "New",
	KindArrayAccess: "ArrayAccess",
	KindArrayLit:    "ArrayLit",
	KindObjectLit:   "ObjectLit",
	KindNameRef:     "NameRef",
	KindThis:        "This",
	KindNull:        "Null",
	KindBool:        "Bool",
	KindInt:         "Int",
	KindDouble:      "Double",
	KindString:      "String",
	KindRegExp:      "RegExp",
	KindFunction:    "Function",
	KindDocComment:  "DocComment",
	KindChameleon:   "Chameleon",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindByName is the inverse of Kind.String for valid kinds.
func KindByName(name string) (Kind, bool) {
	for k := KindProgram; k < KindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindInvalid, false
}

// Node is any tree element.
//
// Source metadata is opaque to this package and to the emitter; producers
// typically store a source.Pos there.
type Node interface {
	Kind() Kind
	Source() any
	SetSource(src any)
	aNode()
}

// Stmt is a node usable in statement position.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a node usable in expression position.
type Expr interface {
	Node
	exprNode()
}

type meta struct {
	src any
}

func (m *meta) Source() any       { return m.src }
func (m *meta) SetSource(src any) { m.src = src }
func (*meta) aNode()              {}
