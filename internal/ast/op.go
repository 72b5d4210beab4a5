package ast

type opFlags uint8

const (
	opLeft opFlags = 1 << iota
	opKeyword
	opModifying
	opPrefix
	opPostfix
)

type opInfo struct {
	symbol string
	prec   int
	flags  opFlags
}

// BinaryOp is an infix operator, including assignment and comma.
type BinaryOp uint8

const (
	OpInvalidBinary BinaryOp = iota
	OpMul
	OpDiv
	OpMod
	OpAdd
	OpSub
	OpShl
	OpShr
	OpShru
	OpLt
	OpLte
	OpGt
	OpGte
	OpInstanceOf
	OpIn
	OpEq
	OpNeq
	OpRefEq
	OpRefNeq
	OpBitAnd
	OpBitXor
	OpBitOr
	OpAnd
	OpOr
	OpAsg
	OpAsgAdd
	OpAsgSub
	OpAsgMul
	OpAsgDiv
	OpAsgMod
	OpAsgShl
	OpAsgShr
	OpAsgShru
	OpAsgBitAnd
	OpAsgBitOr
	OpAsgBitXor
	OpComma

	binaryOpCount
)

var binaryOps = [binaryOpCount]opInfo{
	OpMul:        {"*", 13, opLeft},
	OpDiv:        {"/", 13, opLeft},
	OpMod:        {"%", 13, opLeft},
	OpAdd:        {"+", 12, opLeft},
	OpSub:        {"-", 12, opLeft},
	OpShl:        {"<<", 11, opLeft},
	OpShr:        {">>", 11, opLeft},
	OpShru:       {">>>", 11, opLeft},
	OpLt:         {"<", 10, opLeft},
	OpLte:        {"<=", 10, opLeft},
	OpGt:         {">", 10, opLeft},
	OpGte:        {">=", 10, opLeft},
	OpInstanceOf: {"instanceof", 10, opLeft | opKeyword},
	OpIn:         {"in", 10, opLeft | opKeyword},
	OpEq:         {"==", 9, opLeft},
	OpNeq:        {"!=", 9, opLeft},
	OpRefEq:      {"===", 9, opLeft},
	OpRefNeq:     {"!==", 9, opLeft},
	OpBitAnd:     {"&", 8, opLeft},
	OpBitXor:     {"^", 7, opLeft},
	OpBitOr:      {"|", 6, opLeft},
	OpAnd:        {"&&", 5, opLeft},
	OpOr:         {"||", 4, opLeft},
	OpAsg:        {"=", 2, opModifying},
	OpAsgAdd:     {"+=", 2, opModifying},
	OpAsgSub:     {"-=", 2, opModifying},
	OpAsgMul:     {"*=", 2, opModifying},
	OpAsgDiv:     {"/=", 2, opModifying},
	OpAsgMod:     {"%=", 2, opModifying},
	OpAsgShl:     {"<<=", 2, opModifying},
	OpAsgShr:     {">>=", 2, opModifying},
	OpAsgShru:    {">>>=", 2, opModifying},
	OpAsgBitAnd:  {"&=", 2, opModifying},
	OpAsgBitOr:   {"|=", 2, opModifying},
	OpAsgBitXor:  {"^=", 2, opModifying},
	OpComma:      {",", 1, opLeft},
}

func (op BinaryOp) Valid() bool {
	return op > OpInvalidBinary && op < binaryOpCount
}

func (op BinaryOp) Symbol() string {
	if !op.Valid() {
		return "?"
	}
	return binaryOps[op].symbol
}

func (op BinaryOp) String() string { return op.Symbol() }

func (op BinaryOp) Precedence() int {
	if !op.Valid() {
		return 0
	}
	return binaryOps[op].prec
}

// LeftAssoc is false for the assignment family.
func (op BinaryOp) LeftAssoc() bool { return op.Valid() && binaryOps[op].flags&opLeft != 0 }

// Keyword reports operators spelled as words; they always need surrounding spaces.
func (op BinaryOp) Keyword() bool { return op.Valid() && binaryOps[op].flags&opKeyword != 0 }

// Modifying reports operators whose left operand is an lvalue.
func (op BinaryOp) Modifying() bool { return op.Valid() && binaryOps[op].flags&opModifying != 0 }

func (op BinaryOp) IsAssignment() bool { return op.Modifying() }

// BinaryOpBySymbol looks an operator up by its source spelling.
func BinaryOpBySymbol(sym string) (BinaryOp, bool) {
	for op := OpMul; op < binaryOpCount; op++ {
		if binaryOps[op].symbol == sym {
			return op, true
		}
	}
	return OpInvalidBinary, false
}

// UnaryOp is a prefix or postfix operator.
type UnaryOp uint8

const (
	OpInvalidUnary UnaryOp = iota
	OpBitNot
	OpDec
	OpDelete
	OpInc
	OpNeg
	OpPos
	OpNot
	OpTypeOf
	OpVoid

	unaryOpCount
)

var unaryOps = [unaryOpCount]opInfo{
	OpBitNot: {"~", 14, opPrefix},
	OpDec:    {"--", 14, opPrefix | opPostfix | opModifying},
	OpDelete: {"delete", 14, opPrefix | opModifying | opKeyword},
	OpInc:    {"++", 14, opPrefix | opPostfix | opModifying},
	OpNeg:    {"-", 14, opPrefix},
	OpPos:    {"+", 14, opPrefix},
	OpNot:    {"!", 14, opPrefix},
	OpTypeOf: {"typeof", 14, opPrefix | opKeyword},
	OpVoid:   {"void", 14, opPrefix | opKeyword},
}

func (op UnaryOp) Valid() bool {
	return op > OpInvalidUnary && op < unaryOpCount
}

func (op UnaryOp) Symbol() string {
	if !op.Valid() {
		return "?"
	}
	return unaryOps[op].symbol
}

func (op UnaryOp) String() string { return op.Symbol() }

func (op UnaryOp) Precedence() int {
	if !op.Valid() {
		return 0
	}
	return unaryOps[op].prec
}

// LeftAssoc is always true: a unary operator has one operand and never
// needs parentheses beyond the precedence comparison.
func (op UnaryOp) LeftAssoc() bool { return true }

func (op UnaryOp) Keyword() bool   { return op.Valid() && unaryOps[op].flags&opKeyword != 0 }
func (op UnaryOp) Modifying() bool { return op.Valid() && unaryOps[op].flags&opModifying != 0 }
func (op UnaryOp) IsPrefix() bool  { return op.Valid() && unaryOps[op].flags&opPrefix != 0 }
func (op UnaryOp) IsPostfix() bool { return op.Valid() && unaryOps[op].flags&opPostfix != 0 }

func UnaryOpBySymbol(sym string) (UnaryOp, bool) {
	for op := OpBitNot; op < unaryOpCount; op++ {
		if unaryOps[op].symbol == sym {
			return op, true
		}
	}
	return OpInvalidUnary, false
}
