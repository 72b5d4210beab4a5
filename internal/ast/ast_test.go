package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"jsgen/internal/diag"
)

func TestKindNamesAreComplete(t *testing.T) {
	for k := KindProgram; k < KindCount; k++ {
		name := k.String()
		if name == "" || name[0] == 'K' {
			t.Fatalf("kind %d has no name (%q)", k, name)
		}
		back, ok := KindByName(name)
		if !ok || back != k {
			t.Fatalf("KindByName(%q) = %v, %v; want %v", name, back, ok, k)
		}
	}
}

func TestBinaryOperatorCatalog(t *testing.T) {
	tests := []struct {
		sym       string
		prec      int
		leftAssoc bool
		keyword   bool
		modifying bool
	}{
		{"*", 13, true, false, false},
		{"-", 12, true, false, false},
		{">>>", 11, true, false, false},
		{"instanceof", 10, true, true, false},
		{"in", 10, true, true, false},
		{"===", 9, true, false, false},
		{"&&", 5, true, false, false},
		{"||", 4, true, false, false},
		{"=", 2, false, false, true},
		{">>>=", 2, false, false, true},
		{",", 1, true, false, false},
	}
	for _, tt := range tests {
		op, ok := BinaryOpBySymbol(tt.sym)
		if !ok {
			t.Fatalf("operator %q not found", tt.sym)
		}
		if op.Precedence() != tt.prec || op.LeftAssoc() != tt.leftAssoc ||
			op.Keyword() != tt.keyword || op.Modifying() != tt.modifying {
			t.Fatalf("%q: got prec=%d left=%v kw=%v mod=%v", tt.sym,
				op.Precedence(), op.LeftAssoc(), op.Keyword(), op.Modifying())
		}
	}
	if _, ok := BinaryOpBySymbol("**"); ok {
		t.Fatalf("unexpected operator **")
	}
}

func TestUnaryOperatorCatalog(t *testing.T) {
	inc, _ := UnaryOpBySymbol("++")
	if !inc.IsPrefix() || !inc.IsPostfix() || !inc.Modifying() {
		t.Fatalf("++ flags wrong")
	}
	typeOf, _ := UnaryOpBySymbol("typeof")
	if !typeOf.Keyword() || typeOf.IsPostfix() || typeOf.Modifying() {
		t.Fatalf("typeof flags wrong")
	}
	del, _ := UnaryOpBySymbol("delete")
	if !del.Modifying() || !del.Keyword() {
		t.Fatalf("delete flags wrong")
	}
	neg, _ := UnaryOpBySymbol("-")
	if neg.Precedence() != 14 || !neg.LeftAssoc() {
		t.Fatalf("- flags wrong")
	}
}

func expectContract(t *testing.T, f func()) *diag.ContractError {
	t.Helper()
	var ce *diag.ContractError
	func() {
		defer func() {
			r := recover()
			var ok bool
			if ce, ok = r.(*diag.ContractError); !ok {
				t.Fatalf("expected contract violation, got %v", r)
			}
		}()
		f()
	}()
	return ce
}

func TestPostfixRejectsPrefixOnlyOperator(t *testing.T) {
	ce := expectContract(t, func() { NewPostfix(OpNot, NewName("a")) })
	if ce.Kind != "Postfix" || ce.Field != "Op" {
		t.Fatalf("unexpected violation %v", ce)
	}
}

func TestExprStmtSourceDelegates(t *testing.T) {
	x := NewName("a")
	x.SetSource("pos")
	s := NewExprStmt(x)
	if s.Source() != "pos" {
		t.Fatalf("want delegated source, got %v", s.Source())
	}
	ce := expectContract(t, func() { s.SetSource("other") })
	if ce.Kind != "ExprStmt" {
		t.Fatalf("unexpected violation %v", ce)
	}
}

func TestChameleonResolvesOnce(t *testing.T) {
	c := NewChameleon()
	if Unwrap(c) != nil || c.Resolved() {
		t.Fatalf("fresh chameleon must be unresolved")
	}
	c.SetSource("early")
	target := NewInt(7)
	c.Resolve(target)
	if Unwrap(c) != Expr(target) {
		t.Fatalf("Unwrap did not return the target")
	}
	if target.Source() != "early" {
		t.Fatalf("source recorded before resolution was not forwarded")
	}
	c.SetSource("late")
	if target.Source() != "late" {
		t.Fatalf("SetSource after resolution must forward")
	}
	expectContract(t, func() { c.Resolve(NewInt(8)) })
	self := NewChameleon()
	expectContract(t, func() { self.Resolve(self) })
}

func TestNegativeNumbers(t *testing.T) {
	tests := []struct {
		e    Expr
		want bool
	}{
		{NewInt(-1), true},
		{NewInt(0), false},
		{NewDouble(-0.5), true},
		{NewDouble(0.5), false},
		{NewName("x"), false},
	}
	for _, tt := range tests {
		if got := IsNegativeNumber(tt.e); got != tt.want {
			t.Fatalf("IsNegativeNumber(%#v) = %v", tt.e, got)
		}
	}
}

func TestNewFunctionAllocatesScopes(t *testing.T) {
	p := NewProgram()
	fn := p.NewFunction(p.Top, "f", "a", "b")
	if fn.Scope == p.Top || !fn.Scope.IsValid() {
		t.Fatalf("function scope not allocated")
	}
	if p.Scope(fn.Scope).Parent != p.Top {
		t.Fatalf("function scope parent = %d, want %d", p.Scope(fn.Scope).Parent, p.Top)
	}
	if _, ok := p.TopScope().Lookup("f"); !ok {
		t.Fatalf("function name not declared in the enclosing scope")
	}
	if name, ok := p.Scopes.FindName(fn.Scope, "b"); !ok || name != "b" {
		t.Fatalf("parameter not declared in the function scope")
	}
	if _, ok := p.TopScope().Lookup("a"); ok {
		t.Fatalf("parameter leaked into the enclosing scope")
	}
}

func TestWalkOrder(t *testing.T) {
	p := NewProgram()
	c := NewChameleon()
	c.Resolve(NewName("z"))
	p.Add(
		&If{
			Cond: NewBinary(OpAnd, NewName("a"), c),
			Then: &Block{Stmts: []Stmt{NewExprStmt(NewCall(NewName("f"), NewInt(1)))}},
		},
		&Return{},
	)
	var got []string
	Inspect(p, func(n Node) bool {
		if n != nil {
			got = append(got, n.Kind().String())
		}
		return true
	})
	want := []string{
		"Program", "If", "Binary", "NameRef", "Chameleon", "NameRef",
		"Block", "ExprStmt", "Invocation", "NameRef", "Int", "Return",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectPrunes(t *testing.T) {
	fn := &Function{Body: &Block{Stmts: []Stmt{&Return{X: NewInt(1)}}}}
	count := 0
	Inspect(NewExprStmt(fn), func(n Node) bool {
		if n == nil {
			return false
		}
		count++
		_, isFn := n.(*Function)
		return !isFn
	})
	if count != 2 {
		t.Fatalf("want ExprStmt and Function only, visited %d", count)
	}
}

func TestIsFunctionDeclaration(t *testing.T) {
	if !IsFunctionDeclaration(NewExprStmt(&Function{Name: "f", Body: &Block{}})) {
		t.Fatalf("named function statement must be a declaration")
	}
	if IsFunctionDeclaration(NewExprStmt(&Function{Body: &Block{}})) {
		t.Fatalf("anonymous function statement is not a declaration")
	}
}
