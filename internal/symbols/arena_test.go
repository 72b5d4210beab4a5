package symbols

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newProgramScopes(t *testing.T) (*Scopes, ScopeID, ScopeID) {
	t.Helper()
	scopes := NewScopes(0)
	root := scopes.NewRoot()
	top := scopes.New(ScopeProgram, root, "Global")
	return scopes, root, top
}

func TestDeclareNameIsIdempotent(t *testing.T) {
	scopes, _, top := newProgramScopes(t)
	sc := scopes.Get(top)
	first := sc.DeclareName("foo")
	second := sc.DeclareName("foo")
	if first != "foo" || second != "foo" {
		t.Fatalf("want foo twice, got %q and %q", first, second)
	}
	if sc.Len() != 1 {
		t.Fatalf("want 1 declared name, got %d", sc.Len())
	}
}

func TestDeclareFreshNameSuffixes(t *testing.T) {
	scopes, _, top := newProgramScopes(t)
	sc := scopes.Get(top)
	got := []string{
		sc.DeclareFreshName("x"),
		sc.DeclareFreshName("x"),
		sc.DeclareFreshName("x"),
		sc.DeclareFreshName("x_0"),
	}
	want := []string{"x", "x_0", "x_1", "x_0_0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fresh names mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclareFreshNameAreDistinct(t *testing.T) {
	scopes, _, top := newProgramScopes(t)
	sc := scopes.Get(top)
	suggestions := []string{"a", "a", "b", "a_0", "a", "tmp$0", "b_0", "b", "a_1", "a"}
	seen := make(map[string]bool)
	for _, s := range suggestions {
		name := sc.DeclareFreshName(s)
		if seen[name] {
			t.Fatalf("name %q handed out twice", name)
		}
		seen[name] = true
	}
	for i := 0; i < 5; i++ {
		name := sc.DeclareTemporary()
		if seen[name] {
			t.Fatalf("temporary %q collides", name)
		}
		seen[name] = true
	}
}

func TestDeclareFreshNameSkipsReservedWords(t *testing.T) {
	scopes, _, top := newProgramScopes(t)
	if got := scopes.Get(top).DeclareFreshName("class"); got != "class_0" {
		t.Fatalf("want class_0, got %q", got)
	}
}

func TestDeclareTemporaryCounterIsPerScope(t *testing.T) {
	scopes, _, top := newProgramScopes(t)
	inner := scopes.Inner(top, "f")
	if got := scopes.Get(top).DeclareTemporary(); got != "tmp$0" {
		t.Fatalf("want tmp$0, got %q", got)
	}
	if got := scopes.Get(top).DeclareTemporary(); got != "tmp$1" {
		t.Fatalf("want tmp$1, got %q", got)
	}
	if got := scopes.Get(inner).DeclareTemporary(); got != "tmp$0" {
		t.Fatalf("inner scope: want tmp$0, got %q", got)
	}
}

func TestDeclareTemporaryAvoidsExistingNames(t *testing.T) {
	scopes, _, top := newProgramScopes(t)
	sc := scopes.Get(top)
	sc.DeclareName("tmp$0")
	if got := sc.DeclareTemporary(); got != "tmp$0_0" {
		t.Fatalf("want tmp$0_0, got %q", got)
	}
}

func TestFindNameWalksParents(t *testing.T) {
	scopes, root, top := newProgramScopes(t)
	fn := scopes.Inner(top, "f")
	scopes.Get(top).DeclareName("outer")
	scopes.Get(fn).DeclareName("local")

	if name, ok := scopes.FindName(fn, "outer"); !ok || name != "outer" {
		t.Fatalf("outer not found from inner scope: %q %v", name, ok)
	}
	if _, ok := scopes.FindName(top, "local"); ok {
		t.Fatalf("child names must not be visible from the parent")
	}
	if _, ok := scopes.FindName(fn, "missing"); ok {
		t.Fatalf("missing name reported as found")
	}
	if owner := scopes.Owner(fn, "typeof"); owner != root {
		t.Fatalf("reserved word should resolve to root, got %d", owner)
	}
}

func TestSiblingScopesMayReuseNames(t *testing.T) {
	scopes, _, top := newProgramScopes(t)
	a := scopes.Inner(top, "a")
	b := scopes.Inner(top, "b")
	if scopes.Get(a).DeclareFreshName("i") != "i" || scopes.Get(b).DeclareFreshName("i") != "i" {
		t.Fatalf("sibling scopes should both get i")
	}
}

func TestScopesArenaIDs(t *testing.T) {
	scopes := NewScopes(1)
	if scopes.Get(NoScopeID) != nil {
		t.Fatalf("sentinel must not resolve")
	}
	id := scopes.New(ScopeDetached, NoScopeID, "")
	if !id.IsValid() || scopes.Len() != 1 {
		t.Fatalf("unexpected arena state: id=%d len=%d", id, scopes.Len())
	}
	if scopes.Get(id+1) != nil {
		t.Fatalf("out of range id resolved")
	}
}

func TestIsIdentifierName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"foo", true},
		{"$", true},
		{"_a1", true},
		{"café", true},
		{"1a", false},
		{"a-b", false},
		{"", false},
		{"a b", false},
		{"class", true},
	}
	for _, tt := range tests {
		if got := IsIdentifierName(tt.in); got != tt.want {
			t.Errorf("IsIdentifierName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if !IsReserved("class") || IsReserved("klass") {
		t.Fatalf("IsReserved mismatch")
	}
}
