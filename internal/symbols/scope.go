package symbols

import "fmt"

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeRoot               // external names; parent of the program scope
	ScopeProgram            // top-level statements of a program
	ScopeFunction           // function literal body
	ScopeDetached           // parentless scope for names always accessed through a qualifier
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeRoot:
		return "root"
	case ScopeProgram:
		return "program"
	case ScopeFunction:
		return "function"
	case ScopeDetached:
		return "detached"
	default:
		return "invalid"
	}
}

// Scope is a namespace of declared identifiers. Identifiers map to
// themselves: the allocator only guarantees that one scope never hands out
// the same text for two different declarations.
//
// A *Scope obtained from Scopes.Get is only valid until the next call to
// Scopes.New, which may grow the arena.
type Scope struct {
	Kind        ScopeKind
	Parent      ScopeID
	Description string
	names       map[string]string
	order       []string
	tempIndex   int
}

// DeclareName returns the canonical name for ident in this scope, creating it
// on first use.
func (s *Scope) DeclareName(ident string) string {
	if name, ok := s.names[ident]; ok {
		return name
	}
	return s.create(ident)
}

// DeclareFreshName declares a name that does not exist in this scope yet.
// On collision the suggestion is retried as suggested_0, suggested_1, ...
// Reserved words are treated as collisions so a fresh name is always a
// valid binding.
func (s *Scope) DeclareFreshName(suggested string) string {
	name := suggested
	counter := 0
	for s.taken(name) {
		name = fmt.Sprintf("%s_%d", suggested, counter)
		counter++
	}
	return s.create(name)
}

// DeclareTemporary declares tmp$N with a per-scope counter. Later plain
// declarations may still collide with it unless they go through
// DeclareFreshName.
func (s *Scope) DeclareTemporary() string {
	name := fmt.Sprintf("tmp$%d", s.tempIndex)
	s.tempIndex++
	return s.DeclareFreshName(name)
}

// Lookup reports whether ident is declared directly in this scope.
func (s *Scope) Lookup(ident string) (string, bool) {
	name, ok := s.names[ident]
	return name, ok
}

// Names returns the declared names in declaration order. The slice is
// shared with the scope; do not modify it.
func (s *Scope) Names() []string {
	return s.order
}

// Len returns the number of names declared in this scope.
func (s *Scope) Len() int {
	return len(s.order)
}

func (s *Scope) taken(name string) bool {
	if _, ok := s.names[name]; ok {
		return true
	}
	return s.Kind != ScopeRoot && IsReserved(name)
}

func (s *Scope) create(name string) string {
	if s.names == nil {
		s.names = make(map[string]string)
	}
	s.names[name] = name
	s.order = append(s.order, name)
	return name
}
