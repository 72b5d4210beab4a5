package symbols

import (
	"fmt"

	"fortio.org/safecast"
)

// Scopes stores all allocated scopes in a compact slice-based arena. The
// arena owns scope lifetime; scopes refer to their parent by ID only.
type Scopes struct {
	data []Scope
}

// NewScopes creates an arena with optional capacity hint.
func NewScopes(capacity uint32) *Scopes {
	if capacity == 0 {
		capacity = 16
	}
	return &Scopes{
		data: make([]Scope, 1, capacity+1), // index 0 reserved for NoScopeID
	}
}

// New allocates a new scope and returns its ID. parent may be NoScopeID.
func (s *Scopes) New(kind ScopeKind, parent ScopeID, description string) ScopeID {
	value, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("scopes arena overflow: %w", err))
	}
	s.data = append(s.data, Scope{
		Kind:        kind,
		Parent:      parent,
		Description: description,
	})
	return ScopeID(value)
}

// NewRoot allocates a root scope pre-populated with the reserved words, so
// lookups of keywords resolve to the root like any other external name.
func (s *Scopes) NewRoot() ScopeID {
	id := s.New(ScopeRoot, NoScopeID, "Root")
	root := s.Get(id)
	for _, word := range reservedWords {
		root.DeclareName(word)
	}
	return id
}

// Inner allocates a function scope nested in parent.
func (s *Scopes) Inner(parent ScopeID, description string) ScopeID {
	return s.New(ScopeFunction, parent, description)
}

// Get returns the scope pointer or nil if ID is invalid.
func (s *Scopes) Get(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// MustGet is Get for IDs the caller knows to be allocated.
func (s *Scopes) MustGet(id ScopeID) *Scope {
	sc := s.Get(id)
	if sc == nil {
		panic(fmt.Errorf("symbols: unknown scope %d", id))
	}
	return sc
}

// FindName searches id and then its ancestors for ident. The second result
// is false when the chain ends without a match.
func (s *Scopes) FindName(id ScopeID, ident string) (string, bool) {
	for id.IsValid() {
		sc := s.Get(id)
		if sc == nil {
			return "", false
		}
		if name, ok := sc.Lookup(ident); ok {
			return name, true
		}
		id = sc.Parent
	}
	return "", false
}

// Owner returns the nearest scope in the chain starting at id that declares
// ident, or NoScopeID.
func (s *Scopes) Owner(id ScopeID, ident string) ScopeID {
	for id.IsValid() {
		sc := s.Get(id)
		if sc == nil {
			return NoScopeID
		}
		if _, ok := sc.Lookup(ident); ok {
			return id
		}
		id = sc.Parent
	}
	return NoScopeID
}

// Len reports total number of scopes excluding the sentinel.
func (s *Scopes) Len() int { return len(s.data) - 1 }

// Data exposes the underlying slice without the sentinel.
func (s *Scopes) Data() []Scope {
	if len(s.data) <= 1 {
		return nil
	}
	return s.data[1:]
}
