package diag

import (
	"errors"
	"fmt"
)

// ContractError reports a programming error in the AST producer: a node
// that violates a structural invariant the emitter relies on. It is fatal;
// emission stops at the first one.
type ContractError struct {
	Kind  string // node kind, e.g. "For"
	Field string // offending field, empty when the node as a whole is wrong
	Msg   string
}

func (e *ContractError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("contract violation: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("contract violation: %s.%s: %s", e.Kind, e.Field, e.Msg)
}

// Violation panics with a ContractError. Emission entry points recover it.
func Violation(kind, field, format string, args ...any) {
	panic(&ContractError{Kind: kind, Field: field, Msg: fmt.Sprintf(format, args...)})
}

// IsContract reports whether err is or wraps a ContractError.
func IsContract(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}

// RecoverContract converts a ContractError panic into *errp and lets any
// other panic continue. Use as: defer diag.RecoverContract(&err).
func RecoverContract(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ce, ok := r.(*ContractError); ok {
		*errp = ce
		return
	}
	panic(r)
}
