// Package format renders an ast.Program as JavaScript source text.
//
// Purpose: turn a trusted tree into minimally parenthesized, re-parseable
// code, pretty (indented, one statement per line) or compact (minified).
// Does not: validate the tree (see package check), rewrite it, or emit
// source maps; the Writer only exposes positions and a Listener hook.
// Depends on: internal/ast, internal/prec, internal/diag.
package format
