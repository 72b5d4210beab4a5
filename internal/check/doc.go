// Package check validates a syntax tree before emission.
//
// Purpose:
//   - Report tree shapes the emitter would reject or render into invalid
//     JavaScript: missing children, both loop initializers, unresolved
//     placeholders, duplicate switch defaults.
//   - Report name problems: invalid identifiers, reserved-word bindings,
//     jumps to labels that do not enclose them, non-NFC identifiers.
//
// Does not:
//   - Resolve references or check types.
//   - Mutate the tree.
//
// Depends on: ast, diag, symbols.
package check
