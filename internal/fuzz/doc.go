// Package fuzztests houses Go fuzz harnesses for the emission pipeline
// (document bytes -> astio -> check -> format) and the string literal
// codec. They guard against panics escaping the contract recovery and
// against escapes that change a string's value.
//
// Purpose: feed arbitrary bytes and strings through decoding, checking and
// emission.
//
// Does not: generate corpora, write files, run the CLI.
//
// Depends on: internal/astio, internal/check, internal/format, internal/ast.
package fuzztests
