// Package diag carries the error vocabulary of the generator: diagnostics
// collected by the pre-emission checker and the fatal ContractError raised
// when a producer hands the emitter a malformed tree.
//
// Diagnostics are addressed by tree path ("program.stmts[2].body") rather than
// by byte span because the input is an AST, not text. A position is attached
// when the producer stored a source.Pos on the offending node.
package diag
