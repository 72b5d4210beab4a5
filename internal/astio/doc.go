// Package astio reads and writes syntax trees as documents.
//
// Purpose:
//   - Define the wire form of a tree: a Document holding flat Node records
//     tagged with their kind name.
//   - Convert documents to ast.Program and back, allocating scopes and
//     declaring names on the way in.
//   - Serialize documents as JSON or msgpack.
//
// Does not:
//   - Validate names or labels (see package check).
//   - Render JavaScript.
//
// Depends on: ast, source, symbols.
package astio
