// Package model provides the symbolic declaration model the generator works on.
//
// Declarations are supplied by an ingestion collaborator (see package manifest)
// and never touch user code. Every type reference is a TypeName built once at
// ingestion from a closed set of shapes, so later stages pattern-match on Kind
// instead of querying a live type system.
//
// Key types:
//   - ClassName: package + (possibly nested) simple name
//   - TypeName: class / parameterized / array / type variable
//   - Declaration: a candidate parser class with its constructors and methods
//   - ParserDeclaration: a validated declaration with alias and parse result type
package model
