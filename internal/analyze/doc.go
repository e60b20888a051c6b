// Package analyze provides package loading and annotated-record extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// struct types whose doc comments carry construct: directives and to build
// a canonical in-memory description of each one.
//
// Key types:
//   - RecordInput: one annotated struct (fields, type parameters, directives)
//   - FieldInput: field name, verbatim declared type text, field directives
//   - Directive: raw directive text plus its source position
//
// Field types are rendered verbatim with go/printer and passed through
// untouched; their meaning is opaque to every later stage.
package analyze
