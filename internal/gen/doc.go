// Package gen renders resolved constructor and builder plans as Go source.
//
// Generation approach uses text/template + go/format, with
// golang.org/x/tools/imports resolving any imports introduced by override
// expressions (e.g. time.Now()).
//
// Emitted per record, into a sibling file in the record's own package:
//   - one function per constructor target
//   - one builder type per builder target: struct, zero-state constructor,
//     setters, and a package-level finalizer that only accepts the
//     all-Present typestate instantiation
package gen
