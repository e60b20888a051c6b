// Package annotation builds the normalized model of an annotated record:
// its shape, its declared constructor and builder targets, and every
// field's value overrides.
//
// Directive surface (the text after the construct: marker):
//
//	constructor [Name][(param, ...)]
//	builder     [Name][(param, ...)]
//	value(expr) [for Name, ...]
//
// Constructor params are `..` (insertion point for all required fields not
// explicitly positioned), a field name (explicit position, or re-adding an
// overridden field as a parameter), or `name Type` (extra parameter).
// Builder params additionally accept a trailing `?`: `Field?` marks the
// field optional, `name Type?` adds an optional extra setter.
//
// Validation performed here:
//   - every `for` target must be declared (unknown_target_reference)
//   - at most one unscoped override per field, and scoped overrides must
//     claim disjoint targets (ambiguous_value_for_field)
//   - extra parameter names must not collide with fields
//     (ambiguous_parameter_name)
//   - a builder's optional marker must not meet an override scoped to that
//     same builder (conflicting_field_disposition)
package annotation
