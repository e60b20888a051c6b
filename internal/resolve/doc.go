// Package resolve turns a normalized annotation model into per-target plans
// consumed by code generation.
//
// Resolution pipeline, per declared target:
//  1. Compute every field's disposition with the single precedence rule:
//     target-scoped override > unscoped override > optional marker
//     (builders only) > required.
//  2. Order the caller-supplied surface: declared parameters in declared
//     order, with `..` marking where the not-explicitly-positioned required
//     fields are inserted (constructors), or declared setters followed by
//     the remaining required fields in field order (builders).
//
// Targets resolve independently over the same shape; no state is shared
// between passes.
package resolve
