// Package diagnostic provides structured errors and warnings for the
// construct generator.
//
// Key capabilities:
//   - Stable string codes per failure kind (unknown_target_reference, ...)
//   - Anchoring at the record and the offending directive's source position
//   - Accumulation across records so one bad annotation does not hide others
package diagnostic
