// Package typestate provides the compile-time completion markers used by
// generated builders.
//
// A generated builder carries one Status type parameter per required slot.
// Setters flip that parameter from Missing to Present by returning a
// re-instantiated builder, and the generated finalizer function only accepts
// the all-Present instantiation. The Go type checker therefore rejects
// finalizing a builder before every required setter has been called.
package typestate

// Present indicates that a required value has been provided.
type Present struct{}

// Missing indicates that a required value has not been provided yet.
type Missing struct{}

// Status constrains a builder's completion markers to Present or Missing.
type Status interface {
	Present | Missing
}

// Field stores a required builder slot together with its completion marker.
// The marker lives only in the type; the struct layout is identical for both
// instantiations, which is what lets setters move slots between builder
// states by plain assignment.
type Field[T any, S Status] struct {
	value T
	set   bool
}

// MissingField returns an unset slot.
func MissingField[T any]() Field[T, Missing] {
	return Field[T, Missing]{}
}

// PresentField returns a slot holding value.
func PresentField[T any](value T) Field[T, Present] {
	return Field[T, Present]{value: value, set: true}
}

// Set stores value and marks the slot Present. Setting an already-set slot
// overwrites the value and keeps the marker unchanged.
func (f Field[T, S]) Set(value T) Field[T, Present] {
	return PresentField(value)
}

// Value returns the stored value. Generated code only calls Value on Present
// instantiations, where a value is guaranteed to have been set; a hand-forged
// Present slot without a value is a misuse and panics.
func (f Field[T, S]) Value() T {
	if !f.set {
		panic("typestate: Value called on an unset field")
	}

	return f.value
}

// Opt stores an optional builder slot. Optional slots contribute no Status
// parameter: a builder is finalizable whether or not they were set.
type Opt[T any] struct {
	value T
	set   bool
}

// SetOpt returns an Opt holding value.
func SetOpt[T any](value T) Opt[T] {
	return Opt[T]{value: value, set: true}
}

// Set stores value.
func (o Opt[T]) Set(value T) Opt[T] {
	return SetOpt(value)
}

// Get returns the stored value and whether it was set.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the stored value, or def if the slot was never set.
func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.value
	}

	return def
}

// OrZero returns the stored value, or the zero value if the slot was never
// set. Pointer, slice, and map fields therefore stay genuinely absent.
func (o Opt[T]) OrZero() T {
	return o.value
}
