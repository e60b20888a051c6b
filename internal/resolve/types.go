package resolve

import (
	"construct-generator/internal/annotation"
	"construct-generator/internal/common"
)

//go:generate go tool stringer -type=DispositionKind -output=dispositionkind_string.go

// DispositionKind is the resolved treatment of one field for one target.
type DispositionKind int

const (
	// DispositionRequired - the caller must supply the value (constructor
	// argument, or mandatory setter before finalization).
	DispositionRequired DispositionKind = iota
	// DispositionOverridden - the value is supplied by an override expression.
	DispositionOverridden
	// DispositionOptional - builder-only: may be set or left at zero.
	DispositionOptional
)

// FieldDisposition pairs a field with its resolved treatment.
type FieldDisposition struct {
	// Field is the resolved field.
	Field *annotation.FieldSpec
	// Kind is the resolved treatment.
	Kind DispositionKind
	// Expr is the override expression when Kind is DispositionOverridden.
	Expr string
}

// ParamKind distinguishes the origin of a constructor parameter.
type ParamKind int

const (
	// ParamField - the parameter supplies a record field directly.
	ParamField ParamKind = iota
	// ParamExtra - a declared extra parameter, independent of fields.
	ParamExtra
)

// String returns a human-readable kind name.
func (k ParamKind) String() string {
	switch k {
	case ParamField:
		return "field"
	case ParamExtra:
		return "extra"
	default:
		return common.UnknownStr
	}
}

// PlannedParam is one parameter of a generated constructor, in final order.
type PlannedParam struct {
	// Name as it appears in the signature (field accessor or extra name).
	Name string
	// Type is the declared type text.
	Type string
	// Kind is the parameter's origin.
	Kind ParamKind
	// FieldIndex is the supplied field's index, or -1 for extras.
	FieldIndex int
}

// ResolvedConstructor is the emission plan for one constructor target.
type ResolvedConstructor struct {
	// Target is the declared constructor.
	Target *annotation.ConstructorTarget
	// Shape is the record the constructor builds.
	Shape *annotation.RecordShape
	// Params is the final ordered parameter list.
	Params []PlannedParam
	// Fields holds one disposition per field, in field order.
	Fields []FieldDisposition
}

// SlotKind distinguishes what a builder stores in one slot.
type SlotKind int

const (
	// SlotRequiredField - a field that must be set before finalization.
	// Also used for overridden fields re-added as mandatory setters.
	SlotRequiredField SlotKind = iota
	// SlotOptionalField - a field marked optional; zero value when unset.
	SlotOptionalField
	// SlotExtraRequired - a declared extra setter, tracked like a field.
	SlotExtraRequired
	// SlotExtraOptional - a declared optional extra setter.
	SlotExtraOptional
)

// String returns a human-readable kind name.
func (k SlotKind) String() string {
	switch k {
	case SlotRequiredField:
		return "required_field"
	case SlotOptionalField:
		return "optional_field"
	case SlotExtraRequired:
		return "extra_required"
	case SlotExtraOptional:
		return "extra_optional"
	default:
		return common.UnknownStr
	}
}

// Required reports whether the slot contributes a completion marker.
func (k SlotKind) Required() bool {
	return k == SlotRequiredField || k == SlotExtraRequired
}

// BuilderSlot is one stored value of a generated builder.
type BuilderSlot struct {
	// Name is the value's visible name (field accessor or extra name);
	// the setter is this name cased to the builder's visibility.
	Name string
	// Type is the stored value's declared type text.
	Type string
	// Kind is the slot's role.
	Kind SlotKind
	// FieldIndex is the backing field's index, or -1 for extras.
	FieldIndex int
	// Store is the builder struct's internal field name.
	Store string
	// StatusParam is the completion marker's type parameter name; empty for
	// optional slots, which impose no completion requirement.
	StatusParam string
}

// ResolvedBuilder is the emission plan for one builder target.
type ResolvedBuilder struct {
	// Target is the declared builder.
	Target *annotation.BuilderTarget
	// Shape is the record the builder builds.
	Shape *annotation.RecordShape
	// Slots is the builder's storage in setter emission order: declared
	// parameters first, then the remaining required fields in field order.
	Slots []BuilderSlot
	// Fields holds one disposition per field, in field order.
	Fields []FieldDisposition
}

// RequiredSlots returns the slots that carry completion markers.
func (b *ResolvedBuilder) RequiredSlots() []BuilderSlot {
	var out []BuilderSlot

	for _, s := range b.Slots {
		if s.Kind.Required() {
			out = append(out, s)
		}
	}

	return out
}

// SlotFor returns the slot backing the given field index, or nil.
func (b *ResolvedBuilder) SlotFor(fieldIndex int) *BuilderSlot {
	for i := range b.Slots {
		if b.Slots[i].FieldIndex == fieldIndex {
			return &b.Slots[i]
		}
	}

	return nil
}
