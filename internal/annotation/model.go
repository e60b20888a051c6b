package annotation

import (
	"fmt"
	"go/token"
	"slices"

	"construct-generator/internal/analyze"
	"construct-generator/internal/common"
)

// ValueOverride supplies a field's value automatically for some targets.
type ValueOverride struct {
	// Expr is the override expression, passed through verbatim.
	Expr string
	// Targets are the target names this override is scoped to. Empty means
	// unscoped: the default for every target not otherwise covered.
	Targets []string
	// Pos is the source position of the value directive.
	Pos token.Position
}

// Unscoped reports whether the override is the field's default.
func (v *ValueOverride) Unscoped() bool {
	return len(v.Targets) == 0
}

// AppliesTo reports whether the override is scoped to the named target.
func (v *ValueOverride) AppliesTo(target string) bool {
	return slices.Contains(v.Targets, target)
}

// FieldSpec describes one record field.
type FieldSpec struct {
	// Name is the declared field name; empty for positional records.
	Name string
	// Index is the field's position in declaration order.
	Index int
	// Type is the declared type text, opaque to resolution and emission.
	Type string
	// Overrides are the field's value overrides in declaration order.
	Overrides []ValueOverride
	// Pos is the field's source position.
	Pos token.Position
}

// Accessor returns the name the field is addressed by: the declared name,
// or field_<i> for positional records.
func (f *FieldSpec) Accessor() string {
	if f.Name != "" {
		return f.Name
	}

	return fmt.Sprintf("field_%d", f.Index)
}

// RecordShape is the ordered field set of one record.
type RecordShape struct {
	// Name is the record type's name.
	Name string
	// Positional is true when any field is unnamed; positional records are
	// constructed with unkeyed composite literals.
	Positional bool
	// Fields in declaration order. The order is fixed and defines both
	// positional argument order and builder setter emission order.
	Fields []FieldSpec
}

// Field returns the field addressed by accessor, or nil.
func (s *RecordShape) Field(accessor string) *FieldSpec {
	for i := range s.Fields {
		if s.Fields[i].Accessor() == accessor {
			return &s.Fields[i]
		}
	}

	return nil
}

// Param is one declared target parameter.
type Param struct {
	// Name of the parameter. Empty for the ellipsis.
	Name string
	// Type is the declared type of an extra parameter; empty for field
	// references and the ellipsis.
	Type string
	// Optional marks a trailing `?` (builder targets only).
	Optional bool
	// Ellipsis marks the `..` insertion point (constructor targets only).
	Ellipsis bool
	// Pos is the source position of the declaring directive.
	Pos token.Position
}

// IsFieldRef reports whether the parameter references a record field.
func (p *Param) IsFieldRef() bool {
	return !p.Ellipsis && p.Type == ""
}

// ConstructorTarget is one declared constructor.
type ConstructorTarget struct {
	// Name of the generated function.
	Name string
	// Exported mirrors the name's casing; generated helpers follow it.
	Exported bool
	// Params in declared order. A missing parameter list declares `(..)`.
	Params []Param
	// Pos is the source position of the declaring directive.
	Pos token.Position
}

// BuilderTarget is one declared builder.
type BuilderTarget struct {
	// Name of the generated builder type.
	Name string
	// Exported mirrors the name's casing; setters and the finalizer follow it.
	Exported bool
	// Params in declared order.
	Params []Param
	// Pos is the source position of the declaring directive.
	Pos token.Position
}

// OptionalFields returns the accessors of fields marked optional (`Field?`).
func (b *BuilderTarget) OptionalFields() map[string]bool {
	out := make(map[string]bool)

	for _, p := range b.Params {
		if p.IsFieldRef() && p.Optional {
			out[p.Name] = true
		}
	}

	return out
}

// Model is the fully normalized description of one annotated record.
type Model struct {
	// Input is the record description produced by the front end.
	Input *analyze.RecordInput
	// Shape is the record's field set.
	Shape RecordShape
	// Constructors and Builders are the declared targets.
	Constructors []ConstructorTarget
	Builders     []BuilderTarget
}

// TargetNames returns the set of all declared target names.
func (m *Model) TargetNames() map[string]bool {
	names := make(map[string]bool, len(m.Constructors)+len(m.Builders))

	for i := range m.Constructors {
		names[m.Constructors[i].Name] = true
	}

	for i := range m.Builders {
		names[m.Builders[i].Name] = true
	}

	return names
}

// HasTargets reports whether any target was declared.
func (m *Model) HasTargets() bool {
	return len(m.Constructors) > 0 || len(m.Builders) > 0
}

// DefaultConstructorName returns the name used when a constructor directive
// omits one: New<Type>, cased to the record's own visibility.
func DefaultConstructorName(record string) string {
	return common.MatchCase("New"+common.Capitalize(record), common.Exported(record))
}

// DefaultBuilderName returns the name used when a builder directive omits
// one: <Type>Builder.
func DefaultBuilderName(record string) string {
	return record + "Builder"
}
