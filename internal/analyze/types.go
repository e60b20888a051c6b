package analyze

import (
	"fmt"
	"go/token"
)

// Directive is one construct: comment line with its leading marker removed.
// Text for `//construct:builder OrderBuilder(Retries?)` is
// "builder OrderBuilder(Retries?)".
type Directive struct {
	Text string
	Pos  token.Position
}

// TypeParam describes one type parameter of a generic record, with the
// constraint rendered verbatim.
type TypeParam struct {
	Name       string
	Constraint string
}

// FieldInput describes one struct field.
type FieldInput struct {
	// Name is the declared field name. Empty for positional records, which
	// are addressed as field_<i> (never produced by this loader, but
	// supported by the model).
	Name string
	// Type is the declared type text, rendered verbatim.
	Type string
	// Directives are the construct: directives attached to the field.
	Directives []Directive
	// Pos is the field's source position.
	Pos token.Position
}

// RecordInput describes one annotated struct type as consumed by the
// annotation model builder.
type RecordInput struct {
	// Name is the struct type's name.
	Name string
	// PkgName and PkgPath identify the package declaring the record.
	PkgName string
	PkgPath string
	// Dir is the directory holding the record's source file. Generated
	// output is written next to it.
	Dir string
	// Pos is the type declaration's source position.
	Pos token.Position
	// TypeParams are the record's type parameters, if any.
	TypeParams []TypeParam
	// Fields are the record's fields in declaration order.
	Fields []FieldInput
	// Directives are the type-level construct: directives.
	Directives []Directive
}

// String returns the fully qualified record name.
func (r *RecordInput) String() string {
	if r.PkgPath == "" {
		return r.Name
	}

	return fmt.Sprintf("%s.%s", r.PkgPath, r.Name)
}
