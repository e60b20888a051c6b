package annotation

import (
	"fmt"
	"strings"

	"construct-generator/internal/analyze"
	"construct-generator/internal/common"
	"construct-generator/internal/diagnostic"
)

// Diagnostic codes produced while building the model.
const (
	CodeMalformedDirective    = "malformed_directive"
	CodeDuplicateTargetName   = "duplicate_target_name"
	CodeUnknownTarget         = "unknown_target_reference"
	CodeAmbiguousValue        = "ambiguous_value_for_field"
	CodeAmbiguousParamName    = "ambiguous_parameter_name"
	CodeUnknownFieldReference = "unknown_field_reference"
	CodeDuplicateParameter    = "duplicate_parameter"
	CodeInvalidParameter      = "invalid_parameter"
	CodeConflictingFieldState = "conflicting_field_disposition"
	CodeNoTargets             = "no_targets"
)

// Build normalizes one record's directives into a Model. All annotation
// errors are accumulated; a model with error diagnostics must not be passed
// to resolution or generation.
func Build(in *analyze.RecordInput) (*Model, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	m := &Model{
		Input: in,
		Shape: buildShape(in),
	}

	buildTargets(m, in, &diags)
	buildOverrides(m, in, &diags)
	validateParams(m, &diags)

	if !m.HasTargets() {
		diags.AddWarning(CodeNoTargets,
			"record carries construct: directives but declares no constructor or builder",
			in.String(), "", in.Pos)
	}

	return m, diags
}

// buildShape maps the front end's field list onto a RecordShape.
func buildShape(in *analyze.RecordInput) RecordShape {
	shape := RecordShape{Name: in.Name}

	for i, f := range in.Fields {
		if f.Name == "" {
			shape.Positional = true
		}

		shape.Fields = append(shape.Fields, FieldSpec{
			Name:  f.Name,
			Index: i,
			Type:  f.Type,
			Pos:   f.Pos,
		})
	}

	return shape
}

// buildTargets parses the type-level directives into declared targets.
func buildTargets(m *Model, in *analyze.RecordInput, diags *diagnostic.Diagnostics) {
	record := in.String()
	seen := make(map[string]bool)

	for _, d := range in.Directives {
		kind, rest := scanIdent(d.Text)

		switch kind {
		case kindConstructor, kindBuilder:
			// Handled below.
		case kindValue:
			diags.AddError(CodeMalformedDirective,
				"value directives belong on fields, not on the type", record, "", d.Pos)
			continue
		default:
			diags.AddError(CodeMalformedDirective,
				fmt.Sprintf("unknown directive %q", kind), record, "", d.Pos)
			continue
		}

		spec, err := parseTargetSpec(rest, d.Pos)
		if err != nil {
			diags.AddError(CodeMalformedDirective, err.Error(), record, "", d.Pos)
			continue
		}

		name := spec.Name
		if name == "" {
			if kind == kindConstructor {
				name = DefaultConstructorName(in.Name)
			} else {
				name = DefaultBuilderName(in.Name)
			}
		}

		if seen[name] {
			diags.AddError(CodeDuplicateTargetName,
				fmt.Sprintf("target %q is declared more than once", name), record, "", d.Pos)
			continue
		}

		seen[name] = true

		switch kind {
		case kindConstructor:
			params := spec.Params
			if !spec.hasParams {
				// A missing parameter list means "all required fields here".
				params = []Param{{Ellipsis: true, Pos: d.Pos}}
			}

			m.Constructors = append(m.Constructors, ConstructorTarget{
				Name:     name,
				Exported: common.Exported(name),
				Params:   params,
				Pos:      d.Pos,
			})
		case kindBuilder:
			m.Builders = append(m.Builders, BuilderTarget{
				Name:     name,
				Exported: common.Exported(name),
				Params:   spec.Params,
				Pos:      d.Pos,
			})
		}
	}
}

// buildOverrides parses the field-level value directives and validates
// scoping: at most one unscoped override per field, disjoint scoped claims,
// and every referenced target declared.
func buildOverrides(m *Model, in *analyze.RecordInput, diags *diagnostic.Diagnostics) {
	record := in.String()
	targets := m.TargetNames()

	for i, f := range in.Fields {
		field := &m.Shape.Fields[i]
		claimed := make(map[string]bool)
		hasUnscoped := false

		for _, d := range f.Directives {
			kind, _ := scanIdent(d.Text)
			if kind != kindValue {
				diags.AddError(CodeMalformedDirective,
					fmt.Sprintf("unknown field directive %q", kind), record, field.Accessor(), d.Pos)
				continue
			}

			override, err := parseValueDirective(d.Text, d.Pos)
			if err != nil {
				diags.AddError(CodeMalformedDirective, err.Error(), record, field.Accessor(), d.Pos)
				continue
			}

			if override.Unscoped() {
				if hasUnscoped {
					diags.AddError(CodeAmbiguousValue,
						"field has more than one unscoped value override",
						record, field.Accessor(), d.Pos)
					continue
				}

				hasUnscoped = true
			}

			ok := true

			for _, target := range override.Targets {
				if !targets[target] {
					diags.AddError(CodeUnknownTarget,
						fmt.Sprintf("%q does not refer to a declared constructor or builder", target),
						record, field.Accessor(), d.Pos)

					ok = false

					continue
				}

				if claimed[target] {
					diags.AddError(CodeAmbiguousValue,
						fmt.Sprintf("field declares more than one value for target %q", target),
						record, field.Accessor(), d.Pos)

					ok = false

					continue
				}

				claimed[target] = true
			}

			if ok {
				field.Overrides = append(field.Overrides, *override)
			}
		}
	}
}

// validateParams checks every target's parameter list against the shape.
func validateParams(m *Model, diags *diagnostic.Diagnostics) {
	record := m.Input.String()

	for i := range m.Constructors {
		c := &m.Constructors[i]
		seen := make(map[string]bool)

		for _, p := range c.Params {
			if p.Ellipsis {
				continue
			}

			if p.Optional {
				diags.AddError(CodeInvalidParameter,
					fmt.Sprintf("parameter %q: '?' is only valid on builder parameters", p.Name),
					record, "", p.Pos)
				continue
			}

			validateParamName(m, diags, record, c.Name, &p, seen)
		}
	}

	for i := range m.Builders {
		b := &m.Builders[i]
		seen := make(map[string]bool)

		for _, p := range b.Params {
			if p.Ellipsis {
				diags.AddError(CodeInvalidParameter,
					"'..' is only valid in constructor parameter lists", record, "", p.Pos)
				continue
			}

			if !validateParamName(m, diags, record, b.Name, &p, seen) {
				continue
			}

			if p.IsFieldRef() && p.Optional {
				if expr, scoped := scopedOverride(m.Shape.Field(p.Name), b.Name); scoped {
					diags.AddError(CodeConflictingFieldState,
						fmt.Sprintf("field is marked optional but carries the override %q scoped to %q",
							expr, b.Name),
						record, p.Name, p.Pos)
				}
			}
		}
	}
}

// validateParamName applies the checks shared by both target kinds.
func validateParamName(
	m *Model,
	diags *diagnostic.Diagnostics,
	record, target string,
	p *Param,
	seen map[string]bool,
) bool {
	if seen[p.Name] {
		diags.AddError(CodeDuplicateParameter,
			fmt.Sprintf("parameter %q is declared twice in %q", p.Name, target),
			record, "", p.Pos)

		return false
	}

	seen[p.Name] = true

	if p.IsFieldRef() {
		if m.Shape.Field(p.Name) == nil {
			diags.AddError(CodeUnknownFieldReference,
				fmt.Sprintf("parameter %q does not name a field; extra parameters require a type", p.Name),
				record, "", p.Pos)

			return false
		}

		return true
	}

	if m.Shape.Field(p.Name) != nil {
		diags.AddError(CodeAmbiguousParamName,
			fmt.Sprintf("extra parameter %q collides with a field name", p.Name),
			record, p.Name, p.Pos)

		return false
	}

	return true
}

// scopedOverride returns the expression of an override scoped to target, if
// the field carries one.
func scopedOverride(f *FieldSpec, target string) (string, bool) {
	if f == nil {
		return "", false
	}

	for i := range f.Overrides {
		if f.Overrides[i].AppliesTo(target) {
			return strings.TrimSpace(f.Overrides[i].Expr), true
		}
	}

	return "", false
}
