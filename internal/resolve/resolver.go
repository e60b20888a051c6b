package resolve

import (
	"fmt"
	"slices"
	"strings"

	"construct-generator/internal/annotation"
	"construct-generator/internal/common"
)

// Dispositions computes every field's disposition for one target. optional
// holds the accessors marked optional on a builder target; pass nil for
// constructors.
func Dispositions(shape *annotation.RecordShape, target string, optional map[string]bool) []FieldDisposition {
	out := make([]FieldDisposition, 0, len(shape.Fields))

	for i := range shape.Fields {
		f := &shape.Fields[i]
		out = append(out, disposition(f, target, optional))
	}

	return out
}

// disposition applies the precedence rule to one field:
// scoped override > unscoped override > optional marker > required.
func disposition(f *annotation.FieldSpec, target string, optional map[string]bool) FieldDisposition {
	var unscoped *annotation.ValueOverride

	for i := range f.Overrides {
		o := &f.Overrides[i]
		if o.AppliesTo(target) {
			return FieldDisposition{Field: f, Kind: DispositionOverridden, Expr: strings.TrimSpace(o.Expr)}
		}

		if o.Unscoped() {
			unscoped = o
		}
	}

	if unscoped != nil {
		return FieldDisposition{Field: f, Kind: DispositionOverridden, Expr: strings.TrimSpace(unscoped.Expr)}
	}

	if optional[f.Accessor()] {
		return FieldDisposition{Field: f, Kind: DispositionOptional}
	}

	return FieldDisposition{Field: f, Kind: DispositionRequired}
}

// Constructor produces the emission plan for one constructor target.
// The model must have passed annotation validation.
func Constructor(m *annotation.Model, t *annotation.ConstructorTarget) *ResolvedConstructor {
	shape := &m.Shape
	fields := Dispositions(shape, t.Name, nil)

	// Required fields not yet given an explicit position, in field order.
	var remaining []int
	for _, d := range fields {
		if d.Kind == DispositionRequired {
			remaining = append(remaining, d.Field.Index)
		}
	}

	var params []PlannedParam

	// Without an ellipsis, leftover required fields go to the end.
	insertAt := -1

	for _, p := range t.Params {
		switch {
		case p.Ellipsis:
			insertAt = len(params)
		case p.IsFieldRef():
			f := shape.Field(p.Name)
			remaining = slices.DeleteFunc(remaining, func(i int) bool { return i == f.Index })
			params = append(params, PlannedParam{
				Name:       f.Accessor(),
				Type:       f.Type,
				Kind:       ParamField,
				FieldIndex: f.Index,
			})
		default:
			params = append(params, PlannedParam{
				Name:       p.Name,
				Type:       p.Type,
				Kind:       ParamExtra,
				FieldIndex: -1,
			})
		}
	}

	if insertAt == -1 {
		insertAt = len(params)
	}

	inserted := make([]PlannedParam, 0, len(remaining))
	for _, idx := range remaining {
		f := &shape.Fields[idx]
		inserted = append(inserted, PlannedParam{
			Name:       f.Accessor(),
			Type:       f.Type,
			Kind:       ParamField,
			FieldIndex: f.Index,
		})
	}

	params = slices.Insert(params, insertAt, inserted...)

	return &ResolvedConstructor{
		Target: t,
		Shape:  shape,
		Params: params,
		Fields: fields,
	}
}

// Builder produces the emission plan for one builder target.
// The model must have passed annotation validation.
func Builder(m *annotation.Model, t *annotation.BuilderTarget) *ResolvedBuilder {
	shape := &m.Shape
	fields := Dispositions(shape, t.Name, t.OptionalFields())

	var remaining []int
	for _, d := range fields {
		if d.Kind == DispositionRequired {
			remaining = append(remaining, d.Field.Index)
		}
	}

	var slots []BuilderSlot

	for _, p := range t.Params {
		if p.IsFieldRef() {
			f := shape.Field(p.Name)
			remaining = slices.DeleteFunc(remaining, func(i int) bool { return i == f.Index })

			if p.Optional {
				// An optional marker on a field whose disposition resolved
				// Overridden (via an unscoped override) is inert: the field
				// gets no setter, like every other overridden field.
				if fields[f.Index].Kind != DispositionOptional {
					continue
				}

				slots = append(slots, BuilderSlot{
					Name:       f.Accessor(),
					Type:       f.Type,
					Kind:       SlotOptionalField,
					FieldIndex: f.Index,
				})

				continue
			}

			// Re-adding a field forces a mandatory setter even when its
			// disposition is Overridden; the stored value is then visible
			// to override expressions under the field's name.
			slots = append(slots, BuilderSlot{
				Name:       f.Accessor(),
				Type:       f.Type,
				Kind:       SlotRequiredField,
				FieldIndex: f.Index,
			})

			continue
		}

		kind := SlotExtraRequired
		if p.Optional {
			kind = SlotExtraOptional
		}

		slots = append(slots, BuilderSlot{
			Name:       p.Name,
			Type:       p.Type,
			Kind:       kind,
			FieldIndex: -1,
		})
	}

	for _, idx := range remaining {
		f := &shape.Fields[idx]
		slots = append(slots, BuilderSlot{
			Name:       f.Accessor(),
			Type:       f.Type,
			Kind:       SlotRequiredField,
			FieldIndex: f.Index,
		})
	}

	for i := range slots {
		slots[i].Store = fmt.Sprintf("f%d", i)
		if slots[i].Kind.Required() {
			slots[i].StatusParam = common.Capitalize(slots[i].Name) + "Status"
		}
	}

	return &ResolvedBuilder{
		Target: t,
		Shape:  shape,
		Slots:  slots,
		Fields: fields,
	}
}
