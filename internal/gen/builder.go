package gen

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"construct-generator/internal/annotation"
	"construct-generator/internal/common"
	"construct-generator/internal/resolve"
)

// setterData holds everything the template needs for one setter method.
// Receiver and Return carry the full instantiations as text; computing them
// here keeps the template free of type-argument logic.
type setterData struct {
	Doc       string
	Receiver  string
	Name      string
	ValueType string
	Return    string
	Assigns   []string
}

// builderData holds everything the template needs for one builder target:
// the struct, its zero-state constructor, the setters, and the finalizer.
type builderData struct {
	Doc        []string
	Name       string
	DeclParams string
	Fields     []paramData

	NewDoc        string
	NewName       string
	NewTypeParams string
	NewReturn     string

	Setters []setterData

	BuildDoc        string
	BuildName       string
	BuildTypeParams string
	BuildParam      string
	ReturnType      string
	Bindings        []string
	Inits           []string

	usesRuntime bool
}

// buildBuilderData turns a builder plan into template data.
func (g *Generator) buildBuilderData(m *annotation.Model, rb *resolve.ResolvedBuilder) builderData {
	ref := g.runtimeRef
	t := rb.Target
	required := rb.RequiredSlots()

	recv := pickReceiver(rb)

	tpNames := make([]string, 0, len(m.Input.TypeParams))
	for _, tp := range m.Input.TypeParams {
		tpNames = append(tpNames, tp.Name)
	}

	statusNames := make([]string, 0, len(required))
	for _, s := range required {
		statusNames = append(statusNames, s.StatusParam)
	}

	declParts := make([]string, 0, len(tpNames)+len(statusNames))
	for _, tp := range m.Input.TypeParams {
		declParts = append(declParts, tp.Name+" "+tp.Constraint)
	}

	for _, name := range statusNames {
		declParts = append(declParts, name+" "+ref+".Status")
	}

	openArgs := append(slices.Clone(tpNames), statusNames...)
	missingArgs := append(slices.Clone(tpNames), repeat(ref+".Missing", len(statusNames))...)
	presentArgs := append(slices.Clone(tpNames), repeat(ref+".Present", len(statusNames))...)

	data := builderData{
		Name:            t.Name,
		DeclParams:      genericArgs(declParts),
		NewName:         common.MatchCase("New"+common.Capitalize(t.Name), t.Exported),
		NewTypeParams:   typeParamsDecl(m.Input.TypeParams),
		NewReturn:       t.Name + genericArgs(missingArgs),
		BuildName:       finalizerName(t),
		BuildTypeParams: typeParamsDecl(m.Input.TypeParams),
		BuildParam:      recv + " " + t.Name + genericArgs(presentArgs),
		ReturnType:      recordType(m),
		usesRuntime:     len(rb.Slots) > 0,
	}

	for _, s := range rb.Slots {
		data.Fields = append(data.Fields, paramData{
			Name: s.Store,
			Type: storageType(ref, &s),
		})
	}

	receiver := recv + " " + t.Name + genericArgs(openArgs)

	for i, s := range rb.Slots {
		setter := setterData{
			Receiver:  receiver,
			Name:      common.MatchCase(s.Name, t.Exported),
			ValueType: s.Type,
			Return:    t.Name + genericArgs(setterReturnArgs(openArgs, tpNames, statusNames, &s, ref)),
		}

		if g.config.GenerateComments {
			setter.Doc = setterDoc(&s, setter.Name)
		}

		for j, s2 := range rb.Slots {
			assign := recv + "." + s2.Store
			if j == i {
				assign += ".Set(value)"
			}

			setter.Assigns = append(setter.Assigns, s2.Store+": "+assign+",")
		}

		data.Setters = append(data.Setters, setter)
	}

	g.buildFinalizerBody(&data, rb, recv)

	if g.config.GenerateComments {
		data.Doc = builderDoc(t, rb.Shape.Name, required, data.BuildName)
		data.NewDoc = fmt.Sprintf("%s returns an empty %s with every required value unset.", data.NewName, t.Name)
		data.BuildDoc = buildDoc(data.BuildName, rb.Shape.Name, len(required))
	}

	return data
}

// buildFinalizerBody computes the finalizer's local bindings and the record
// literal. A slot is bound to a local under its visible name when the literal
// needs it: when it supplies its own field directly, or when any override
// expression mentions the name.
func (g *Generator) buildFinalizerBody(data *builderData, rb *resolve.ResolvedBuilder, recv string) {
	var overrideExprs []string

	for _, d := range rb.Fields {
		if d.Kind == resolve.DispositionOverridden {
			overrideExprs = append(overrideExprs, d.Expr)
		}
	}

	for i := range rb.Slots {
		s := &rb.Slots[i]

		direct := s.FieldIndex >= 0 && rb.Fields[s.FieldIndex].Kind != resolve.DispositionOverridden
		if !direct && !referencedBy(overrideExprs, s.Name) {
			continue
		}

		data.Bindings = append(data.Bindings, s.Name+" := "+slotValueExpr(recv, s))
	}

	for i := range rb.Fields {
		d := &rb.Fields[i]

		expr := d.Field.Accessor()
		if d.Kind == resolve.DispositionOverridden {
			expr = d.Expr
		}

		data.Inits = append(data.Inits, initLine(rb.Shape, d.Field, expr))
	}
}

// slotValueExpr renders how the finalizer reads one slot. Optional extras are
// exposed as the Opt container itself so override expressions can choose
// their own fallback with Or.
func slotValueExpr(recv string, s *resolve.BuilderSlot) string {
	switch s.Kind {
	case resolve.SlotOptionalField:
		return recv + "." + s.Store + ".OrZero()"
	case resolve.SlotExtraOptional:
		return recv + "." + s.Store
	default:
		return recv + "." + s.Store + ".Value()"
	}
}

// storageType renders the builder struct field type for one slot.
func storageType(ref string, s *resolve.BuilderSlot) string {
	if s.Kind.Required() {
		return ref + ".Field[" + s.Type + ", " + s.StatusParam + "]"
	}

	return ref + ".Opt[" + s.Type + "]"
}

// setterReturnArgs rebuilds the receiver's argument list with the given
// slot's status flipped to Present. Optional slots return the receiver's own
// instantiation unchanged.
func setterReturnArgs(openArgs, tpNames, statusNames []string, s *resolve.BuilderSlot, ref string) []string {
	if !s.Kind.Required() {
		return openArgs
	}

	out := slices.Clone(openArgs)

	for i, name := range statusNames {
		if name == s.StatusParam {
			out[len(tpNames)+i] = ref + ".Present"
			break
		}
	}

	return out
}

// finalizerName derives the finalizer function's name from the builder's:
// Build<Name> with any trailing "Builder" dropped, cased to the builder's
// visibility.
func finalizerName(t *annotation.BuilderTarget) string {
	base := strings.TrimSuffix(t.Name, "Builder")
	if base == "" {
		base = t.Name
	}

	return common.MatchCase("Build"+common.Capitalize(base), t.Exported)
}

// pickReceiver chooses the builder methods' receiver name. Finalizer bindings
// shadow slot names, so the receiver must not collide with any of them.
func pickReceiver(rb *resolve.ResolvedBuilder) string {
	taken := make(map[string]bool, len(rb.Slots))
	for _, s := range rb.Slots {
		taken[s.Name] = true
	}

	for _, cand := range []string{"b", "bld", "bldr"} {
		if !taken[cand] {
			return cand
		}
	}

	return "receiver"
}

// referencedBy reports whether any expression mentions name as a word.
func referencedBy(exprs []string, name string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)

	for _, e := range exprs {
		if re.MatchString(e) {
			return true
		}
	}

	return false
}

// repeat returns n copies of s.
func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}

	return out
}

func setterDoc(s *resolve.BuilderSlot, name string) string {
	switch s.Kind {
	case resolve.SlotRequiredField:
		return fmt.Sprintf("%s sets the %s field. It must be called before finalization.", name, s.Name)
	case resolve.SlotOptionalField:
		return fmt.Sprintf("%s sets the %s field. When never called the zero value is used.", name, s.Name)
	case resolve.SlotExtraRequired:
		return fmt.Sprintf("%s supplies the %s parameter. It must be called before finalization.", name, s.Name)
	default:
		return fmt.Sprintf("%s supplies the optional %s parameter.", name, s.Name)
	}
}

func builderDoc(t *annotation.BuilderTarget, record string, required []resolve.BuilderSlot, buildName string) []string {
	lines := []string{fmt.Sprintf("%s assembles %s values step by step.", t.Name, record)}

	if len(required) == 0 {
		lines = append(lines, fmt.Sprintf("Finalize with %s at any point.", buildName))
		return lines
	}

	names := make([]string, 0, len(required))
	for _, s := range required {
		names = append(names, common.MatchCase(s.Name, t.Exported))
	}

	lines = append(lines, fmt.Sprintf("Required setters: %s.", strings.Join(names, ", ")))
	lines = append(lines, fmt.Sprintf("%s only accepts a builder on which each of them has been called.", buildName))

	return lines
}

func buildDoc(buildName, record string, requiredCount int) string {
	if requiredCount == 0 {
		return fmt.Sprintf("%s converts the builder into %s.", buildName, record)
	}

	return fmt.Sprintf("%s converts a fully populated builder into %s.", buildName, record)
}
