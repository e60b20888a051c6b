package gen

import (
	"fmt"

	"construct-generator/internal/annotation"
	"construct-generator/internal/resolve"
)

// paramData is one parameter of a generated function signature.
type paramData struct {
	Name string
	Type string
}

// constructorData holds everything the template needs for one constructor.
// Init lines are precomputed so the template stays flat.
type constructorData struct {
	Doc        string
	Name       string
	TypeParams string
	Params     []paramData
	ReturnType string
	Inits      []string
}

// buildConstructorData turns a constructor plan into template data.
func (g *Generator) buildConstructorData(m *annotation.Model, rc *resolve.ResolvedConstructor) constructorData {
	data := constructorData{
		Name:       rc.Target.Name,
		TypeParams: typeParamsDecl(m.Input.TypeParams),
		ReturnType: recordType(m),
	}

	if g.config.GenerateComments {
		data.Doc = fmt.Sprintf("%s returns a new %s.", rc.Target.Name, rc.Shape.Name)
	}

	for _, p := range rc.Params {
		data.Params = append(data.Params, paramData{Name: p.Name, Type: p.Type})
	}

	// One init per field, in field order. Required fields read their own
	// parameter; overridden fields evaluate their expression, which may
	// itself reference any parameter in scope.
	for _, d := range rc.Fields {
		expr := d.Field.Accessor()
		if d.Kind == resolve.DispositionOverridden {
			expr = d.Expr
		}

		data.Inits = append(data.Inits, initLine(rc.Shape, d.Field, expr))
	}

	return data
}

// initLine renders one composite-literal entry: keyed for named records,
// bare for positional ones.
func initLine(shape *annotation.RecordShape, f *annotation.FieldSpec, expr string) string {
	if shape.Positional {
		return expr + ","
	}

	return f.Name + ": " + expr + ","
}
