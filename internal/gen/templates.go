package gen

import "text/template"

// fileData is the root template context: one generated file per record.
type fileData struct {
	PackageName   string
	Header        string
	RuntimeImport string
	NeedsRuntime  bool
	Constructors  []constructorData
	Builders      []builderData
}

// fileTemplate renders one record's constructors and builders. Output is not
// gofmt-clean; the generator formats it afterwards, which also drops the
// runtime import again if no builder ended up using it.
var fileTemplate = template.Must(template.New("construct").Parse(`// Code generated by construct-generator. DO NOT EDIT.
{{- if .Header}}
// {{.Header}}
{{- end}}

package {{.PackageName}}
{{- if .NeedsRuntime}}

import (
	"{{.RuntimeImport}}"
)
{{- end}}
{{range .Constructors}}
{{- if .Doc}}
// {{.Doc}}
{{- end}}
func {{.Name}}{{.TypeParams}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}} {{$p.Type}}{{end}}) {{.ReturnType}} {
	return {{.ReturnType}}{
{{- range .Inits}}
		{{.}}
{{- end}}
	}
}
{{end}}
{{- range .Builders}}
{{- range .Doc}}
// {{.}}
{{- end}}
type {{.Name}}{{.DeclParams}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}

{{if .NewDoc}}// {{.NewDoc}}
{{end}}func {{.NewName}}{{.NewTypeParams}}() {{.NewReturn}} {
	return {{.NewReturn}}{}
}
{{range .Setters}}
{{- if .Doc}}
// {{.Doc}}
{{- end}}
func ({{.Receiver}}) {{.Name}}(value {{.ValueType}}) {{.Return}} {
	return {{.Return}}{
{{- range .Assigns}}
		{{.}}
{{- end}}
	}
}
{{end}}
{{- if .BuildDoc}}
// {{.BuildDoc}}
{{- end}}
func {{.BuildName}}{{.BuildTypeParams}}({{.BuildParam}}) {{.ReturnType}} {
{{- range .Bindings}}
	{{.}}
{{- end}}
	return {{.ReturnType}}{
{{- range .Inits}}
		{{.}}
{{- end}}
	}
}
{{end}}`))
