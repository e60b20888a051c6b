package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/tools/imports"

	"construct-generator/internal/analyze"
	"construct-generator/internal/annotation"
	"construct-generator/internal/common"
	"construct-generator/internal/resolve"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is appended to the snake-cased record name to form the output
	// filename.
	Suffix string
	// RuntimePackage is the import path of the completion-marker runtime.
	RuntimePackage string
	// Header is an extra comment line placed under the generated-code marker.
	Header string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:           "_construct.go",
		RuntimePackage:   "construct-generator/typestate",
		GenerateComments: true,
	}
}

// Generator generates Go code from resolved annotation models.
type Generator struct {
	config GeneratorConfig
	// runtimeRef is the identifier the generated code uses to reference the
	// runtime package.
	runtimeRef string
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultGeneratorConfig().Suffix
	}

	if config.RuntimePackage == "" {
		config.RuntimePackage = DefaultGeneratorConfig().RuntimePackage
	}

	return &Generator{
		config:     config,
		runtimeRef: common.PkgAlias(config.RuntimePackage),
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the record's own package; output lands next to
	// the record so keyed and unkeyed literals always compile.
	Dir string
	// Filename is the name of the file (e.g. "order_construct.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per record. Models that declare no targets are
// skipped; the caller decides whether that warrants a warning.
func (g *Generator) Generate(models []*annotation.Model) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, m := range models {
		if !m.HasTargets() {
			continue
		}

		file, err := g.generateRecord(m)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", m.Input, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateRecord renders every target of one record into a single file.
func (g *Generator) generateRecord(m *annotation.Model) (*GeneratedFile, error) {
	data := &fileData{
		PackageName:   m.Input.PkgName,
		Header:        g.config.Header,
		RuntimeImport: g.config.RuntimePackage,
	}

	for i := range m.Constructors {
		rc := resolve.Constructor(m, &m.Constructors[i])
		data.Constructors = append(data.Constructors, g.buildConstructorData(m, rc))
	}

	for i := range m.Builders {
		rb := resolve.Builder(m, &m.Builders[i])
		bd := g.buildBuilderData(m, rb)
		data.Builders = append(data.Builders, bd)

		if bd.usesRuntime {
			data.NeedsRuntime = true
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	filename := snakeCase(m.Input.Name) + g.config.Suffix

	// imports.Process both formats and resolves imports pulled in by
	// override expressions. The path argument steers its resolution toward
	// the record's own package.
	formatted, err := imports.Process(filepath.Join(m.Input.Dir, filename), buf.Bytes(), nil)
	if err != nil {
		formatted, err = format.Source(buf.Bytes())
	}

	if err != nil {
		_ = writeDebugUnformatted(m.Input.Dir, filename, buf.Bytes())

		return &GeneratedFile{
			Dir:      m.Input.Dir,
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Dir:      m.Input.Dir,
		Filename: filename,
		Content:  formatted,
	}, nil
}

// typeParamsDecl renders the record's type parameter list with constraints,
// e.g. "[T any, U comparable]". Empty for non-generic records.
func typeParamsDecl(tps []analyze.TypeParam) string {
	if len(tps) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tps))
	for _, tp := range tps {
		parts = append(parts, tp.Name+" "+tp.Constraint)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// typeArgs renders the record's type parameters as arguments, e.g. "[T, U]".
func typeArgs(tps []analyze.TypeParam) string {
	if len(tps) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tps))
	for _, tp := range tps {
		parts = append(parts, tp.Name)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// genericArgs joins a full argument list into bracketed form, or "" when the
// list is empty.
func genericArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return "[" + strings.Join(args, ", ") + "]"
}

// recordType renders the record's type as used in signatures and literals.
func recordType(m *annotation.Model) string {
	return m.Shape.Name + typeArgs(m.Input.TypeParams)
}

// snakeCase converts an identifier to snake_case for filenames.
// Runs of upper-case letters stay together: "HTTPServer" -> "http_server".
func snakeCase(name string) string {
	var b strings.Builder

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_'
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if i > 0 && (prevLower || nextLower) && runes[i-1] != '_' {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
