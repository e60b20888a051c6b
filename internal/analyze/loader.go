package analyze

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// DirectivePrefix marks a comment line as a generator directive.
const DirectivePrefix = "construct:"

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Load loads the specified packages and returns every annotated record found
// in them. Patterns are standard Go package patterns (e.g., "./...").
func Load(patterns ...string) ([]*RecordInput, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var records []*RecordInput

	for _, pkg := range pkgs {
		records = append(records, extractPackage(pkg)...)
	}

	return records, nil
}

// extractPackage walks a loaded package's syntax and collects annotated
// records. A struct is a record iff at least one type-level construct:
// directive is attached to it.
func extractPackage(pkg *packages.Package) []*RecordInput {
	var records []*RecordInput

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				structType, ok := typeSpec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				directives := collectDirectives(pkg.Fset, genDecl.Doc, typeSpec.Doc)
				if len(directives) == 0 {
					continue
				}

				records = append(records, extractRecord(pkg, typeSpec, structType, directives))
			}
		}
	}

	return records
}

// extractRecord builds a RecordInput from a struct type declaration.
func extractRecord(
	pkg *packages.Package,
	typeSpec *ast.TypeSpec,
	structType *ast.StructType,
	directives []Directive,
) *RecordInput {
	pos := pkg.Fset.Position(typeSpec.Pos())

	rec := &RecordInput{
		Name:       typeSpec.Name.Name,
		PkgName:    pkg.Name,
		PkgPath:    pkg.PkgPath,
		Dir:        filepath.Dir(pos.Filename),
		Pos:        pos,
		Directives: directives,
	}

	if typeSpec.TypeParams != nil {
		for _, tp := range typeSpec.TypeParams.List {
			constraint := renderExpr(pkg.Fset, tp.Type)
			for _, name := range tp.Names {
				rec.TypeParams = append(rec.TypeParams, TypeParam{
					Name:       name.Name,
					Constraint: constraint,
				})
			}
		}
	}

	for _, field := range structType.Fields.List {
		fieldDirectives := collectDirectives(pkg.Fset, field.Doc, field.Comment)
		typeText := renderExpr(pkg.Fset, field.Type)
		fieldPos := pkg.Fset.Position(field.Pos())

		if len(field.Names) == 0 {
			// Embedded field: addressed by its type's base name, like Go does.
			rec.Fields = append(rec.Fields, FieldInput{
				Name:       embeddedName(field.Type),
				Type:       typeText,
				Directives: fieldDirectives,
				Pos:        fieldPos,
			})

			continue
		}

		// `a, b int` declares two fields sharing type and directives.
		for _, name := range field.Names {
			rec.Fields = append(rec.Fields, FieldInput{
				Name:       name.Name,
				Type:       typeText,
				Directives: fieldDirectives,
				Pos:        fieldPos,
			})
		}
	}

	return rec
}

// collectDirectives extracts construct: directive lines from comment groups.
func collectDirectives(fset *token.FileSet, groups ...*ast.CommentGroup) []Directive {
	var out []Directive

	for _, group := range groups {
		if group == nil {
			continue
		}

		for _, comment := range group.List {
			text := strings.TrimPrefix(comment.Text, "//")
			if !strings.HasPrefix(text, DirectivePrefix) {
				continue
			}

			out = append(out, Directive{
				Text: strings.TrimSpace(strings.TrimPrefix(text, DirectivePrefix)),
				Pos:  fset.Position(comment.Pos()),
			})
		}
	}

	return out
}

// renderExpr renders an AST expression verbatim.
func renderExpr(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return ""
	}

	return buf.String()
}

// embeddedName returns the field name Go assigns to an embedded type.
func embeddedName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(e.X)
	case *ast.IndexListExpr:
		return embeddedName(e.X)
	default:
		return ""
	}
}
