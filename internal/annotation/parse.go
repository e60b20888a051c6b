package annotation

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"
)

// Directive kind words.
const (
	kindConstructor = "constructor"
	kindBuilder     = "builder"
	kindValue       = "value"
)

// targetSpec is the parsed form of a constructor/builder directive.
type targetSpec struct {
	Name   string
	Params []Param
	// hasParams distinguishes `Name()` from a missing parameter list.
	hasParams bool
}

// parseTargetSpec parses the text after the constructor/builder kind word:
// an optional name followed by an optional parenthesized parameter list.
func parseTargetSpec(text string, pos token.Position) (*targetSpec, error) {
	text = strings.TrimSpace(text)
	spec := &targetSpec{}

	if text != "" && text[0] != '(' {
		name, rest := scanIdent(text)
		if name == "" {
			return nil, fmt.Errorf("expected a target name or parameter list, got %q", text)
		}

		spec.Name = name
		text = strings.TrimSpace(rest)
	}

	if text == "" {
		return spec, nil
	}

	if text[0] != '(' {
		return nil, fmt.Errorf("unexpected trailing text %q", text)
	}

	inner, rest, err := balanced(text)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(rest) != "" {
		return nil, fmt.Errorf("unexpected trailing text %q", rest)
	}

	spec.hasParams = true

	for _, raw := range splitTop(inner, ',') {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		param, err := parseParam(raw, pos)
		if err != nil {
			return nil, err
		}

		spec.Params = append(spec.Params, param)
	}

	return spec, nil
}

// parseParam parses one parameter: `..`, `Field`, `Field?`, `name Type`, or
// `name Type?`.
func parseParam(raw string, pos token.Position) (Param, error) {
	if raw == ".." {
		return Param{Ellipsis: true, Pos: pos}, nil
	}

	optional := strings.HasSuffix(raw, "?")
	if optional {
		raw = strings.TrimSpace(strings.TrimSuffix(raw, "?"))
	}

	name, rest := scanIdent(raw)
	if name == "" {
		return Param{}, fmt.Errorf("invalid parameter %q", raw)
	}

	return Param{
		Name:     name,
		Type:     strings.TrimSpace(rest),
		Optional: optional,
		Pos:      pos,
	}, nil
}

// parseValueDirective parses `value(expr) [for Name, ...]`.
func parseValueDirective(text string, pos token.Position) (*ValueOverride, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(text, kindValue))
	if rest == "" || rest[0] != '(' {
		return nil, fmt.Errorf("value directive requires a parenthesized expression")
	}

	expr, rest, err := balanced(rest)
	if err != nil {
		return nil, err
	}

	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("value directive has an empty expression")
	}

	override := &ValueOverride{Expr: expr, Pos: pos}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return override, nil
	}

	clause, ok := strings.CutPrefix(rest, "for")
	if !ok || (clause != "" && !unicode.IsSpace(rune(clause[0]))) {
		return nil, fmt.Errorf("unexpected trailing text %q", rest)
	}

	for _, name := range splitTop(clause, ',') {
		name = strings.TrimSpace(name)
		if name == "" || !isIdent(name) {
			return nil, fmt.Errorf("invalid target name %q in for clause", name)
		}

		override.Targets = append(override.Targets, name)
	}

	if len(override.Targets) == 0 {
		return nil, fmt.Errorf("for clause names no targets")
	}

	return override, nil
}

// balanced consumes a parenthesized group at the start of s and returns its
// interior and the remainder. Brackets, braces, and Go string/rune literals
// inside the group are respected.
func balanced(s string) (inner, rest string, err error) {
	if s == "" || s[0] != '(' {
		return "", "", fmt.Errorf("expected '(' at %q", s)
	}

	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], nil
			}
		case '"', '\'', '`':
			end, ok := skipLiteral(s, i)
			if !ok {
				return "", "", fmt.Errorf("unterminated literal in %q", s)
			}

			i = end
		}
	}

	return "", "", fmt.Errorf("unbalanced parentheses in %q", s)
}

// splitTop splits s at top-level occurrences of sep, ignoring separators
// nested in brackets or literals.
func splitTop(s string, sep byte) []string {
	var parts []string

	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '"', '\'', '`':
			if end, ok := skipLiteral(s, i); ok {
				i = end
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

// skipLiteral returns the index of the closing quote of the literal opening
// at s[i].
func skipLiteral(s string, i int) (int, bool) {
	quote := s[i]

	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			if quote != '`' {
				j++
			}
		case quote:
			return j, true
		}
	}

	return 0, false
}

// scanIdent splits a leading Go identifier off s.
func scanIdent(s string) (ident, rest string) {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return s[:i], s[i:]
	}

	return s, ""
}

// isIdent reports whether s is a valid Go identifier.
func isIdent(s string) bool {
	ident, rest := scanIdent(s)
	return ident == s && rest == ""
}
