package common

import (
	"unicode"
	"unicode/utf8"
)

// Exported reports whether name would be exported as a Go identifier.
func Exported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// Capitalize upper-cases the first rune of name.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToUpper(r)) + name[size:]
}

// Decapitalize lower-cases the first rune of name.
func Decapitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToLower(r)) + name[size:]
}

// MatchCase adjusts the first rune of name to match the visibility flag:
// exported names are capitalized, unexported ones decapitalized.
func MatchCase(name string, exported bool) string {
	if exported {
		return Capitalize(name)
	}

	return Decapitalize(name)
}
