// Package codegen provides code generation helpers and constants.
package codegen

import (
	"strings"
	"unicode"
)

// Names used in generated code
const (
	InputName       = "input"
	PatternSuffix   = "Pattern"
	SourceSuffix    = "Source"
	MatchStringName = "MatchString"
	FindStringName  = "FindString"
	TestsName       = "tests"
)

// Import paths of the engines generated code can use.
const (
	StdRegexpPath = "regexp"
	Regexp2Path   = "github.com/dlclark/regexp2"
)

// PatternName returns the identifier of the pattern constant for name.
func PatternName(name string) string {
	return name + PatternSuffix
}

// SourceName returns the identifier of the source constant for name.
func SourceName(name string) string {
	return name + SourceSuffix
}

// FuncName returns the identifier of a helper function, e.g. EmailMatchString.
func FuncName(name, fn string) string {
	return name + fn
}

// IsIdentifier reports whether s is a valid Go identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// ExportedName turns a free-form name such as "email-address" into an
// exported identifier ("EmailAddress").
func ExportedName(s string) string {
	var sb strings.Builder
	upper := true
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			if sb.Len() == 0 && unicode.IsDigit(r) {
				sb.WriteByte('X')
			}
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			sb.WriteRune(r)
			continue
		}
		upper = true
	}
	return sb.String()
}
