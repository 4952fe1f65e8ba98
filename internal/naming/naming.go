// Package naming provides the pure string transforms used to turn JSON keys
// into valid Dart identifiers: casing conversion, reserved-word avoidance,
// singularization and uniqueness enforcement.
package naming

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Fallback identifiers for inputs that yield no usable tokens.
const (
	ClassFallback = "Model"
	FieldFallback = "field"
)

// reservedWords is the set of Dart keywords. Generated identifiers must
// never collide with one of these.
var reservedWords = map[string]struct{}{
	"abstract": {}, "as": {}, "assert": {}, "async": {}, "await": {},
	"base": {}, "break": {}, "case": {}, "catch": {}, "class": {},
	"const": {}, "continue": {}, "covariant": {}, "default": {},
	"deferred": {}, "do": {}, "dynamic": {}, "else": {}, "enum": {},
	"export": {}, "extends": {}, "extension": {}, "external": {},
	"factory": {}, "false": {}, "final": {}, "finally": {}, "for": {},
	"get": {}, "hide": {}, "if": {}, "implements": {}, "import": {},
	"in": {}, "interface": {}, "is": {}, "late": {}, "library": {},
	"mixin": {}, "new": {}, "null": {}, "on": {}, "operator": {},
	"part": {}, "required": {}, "rethrow": {}, "return": {},
	"sealed": {}, "set": {}, "show": {}, "static": {}, "super": {},
	"switch": {}, "sync": {}, "this": {}, "throw": {}, "true": {},
	"try": {}, "typedef": {}, "var": {}, "void": {}, "when": {},
	"while": {}, "with": {}, "yield": {},
}

// IsReserved reports whether s is a Dart keyword.
func IsReserved(s string) bool {
	_, ok := reservedWords[s]
	return ok
}

// ToPascalIdentifier converts a JSON key to a PascalCase Dart identifier.
// Inputs with no usable tokens fall back to ClassFallback; a digit-leading
// result is prefixed with a letter to stay a valid identifier.
func ToPascalIdentifier(s string) string {
	name := strcase.ToCamel(s)
	if name == "" {
		return ClassFallback
	}
	if startsWithDigit(name) {
		name = "N" + name
	}
	return name
}

// ToCamelIdentifier converts a JSON key to a lowerCamelCase Dart identifier,
// with the same empty-input and leading-digit handling as the Pascal form.
func ToCamelIdentifier(s string) string {
	name := strcase.ToLowerCamel(s)
	if name == "" {
		return FieldFallback
	}
	if startsWithDigit(name) {
		name = "n" + name
	}
	return name
}

// ToFileName converts a name to the snake_case form used for derived
// artifact names (the output file and the part files it references).
func ToFileName(s string) string {
	snake := strcase.ToSnake(s)

	var b strings.Builder
	pendingSep := false
	for _, r := range snake {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r - 'A' + 'a')
		default:
			pendingSep = true
		}
	}

	name := b.String()
	if name == "" {
		return "model"
	}
	return name
}

// SanitizeFieldName produces a valid, non-reserved Dart field identifier
// for a JSON key. Reserved-word collisions are disambiguated with a
// deterministic suffix; the original key survives on the FieldInfo.
func SanitizeFieldName(s string) string {
	name := ToCamelIdentifier(s)
	if IsReserved(name) {
		name += "Field"
	}
	return name
}

// SanitizeClassName produces a valid, non-reserved Dart class identifier.
// The reserved check is case-insensitive so a key like "dynamic" does not
// shadow the keyword it title-cases from.
func SanitizeClassName(s string) string {
	name := ToPascalIdentifier(s)
	if IsReserved(strings.ToLower(name)) {
		name += "Type"
	}
	return name
}

// Singularize applies three suffix heuristics to derive a friendlier class
// name for array elements: "ies" -> "y", "ses" -> drop "es", and a trailing
// "s" not preceded by another "s" is dropped. No linguistic guarantee
// beyond these rules.
func Singularize(s string) string {
	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "ies") && len(s) > 3:
		return s[:len(s)-3] + "y"
	case strings.HasSuffix(lower, "ses") && len(s) > 3:
		return s[:len(s)-2]
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(s) > 1:
		return s[:len(s)-1]
	}
	return s
}

// MakeUnique returns base if it is absent from used, otherwise base with
// the smallest numeric suffix (starting at 1) that makes it absent. The
// chosen name is registered in used as a side effect; the scope of used
// determines the scope of uniqueness.
func MakeUnique(base string, used map[string]struct{}) string {
	name := base
	for i := 1; ; i++ {
		if _, taken := used[name]; !taken {
			used[name] = struct{}{}
			return name
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
