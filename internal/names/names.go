// Package names provides artifact name normalization for ngforge.
//
// Overview:
//   - Responsibility: Derive casing forms (kebab, Pascal, camel, snake) from raw input
//   - Key Types: Forms value carrying every derived casing
//   - Concurrency Model: Pure functions, safe for concurrent use
//   - Error Semantics: Coded INVALID_NAME errors for unusable input
//   - Performance Notes: Single-pass tokenization, no I/O
//
// Usage:
//
//	forms, err := names.Normalize("user-profile")
//	forms.Pascal // "UserProfile"
package names

import (
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/ngforge/ngforge/internal/errs"
)

// Forms holds every casing form derived from one raw artifact name.
// All forms come from the same token sequence, so derivation is
// deterministic: equal input always yields equal forms.
//
// Parameters:
//   - Kebab: lower-case dash-separated form used in file names and selectors
//   - Pascal: upper camel form used in class names
//   - Camel: lower camel form used in variable and function names
//   - Snake: lower-case underscore-separated form
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Immutable after construction
//
// Performance:
//   - Plain strings, no lazy computation
type Forms struct {
	Kebab  string
	Pascal string
	Camel  string
	Snake  string
}

// Normalize derives all casing forms from a raw artifact name.
//
// The raw name may use kebab-case, snake_case, camelCase, PascalCase,
// spaces, dots, or slashes as word boundaries. Characters outside
// [A-Za-z0-9] act only as separators and never survive into the output.
//
// Parameters:
//   - raw: User-supplied artifact name
//
// Returns:
//   - Forms: Derived casing forms
//   - error: INVALID_NAME when no identifier-safe form can be derived
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(n) tokenization over the input
func Normalize(raw string) (Forms, error) {
	snake := tokenize(raw)
	if snake == "" {
		return Forms{}, errs.Newf(errs.CodeInvalidName, "name %q does not normalize to an identifier-safe form", raw)
	}
	if snake[0] >= '0' && snake[0] <= '9' {
		return Forms{}, errs.Newf(errs.CodeInvalidName, "name %q must not start with a digit", raw)
	}

	return Forms{
		Kebab:  inflect.Dasherize(snake),
		Pascal: inflect.Camelize(snake),
		Camel:  inflect.CamelizeDownFirst(snake),
		Snake:  snake,
	}, nil
}

// AttrCamel returns the lower-camel attribute selector form of a prefixed
// name, e.g. prefix "app" with name forms for "highlight" yields
// "appHighlight". An empty or non-normalizable prefix falls back to the
// bare camel form.
//
// Parameters:
//   - prefix: Selector prefix, may be empty
//   - f: Casing forms of the artifact name
//
// Returns:
//   - string: Attribute selector in lower-camel form
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(n) over prefix and name
func AttrCamel(prefix string, f Forms) string {
	prefixSnake := tokenize(prefix)
	if prefixSnake == "" {
		return f.Camel
	}
	return inflect.CamelizeDownFirst(prefixSnake + "_" + f.Snake)
}

// tokenize reduces a raw name to its canonical snake form.
//
// Parameters:
//   - raw: User-supplied artifact name
//
// Returns:
//   - string: Snake-case token sequence, empty when no tokens survive
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(n) over the input
func tokenize(raw string) string {
	// Map every non-alphanumeric rune to a word boundary first, then let
	// inflect split the remaining camel humps.
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return ' '
		}
	}, raw)

	var words []string
	for _, field := range strings.Fields(cleaned) {
		for _, word := range strings.Split(inflect.Underscore(field), "_") {
			if word != "" {
				words = append(words, strings.ToLower(word))
			}
		}
	}

	return strings.Join(words, "_")
}
