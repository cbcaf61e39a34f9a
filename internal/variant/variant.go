// Package variant provides style-variant resolution for ngforge.
//
// Overview:
//   - Responsibility: Map a detected or declared Angular version to a style variant
//   - Key Types: Variant enumeration, Detected version pair
//   - Concurrency Model: Pure functions, safe for concurrent use
//   - Error Semantics: Coded INDETERMINATE_VARIANT errors when no input is available
//   - Performance Notes: Constant-time resolution, no I/O
//
// Usage:
//
//	v, err := variant.Resolve(variant.None, &variant.Detected{Major: 17, Minor: 1})
//	v // variant.Modern
package variant

import (
	"github.com/ngforge/ngforge/internal/errs"
)

// Variant identifies the pattern family templates are selected from.
type Variant string

const (
	// None is the zero value used when no explicit override was given.
	None Variant = ""

	// Legacy selects NgModule-era patterns: module declarations,
	// constructor injection, class-based guards and interceptors.
	Legacy Variant = "legacy"

	// Modern selects standalone-era patterns: standalone components,
	// inject(), functional guards and interceptors, signal inputs.
	Modern Variant = "modern"

	// Hybrid marks versions where both pattern families are legal.
	// Template selection prefers the modern-leaning set.
	Hybrid Variant = "hybrid"
)

// Detected carries the framework version read from the project manifest.
type Detected struct {
	Major int
	Minor int
}

// Parse converts a user-supplied variant flag value to a Variant.
//
// Parameters:
//   - s: Flag value; empty means no override
//
// Returns:
//   - Variant: Parsed variant, None for empty input
//   - error: INDETERMINATE_VARIANT for unrecognized values
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(1) comparison
func Parse(s string) (Variant, error) {
	switch Variant(s) {
	case None, Legacy, Modern, Hybrid:
		return Variant(s), nil
	default:
		return None, errs.Newf(errs.CodeIndeterminateVariant, "unrecognized variant %q (expected legacy, modern, or hybrid)", s)
	}
}

// Resolve decides the style variant for one generation request.
//
// Policy: an explicit override always wins. Otherwise the detected
// version decides: below 16 is Legacy, 16 up to but excluding 17.1 is
// Hybrid, 17.1 and above is Modern. With neither input the caller must
// surface the failure to the user rather than guess.
//
// Parameters:
//   - override: Explicit variant override, None when absent
//   - detected: Framework version from the project manifest, nil when absent
//
// Returns:
//   - Variant: Resolved variant
//   - error: INDETERMINATE_VARIANT when neither input is available
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(1), no side effects, no I/O
func Resolve(override Variant, detected *Detected) (Variant, error) {
	if override != None {
		return override, nil
	}
	if detected == nil {
		return None, errs.New(errs.CodeIndeterminateVariant,
			"no variant override and no detectable framework version; pass --variant or add @angular/core to package.json")
	}

	switch {
	case detected.Major < 16:
		return Legacy, nil
	case detected.Major == 16, detected.Major == 17 && detected.Minor < 1:
		return Hybrid, nil
	default:
		return Modern, nil
	}
}

// Effective collapses a variant to the template family it renders with.
// Hybrid prefers the modern-leaning templates, so only Legacy and Modern
// reach the registry and renderer.
//
// Parameters:
//   - v: Resolved variant
//
// Returns:
//   - Variant: Legacy or Modern
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(1)
func Effective(v Variant) Variant {
	if v == Legacy {
		return Legacy
	}
	return Modern
}
