// Package registry owns the mapping from artifact kind and style variant
// to template sets.
//
// Overview:
//   - Responsibility: Static template registration and lookup, template body loading
//   - Key Types: Kind, Role, FileSpec, TemplateSet
//   - Concurrency Model: Immutable registration table, safe for concurrent reads
//   - Error Semantics: UNKNOWN_TEMPLATE for unregistered pairs or missing bodies
//   - Performance Notes: Embedded file system access, no caching needed
//
// Usage:
//
//	set, err := registry.Lookup(registry.KindComponent, variant.Modern)
//	body, err := registry.Body(set.Files[0].TemplateRef)
package registry

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/ngforge/ngforge/internal/errs"
	"github.com/ngforge/ngforge/internal/variant"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Kind identifies the category of generated artifact.
type Kind string

const (
	KindComponent   Kind = "component"
	KindService     Kind = "service"
	KindModule      Kind = "module"
	KindGuard       Kind = "guard"
	KindDirective   Kind = "directive"
	KindPipe        Kind = "pipe"
	KindInterceptor Kind = "interceptor"
)

// Kinds returns every registered artifact kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindComponent, KindService, KindModule,
		KindGuard, KindDirective, KindPipe, KindInterceptor,
	}
}

// ParseKind converts a user-supplied kind argument to a Kind.
//
// Parameters:
//   - s: Kind argument, matched case-insensitively
//
// Returns:
//   - Kind: Parsed kind
//   - error: UNKNOWN_TEMPLATE for unrecognized kinds
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(1) over the fixed kind set
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(s))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", errs.Newf(errs.CodeUnknownTemplate, "unknown artifact kind %q (expected one of: component, service, module, guard, directive, pipe, interceptor)", s)
}

// Role classifies a planned output file.
type Role string

const (
	RoleImplementation Role = "implementation"
	RoleTest           Role = "test"
	RoleStyle          Role = "style"
	RoleTemplate       Role = "template"
	RoleBarrel         Role = "barrel"
	RoleWiring         Role = "wiring-update"
)

// Options carries the recognized generation flags that influence which
// files a template set contributes.
type Options struct {
	SkipTests      bool // omit spec files
	Barrel         bool // emit an index.ts re-export
	Flat           bool // no per-artifact directory
	InlineStyle    bool // omit the stylesheet file
	InlineTemplate bool // omit the markup file
	Force          bool // overwrite conflicting files
}

// FileSpec describes one output file a template set contributes.
//
// Parameters:
//   - Role: File role within the plan
//   - PathPattern: Relative path with {kebab} and {style} placeholders
//   - TemplateRef: Template body file name under templates/
//   - Cond: Optional inclusion predicate over the request options
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Immutable after registration
//
// Performance:
//   - Plain value
type FileSpec struct {
	Role        Role
	PathPattern string
	TemplateRef string
	Cond        func(Options) bool
}

// TemplateSet is the ordered file list registered for one kind/variant pair.
type TemplateSet struct {
	Kind    Kind
	Variant variant.Variant
	Files   []FileSpec
}

type registryKey struct {
	kind    Kind
	variant variant.Variant
}

// Inclusion predicates shared across the registration table.
var (
	unlessSkipTests      = func(o Options) bool { return !o.SkipTests }
	unlessInlineTemplate = func(o Options) bool { return !o.InlineTemplate }
	unlessInlineStyle    = func(o Options) bool { return !o.InlineStyle }
	ifBarrel             = func(o Options) bool { return o.Barrel }
)

// table holds every registered template set. Registration is static so
// that planning stays deterministic: same kind, variant, and options
// always plan the same files in the same order. Ordering within each set
// is the presentation order: implementation, markup, style, test, then
// wiring and barrel last.
var table = map[registryKey]TemplateSet{
	{KindComponent, variant.Legacy}: {Kind: KindComponent, Variant: variant.Legacy, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.component.ts", TemplateRef: "component_legacy.ts.tmpl"},
		{Role: RoleTemplate, PathPattern: "{kebab}.component.html", TemplateRef: "component.html.tmpl", Cond: unlessInlineTemplate},
		{Role: RoleStyle, PathPattern: "{kebab}.component.{style}", TemplateRef: "component.style.tmpl", Cond: unlessInlineStyle},
		{Role: RoleTest, PathPattern: "{kebab}.component.spec.ts", TemplateRef: "component.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleWiring, PathPattern: "{kebab}.module.ts", TemplateRef: "scam_module.ts.tmpl"},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},
	{KindComponent, variant.Modern}: {Kind: KindComponent, Variant: variant.Modern, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.component.ts", TemplateRef: "component_modern.ts.tmpl"},
		{Role: RoleTemplate, PathPattern: "{kebab}.component.html", TemplateRef: "component.html.tmpl", Cond: unlessInlineTemplate},
		{Role: RoleStyle, PathPattern: "{kebab}.component.{style}", TemplateRef: "component.style.tmpl", Cond: unlessInlineStyle},
		{Role: RoleTest, PathPattern: "{kebab}.component.spec.ts", TemplateRef: "component.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},

	{KindService, variant.Legacy}: {Kind: KindService, Variant: variant.Legacy, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.service.ts", TemplateRef: "service_legacy.ts.tmpl"},
		{Role: RoleTest, PathPattern: "{kebab}.service.spec.ts", TemplateRef: "service.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},
	{KindService, variant.Modern}: {Kind: KindService, Variant: variant.Modern, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.service.ts", TemplateRef: "service_modern.ts.tmpl"},
		{Role: RoleTest, PathPattern: "{kebab}.service.spec.ts", TemplateRef: "service.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},

	{KindModule, variant.Legacy}: {Kind: KindModule, Variant: variant.Legacy, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.module.ts", TemplateRef: "module_legacy.ts.tmpl"},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},
	{KindModule, variant.Modern}: {Kind: KindModule, Variant: variant.Modern, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.routes.ts", TemplateRef: "module_modern.ts.tmpl"},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},

	{KindGuard, variant.Legacy}: {Kind: KindGuard, Variant: variant.Legacy, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.guard.ts", TemplateRef: "guard_legacy.ts.tmpl"},
		{Role: RoleTest, PathPattern: "{kebab}.guard.spec.ts", TemplateRef: "guard.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleWiring, PathPattern: "{kebab}.guard.providers.ts", TemplateRef: "guard_providers.ts.tmpl"},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},
	{KindGuard, variant.Modern}: {Kind: KindGuard, Variant: variant.Modern, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.guard.ts", TemplateRef: "guard_modern.ts.tmpl"},
		{Role: RoleTest, PathPattern: "{kebab}.guard.spec.ts", TemplateRef: "guard.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},

	{KindDirective, variant.Legacy}: {Kind: KindDirective, Variant: variant.Legacy, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.directive.ts", TemplateRef: "directive_legacy.ts.tmpl"},
		{Role: RoleTest, PathPattern: "{kebab}.directive.spec.ts", TemplateRef: "directive.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleWiring, PathPattern: "{kebab}.module.ts", TemplateRef: "scam_module.ts.tmpl"},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},
	{KindDirective, variant.Modern}: {Kind: KindDirective, Variant: variant.Modern, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.directive.ts", TemplateRef: "directive_modern.ts.tmpl"},
		{Role: RoleTest, PathPattern: "{kebab}.directive.spec.ts", TemplateRef: "directive.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},

	{KindPipe, variant.Legacy}: {Kind: KindPipe, Variant: variant.Legacy, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.pipe.ts", TemplateRef: "pipe_legacy.ts.tmpl"},
		{Role: RoleTest, PathPattern: "{kebab}.pipe.spec.ts", TemplateRef: "pipe.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleWiring, PathPattern: "{kebab}.module.ts", TemplateRef: "scam_module.ts.tmpl"},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},
	{KindPipe, variant.Modern}: {Kind: KindPipe, Variant: variant.Modern, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.pipe.ts", TemplateRef: "pipe_modern.ts.tmpl"},
		{Role: RoleTest, PathPattern: "{kebab}.pipe.spec.ts", TemplateRef: "pipe.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},

	{KindInterceptor, variant.Legacy}: {Kind: KindInterceptor, Variant: variant.Legacy, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.interceptor.ts", TemplateRef: "interceptor_legacy.ts.tmpl"},
		{Role: RoleTest, PathPattern: "{kebab}.interceptor.spec.ts", TemplateRef: "interceptor.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleWiring, PathPattern: "{kebab}.interceptor.providers.ts", TemplateRef: "interceptor_providers.ts.tmpl"},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},
	{KindInterceptor, variant.Modern}: {Kind: KindInterceptor, Variant: variant.Modern, Files: []FileSpec{
		{Role: RoleImplementation, PathPattern: "{kebab}.interceptor.ts", TemplateRef: "interceptor_modern.ts.tmpl"},
		{Role: RoleTest, PathPattern: "{kebab}.interceptor.spec.ts", TemplateRef: "interceptor.spec.ts.tmpl", Cond: unlessSkipTests},
		{Role: RoleBarrel, PathPattern: "index.ts", TemplateRef: "barrel.ts.tmpl", Cond: ifBarrel},
	}},
}

// Lookup returns the template set registered for a kind/variant pair.
//
// Hybrid requests resolve to the modern-leaning set. A pair with no
// registered entry is a configuration error, never retried.
//
// Parameters:
//   - kind: Artifact kind
//   - v: Resolved style variant
//
// Returns:
//   - TemplateSet: Registered file set
//   - error: UNKNOWN_TEMPLATE when no entry exists
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(1) map lookup
func Lookup(kind Kind, v variant.Variant) (TemplateSet, error) {
	set, ok := table[registryKey{kind, variant.Effective(v)}]
	if !ok {
		return TemplateSet{}, errs.Newf(errs.CodeUnknownTemplate, "no template registered for %s/%s", kind, v)
	}
	return set, nil
}

// Body loads a template body from the embedded file system.
//
// Parameters:
//   - ref: Template file name under templates/
//
// Returns:
//   - string: Template body
//   - error: UNKNOWN_TEMPLATE when the body is missing
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Embedded file system access
func Body(ref string) (string, error) {
	content, err := templateFS.ReadFile("templates/" + ref)
	if err != nil {
		return "", errs.Wrapf(errs.CodeUnknownTemplate, "registry.body", err, "template body %s", ref)
	}
	return string(content), nil
}

// All returns every registered template set, ordered by kind then variant.
// Used by the doctor and list commands to audit the whole registry.
//
// Parameters:
//   - None
//
// Returns:
//   - []TemplateSet: Deterministically ordered registration table
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(n log n) over the fixed table
func All() []TemplateSet {
	sets := make([]TemplateSet, 0, len(table))
	for _, set := range table {
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool {
		if sets[i].Kind != sets[j].Kind {
			return kindOrder(sets[i].Kind) < kindOrder(sets[j].Kind)
		}
		return sets[i].Variant < sets[j].Variant
	})
	return sets
}

func kindOrder(k Kind) int {
	for i, known := range Kinds() {
		if k == known {
			return i
		}
	}
	return len(Kinds())
}

// Suffix returns the class-name suffix conventionally attached to a kind,
// e.g. "Component" for components.
func Suffix(kind Kind) string {
	switch kind {
	case KindComponent:
		return "Component"
	case KindService:
		return "Service"
	case KindModule:
		return "Module"
	case KindGuard:
		return "Guard"
	case KindDirective:
		return "Directive"
	case KindPipe:
		return "Pipe"
	case KindInterceptor:
		return "Interceptor"
	default:
		return ""
	}
}

// ImplBase returns the implementation file base name (without extension)
// for a kind under an effective variant, e.g. "user-profile.component".
// Spec and wiring templates import the implementation through this name.
func ImplBase(kind Kind, v variant.Variant, kebab string) string {
	if kind == KindModule && variant.Effective(v) == variant.Modern {
		return fmt.Sprintf("%s.routes", kebab)
	}
	return fmt.Sprintf("%s.%s", kebab, kind)
}
