// Package planner expands a generation request into an ordered sequence
// of output file descriptors.
//
// Overview:
//   - Responsibility: Deterministic planning of output paths and roles
//   - Key Types: Request, FileDescriptor
//   - Concurrency Model: Pure functions over immutable requests
//   - Error Semantics: PLAN_COLLISION when two descriptors share a path
//   - Performance Notes: O(n) over the template set, no I/O
//
// Usage:
//
//	req, err := planner.NewRequest(registry.KindGuard, "admin", variant.Legacy, opts, "app", "css")
//	plan, err := planner.Plan(req)
package planner

import (
	"path"
	"strings"

	"github.com/ngforge/ngforge/internal/errs"
	"github.com/ngforge/ngforge/internal/names"
	"github.com/ngforge/ngforge/internal/registry"
	"github.com/ngforge/ngforge/internal/variant"
)

// Request carries everything one generation needs. It is created once at
// invocation time and never mutated afterwards.
//
// Parameters:
//   - Kind: Artifact kind to generate
//   - RawName: Name as the user supplied it
//   - Forms: Casing forms derived from RawName
//   - Variant: Resolved style variant
//   - Options: Recognized generation flags
//   - Prefix: Selector prefix for components and directives
//   - StyleExt: Stylesheet extension for component styles
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Immutable after creation
//
// Performance:
//   - Plain value, copied freely
type Request struct {
	Kind     registry.Kind
	RawName  string
	Forms    names.Forms
	Variant  variant.Variant
	Options  registry.Options
	Prefix   string
	StyleExt string
}

// NewRequest builds a validated generation request.
//
// Parameters:
//   - kind: Artifact kind
//   - rawName: User-supplied artifact name
//   - v: Resolved style variant
//   - opts: Generation flags
//   - prefix: Selector prefix
//   - styleExt: Stylesheet extension
//
// Returns:
//   - Request: Immutable request
//   - error: INVALID_NAME when the name does not normalize
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Single normalization pass
func NewRequest(kind registry.Kind, rawName string, v variant.Variant, opts registry.Options, prefix, styleExt string) (Request, error) {
	forms, err := names.Normalize(rawName)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Kind:     kind,
		RawName:  rawName,
		Forms:    forms,
		Variant:  v,
		Options:  opts,
		Prefix:   prefix,
		StyleExt: styleExt,
	}, nil
}

// FileDescriptor describes one planned output file.
//
// Parameters:
//   - RelPath: Output path relative to the target root, slash-separated
//   - Role: File role within the plan
//   - TemplateRef: Template body backing this file
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Immutable after planning
//
// Performance:
//   - Plain value
type FileDescriptor struct {
	RelPath     string
	Role        registry.Role
	TemplateRef string
}

// Plan expands a request into its ordered file descriptors.
//
// Ordering follows the registry's presentation convention: implementation
// first, markup and style next, test after, wiring and barrel last. The
// order is display-only; no descriptor depends on another's content. The
// same request always plans the same descriptors.
//
// Parameters:
//   - req: Generation request
//
// Returns:
//   - []FileDescriptor: Ordered plan
//   - error: UNKNOWN_TEMPLATE for unregistered pairs, PLAN_COLLISION for
//     duplicate output paths within one plan
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(n) over the template set
func Plan(req Request) ([]FileDescriptor, error) {
	set, err := registry.Lookup(req.Kind, req.Variant)
	if err != nil {
		return nil, err
	}

	descriptors := make([]FileDescriptor, 0, len(set.Files))
	seen := make(map[string]registry.Role, len(set.Files))

	for _, file := range set.Files {
		if file.Cond != nil && !file.Cond(req.Options) {
			continue
		}

		relPath := expandPattern(file.PathPattern, req)
		if prior, dup := seen[relPath]; dup {
			return nil, errs.Newf(errs.CodePlanCollision, "descriptors %s and %s both resolve to %s", prior, file.Role, relPath)
		}
		seen[relPath] = file.Role

		descriptors = append(descriptors, FileDescriptor{
			RelPath:     relPath,
			Role:        file.Role,
			TemplateRef: file.TemplateRef,
		})
	}

	return descriptors, nil
}

// expandPattern resolves a registry path pattern against a request.
//
// Parameters:
//   - pattern: Registry path pattern with {kebab} and {style} placeholders
//   - req: Generation request
//
// Returns:
//   - string: Slash-separated relative path
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(n) string replacement
func expandPattern(pattern string, req Request) string {
	expanded := strings.ReplaceAll(pattern, "{kebab}", req.Forms.Kebab)
	expanded = strings.ReplaceAll(expanded, "{style}", req.StyleExt)

	if req.Options.Flat {
		return expanded
	}
	return path.Join(req.Forms.Kebab, expanded)
}
