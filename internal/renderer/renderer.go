// Package renderer produces final file contents from planned descriptors.
//
// Overview:
//   - Responsibility: Substitute name forms and variant blocks into template bodies
//   - Key Types: RenderedFile
//   - Concurrency Model: Pure rendering, no file-system access
//   - Error Semantics: UNRESOLVED_PLACEHOLDER and UNKNOWN_VARIANT_TAG, both fatal;
//     partial output is never returned
//   - Performance Notes: One template parse and execute per file
//
// Usage:
//
//	rendered, err := renderer.Render(descriptor, request)
package renderer

import (
	"errors"
	"regexp"
	"strings"
	"text/template"

	"github.com/ngforge/ngforge/internal/errs"
	"github.com/ngforge/ngforge/internal/names"
	"github.com/ngforge/ngforge/internal/planner"
	"github.com/ngforge/ngforge/internal/registry"
	"github.com/ngforge/ngforge/internal/variant"
)

// RenderedFile is the final content for one planned output file. It is
// owned by the writer once handed over and discarded after persisting.
type RenderedFile struct {
	RelPath string
	Content string
}

// missingKeyPattern matches the text/template execution error raised by
// missingkey=error so the failing placeholder can be named.
var missingKeyPattern = regexp.MustCompile(`no entry for key "([^"]+)"`)

// Render fills one descriptor's template with the request's resolved
// values. Rendering is pure: no file-system access, and equal inputs
// always produce equal output.
//
// Parameters:
//   - desc: Planned file descriptor
//   - req: Generation request
//
// Returns:
//   - RenderedFile: Final path and content
//   - error: UNKNOWN_TEMPLATE for missing or unparsable bodies,
//     UNRESOLVED_PLACEHOLDER for placeholders without values,
//     UNKNOWN_VARIANT_TAG for unregistered variant tags
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - One parse and one execute per call
func Render(desc planner.FileDescriptor, req planner.Request) (RenderedFile, error) {
	body, err := registry.Body(desc.TemplateRef)
	if err != nil {
		return RenderedFile{}, err
	}

	tmpl, err := newTemplate(desc.TemplateRef, req).Parse(body)
	if err != nil {
		return RenderedFile{}, errs.Wrapf(errs.CodeUnknownTemplate, "renderer.parse", err, "template %s does not parse", desc.TemplateRef)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, dataFor(req)); err != nil {
		return RenderedFile{}, classifyExecError(desc.TemplateRef, err)
	}

	return RenderedFile{RelPath: desc.RelPath, Content: out.String()}, nil
}

// RenderAll renders every descriptor of one plan.
//
// Parameters:
//   - plan: Ordered file descriptors
//   - req: Generation request
//
// Returns:
//   - []RenderedFile: One rendered file per descriptor, in plan order
//   - error: First rendering failure; no partial result is returned
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(n) over the plan
func RenderAll(plan []planner.FileDescriptor, req planner.Request) ([]RenderedFile, error) {
	rendered := make([]RenderedFile, 0, len(plan))
	for _, desc := range plan {
		file, err := Render(desc, req)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, file)
	}
	return rendered, nil
}

// newTemplate builds the base template with strict placeholder handling
// and the request's variant function bound.
func newTemplate(name string, req planner.Request) *template.Template {
	return template.New(name).
		Option("missingkey=error").
		Funcs(template.FuncMap{"variant": variantFunc(req)})
}

// variantFunc returns the template function resolving variant-conditional
// blocks. Valid tags are the two effective template families; anything
// else is a registry-authoring defect and fails the render.
func variantFunc(req planner.Request) func(string) (bool, error) {
	return func(tag string) (bool, error) {
		switch variant.Variant(tag) {
		case variant.Legacy, variant.Modern:
			return variant.Effective(req.Variant) == variant.Variant(tag), nil
		default:
			return false, errs.Newf(errs.CodeUnknownVariantTag, "unknown variant tag %q", tag)
		}
	}
}

// dataFor builds the substitution map for one request. Every placeholder
// a registered template may reference has a key here; templates indexing
// anything else fail with UNRESOLVED_PLACEHOLDER via missingkey=error.
func dataFor(req planner.Request) map[string]any {
	suffix := registry.Suffix(req.Kind)
	forms := req.Forms

	selector := forms.Kebab
	if req.Prefix != "" {
		selector = req.Prefix + "-" + forms.Kebab
	}

	return map[string]any{
		"Pascal":         forms.Pascal,
		"Camel":          forms.Camel,
		"Kebab":          forms.Kebab,
		"Snake":          forms.Snake,
		"Class":          forms.Pascal + suffix,
		"Fn":             forms.Camel + suffix,
		"Const":          strings.ToUpper(forms.Snake) + "_" + strings.ToUpper(string(req.Kind)),
		"File":           registry.ImplBase(req.Kind, req.Variant, forms.Kebab),
		"Selector":       selector,
		"AttrSelector":   names.AttrCamel(req.Prefix, forms),
		"Prefix":         req.Prefix,
		"StyleExt":       req.StyleExt,
		"InlineTemplate": req.Options.InlineTemplate,
		"InlineStyle":    req.Options.InlineStyle,
	}
}

// classifyExecError maps a template execution failure to its coded error.
func classifyExecError(ref string, err error) error {
	var coded *errs.E
	if errors.As(err, &coded) {
		return errs.Wrapf(coded.Code, "renderer.render", err, "template %s", ref)
	}

	if match := missingKeyPattern.FindStringSubmatch(err.Error()); match != nil {
		return errs.Newf(errs.CodeUnresolvedPlaceholder, "template %s references placeholder %q with no resolved value", ref, match[1])
	}

	if strings.Contains(err.Error(), string(errs.CodeUnknownVariantTag)) {
		return errs.Wrapf(errs.CodeUnknownVariantTag, "renderer.render", err, "template %s", ref)
	}

	return errs.Wrapf(errs.CodeUnresolvedPlaceholder, "renderer.render", err, "template %s", ref)
}
