// Package scaffold orchestrates artifact generation end to end.
//
// Overview:
//   - Responsibility: Drive plan, render, and write for one generation request
//   - Key Types: Generator pipeline driver, Result summary
//   - Concurrency Model: Sequential pipeline, one request at a time
//   - Error Semantics: Coded errors surfaced from each stage; the write stage
//     rolls back so a failed run leaves the project untouched
//   - Performance Notes: Whole batch held in memory between stages
//
// Usage:
//
//	gen := scaffold.NewGenerator(fs)
//	result, err := gen.Generate(req, false)
package scaffold

import (
	"github.com/ngforge/ngforge/internal/planner"
	"github.com/ngforge/ngforge/internal/projectfs"
	"github.com/ngforge/ngforge/internal/renderer"
	"github.com/ngforge/ngforge/internal/ui"
	"github.com/ngforge/ngforge/internal/writer"
)

// Generator drives the generation pipeline against one project root.
//
// Parameters:
//   - fs: Project file system receiving generated files
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - One request at a time
//
// Performance:
//   - Stateless between requests
type Generator struct {
	fs *projectfs.ProjectFS
}

// Result summarizes one completed generation run.
//
// Parameters:
//   - Planned: Relative paths the plan selected, in plan order
//   - Written: Relative paths persisted to disk; empty for dry runs
//   - DryRun: Whether the run stopped before touching disk
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Immutable after construction
//
// Performance:
//   - Plain slices, no lazy computation
type Result struct {
	Planned []string
	Written []string
	DryRun  bool
}

// NewGenerator creates a generator writing into the given file system.
func NewGenerator(fs *projectfs.ProjectFS) *Generator {
	return &Generator{fs: fs}
}

// Generate runs the full pipeline for one request: plan the file set,
// render every descriptor, and persist the batch. With dryRun set the
// pipeline still plans and renders, validating the request completely,
// but stops before the write stage.
//
// Parameters:
//   - req: Resolved generation request
//   - dryRun: Stop before writing
//
// Returns:
//   - Result: Planned and written paths
//   - error: First coded failure from any stage
//
// Concurrency:
//   - One request at a time
//
// Performance:
//   - O(n) over the planned file set
func (g *Generator) Generate(req planner.Request, dryRun bool) (Result, error) {
	ui.Step(1, 3, "Planning %s %q (%s variant)", req.Kind, req.Forms.Kebab, req.Variant)
	plan, err := planner.Plan(req)
	if err != nil {
		return Result{}, err
	}

	planned := make([]string, len(plan))
	for i, desc := range plan {
		planned[i] = desc.RelPath
		ui.Debug("Planned %s (%s)", desc.RelPath, desc.Role)
	}

	ui.Step(2, 3, "Rendering %d files", len(plan))
	rendered, err := renderer.RenderAll(plan, req)
	if err != nil {
		return Result{}, err
	}

	if dryRun {
		ui.Info("Dry run: %d files validated, nothing written", len(rendered))
		return Result{Planned: planned, DryRun: true}, nil
	}

	ui.Step(3, 3, "Writing %d files", len(rendered))
	written, err := writer.New(g.fs, req.Options.Force).WriteBatch(rendered)
	if err != nil {
		return Result{}, err
	}

	ui.Success("Generated %s %q: %d files", req.Kind, req.Forms.Kebab, len(written))
	return Result{Planned: planned, Written: written}, nil
}
