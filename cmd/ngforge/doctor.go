// Package main provides the ngforge CLI doctor command.
//
// Overview:
//   - Responsibility: Diagnose project configuration and template health
//   - Key Types: Doctor command handler
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Reports every finding, fails when errors remain
//   - Performance Notes: Renders the whole registry once in memory
//
// Usage:
//
//	ngforge doctor
//	ngforge doctor --dir ./frontend
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngforge/ngforge/internal/manifest"
	"github.com/ngforge/ngforge/internal/planner"
	"github.com/ngforge/ngforge/internal/registry"
	"github.com/ngforge/ngforge/internal/renderer"
	"github.com/ngforge/ngforge/internal/ui"
	"github.com/ngforge/ngforge/internal/variant"
)

var doctorDir string

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose project configuration and template registry",
	Long: `Perform diagnostics of the target project and the built-in registry.

This command verifies:
  • ngforge.yaml syntax and field values
  • The @angular/core version detected from package.json
  • The style variant the next generate run would resolve to
  • That every registered template renders with zero unresolved placeholders

Example:
  ngforge doctor --dir ./frontend`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().StringVar(&doctorDir, "dir", ".", "Target root directory")
}

// runDoctor executes the doctor command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments
//
// Returns:
//   - error: Non-nil when any check found an error
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - Full registry render, all in memory
func runDoctor(cmd *cobra.Command, args []string) error {
	ui.Info("ngforge Project Diagnostics")
	ui.Info("%s", strings.Repeat("=", 60))
	ui.Info("")

	hasErrors := false
	hasWarnings := false

	// Check project configuration
	ui.Info("Configuration")
	configPath := filepath.Join(doctorDir, manifest.DefaultFileName)
	config, diags := manifest.Load(configPath)
	for _, diag := range diags.Items() {
		switch diag.Severity {
		case manifest.SeverityError:
			ui.Error("  [x] %s: %s", diag.Path, diag.Message)
			hasErrors = true
		default:
			ui.Warning("  [!] %s: %s", diag.Path, diag.Message)
			hasWarnings = true
		}
	}
	if config != nil && !diags.HasErrors() {
		ui.Success("  [+] %s (prefix %q, style %q)", manifest.DefaultFileName, config.Prefix, config.Style)
	}
	ui.Info("")

	// Check framework detection and variant resolution
	ui.Info("Framework Detection")
	detected, err := manifest.DetectAngular(doctorDir)
	switch {
	case err != nil:
		ui.Error("  [x] package.json: %v", err)
		hasErrors = true
	case detected == nil:
		ui.Warning("  [!] No @angular/core version detectable; generate runs need --variant or a variant key in %s", manifest.DefaultFileName)
		hasWarnings = true
	default:
		ui.Success("  [+] @angular/core %d.%d", detected.Major, detected.Minor)
	}

	override := variant.None
	if config != nil {
		override, _ = variant.Parse(config.Variant)
	}
	if resolved, err := variant.Resolve(override, detected); err == nil {
		ui.Success("  [+] Resolved style variant: %s", resolved)
	} else {
		ui.Warning("  [!] %v", err)
		hasWarnings = true
	}
	ui.Info("")

	// Check template registry health
	ui.Info("Template Registry")
	if err := checkRegistry(); err != nil {
		ui.Error("  [x] %v", err)
		hasErrors = true
	} else {
		ui.Success("  [+] All %d template sets render cleanly", len(registry.All()))
	}
	ui.Info("")

	switch {
	case hasErrors:
		return fmt.Errorf("diagnostics found errors")
	case hasWarnings:
		ui.Warning("Diagnostics completed with warnings")
	default:
		ui.Success("All diagnostics passed")
	}
	return nil
}

// checkRegistry renders every registered template set against a probe
// request, surfacing unresolved placeholders and unknown variant tags.
func checkRegistry() error {
	for _, set := range registry.All() {
		opts := registry.Options{Barrel: true}
		req, err := planner.NewRequest(set.Kind, "probe-widget", set.Variant, opts, "app", "css")
		if err != nil {
			return err
		}

		plan, err := planner.Plan(req)
		if err != nil {
			return fmt.Errorf("%s (%s): %w", set.Kind, set.Variant, err)
		}
		if _, err := renderer.RenderAll(plan, req); err != nil {
			return fmt.Errorf("%s (%s): %w", set.Kind, set.Variant, err)
		}
	}
	return nil
}
