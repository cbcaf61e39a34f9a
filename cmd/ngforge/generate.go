// Package main provides the ngforge CLI generate command.
//
// Overview:
//   - Responsibility: Drive artifact generation from command-line input
//   - Key Types: Generate command handler, flag-to-request mapping
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Coded errors mapped to exit codes
//   - Performance Notes: One pipeline run per invocation
//
// Usage:
//
//	ngforge generate component user-profile
//	ngforge g service auth --variant legacy --dry-run
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ngforge/ngforge/internal/manifest"
	"github.com/ngforge/ngforge/internal/planner"
	"github.com/ngforge/ngforge/internal/projectfs"
	"github.com/ngforge/ngforge/internal/registry"
	"github.com/ngforge/ngforge/internal/scaffold"
	"github.com/ngforge/ngforge/internal/ui"
	"github.com/ngforge/ngforge/internal/variant"
)

var (
	generateVariant        string
	generateDir            string
	generatePrefix         string
	generateStyle          string
	generateSkipTests      bool
	generateBarrel         bool
	generateFlat           bool
	generateInlineStyle    bool
	generateInlineTemplate bool
	generateForce          bool
	generateDryRun         bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:     "generate <kind> <name>",
	Aliases: []string{"g"},
	Short:   "Generate an Angular artifact",
	Long: `Generate an Angular artifact from the built-in template registry.

Supported kinds:
  component, service, module, guard, directive, pipe, interceptor

The style variant (legacy or modern patterns) is resolved in order of
precedence: the --variant flag, the variant key in ngforge.yaml, then the
@angular/core version detected from package.json. Without any of the
three the command fails rather than guess.

Examples:
  ngforge generate component user-profile
  ngforge g service auth --variant legacy
  ngforge generate guard admin --dir ./src/app --dry-run
  ngforge generate component banner --inline-template --inline-style`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateVariant, "variant", "", "Style variant override (legacy, modern, hybrid)")
	generateCmd.Flags().StringVar(&generateDir, "dir", ".", "Target root directory")
	generateCmd.Flags().StringVar(&generatePrefix, "prefix", "", "Selector prefix (default from ngforge.yaml, else \"app\")")
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "Stylesheet extension: css, scss, sass, less (default from ngforge.yaml, else \"css\")")
	generateCmd.Flags().BoolVar(&generateSkipTests, "skip-tests", false, "Do not generate spec files")
	generateCmd.Flags().BoolVar(&generateBarrel, "barrel", false, "Also generate an index.ts re-export")
	generateCmd.Flags().BoolVar(&generateFlat, "flat", false, "Generate files directly in the target root, without a per-artifact directory")
	generateCmd.Flags().BoolVar(&generateInlineStyle, "inline-style", false, "Inline component styles instead of a stylesheet file")
	generateCmd.Flags().BoolVar(&generateInlineTemplate, "inline-template", false, "Inline the component template instead of an HTML file")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Overwrite existing files that carry no generation marker")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Plan and render without writing anything")
}

// runGenerate executes the generate command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Kind and name positional arguments
//
// Returns:
//   - error: Coded execution error if any
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - One pipeline run
func runGenerate(cmd *cobra.Command, args []string) error {
	kind, err := registry.ParseKind(args[0])
	if err != nil {
		return err
	}

	config, err := loadConfig(generateDir)
	if err != nil {
		return err
	}

	resolved, err := resolveVariant(generateDir, generateVariant, config)
	if err != nil {
		return err
	}

	prefix := config.Prefix
	if generatePrefix != "" {
		prefix = generatePrefix
	}
	style := config.Style
	if generateStyle != "" {
		style = generateStyle
	}

	opts := registry.Options{
		SkipTests:      generateSkipTests || config.SkipTests,
		Barrel:         generateBarrel,
		Flat:           generateFlat || config.Flat,
		InlineStyle:    generateInlineStyle,
		InlineTemplate: generateInlineTemplate,
		Force:          generateForce,
	}

	req, err := planner.NewRequest(kind, args[1], resolved, opts, prefix, style)
	if err != nil {
		return err
	}

	if generateForce && !generateDryRun {
		if !ui.Confirm("Overwrite files under %s that ngforge did not generate?", generateDir) {
			ui.Info("Aborted, nothing written")
			return nil
		}
	}

	fs := projectfs.New(generateDir)
	fs.SetVerbose(verbose)

	result, err := scaffold.NewGenerator(fs).Generate(req, generateDryRun)
	if err != nil {
		return err
	}

	if result.DryRun {
		for _, relPath := range result.Planned {
			ui.Info("Would write %s", relPath)
		}
	}
	return nil
}

// loadConfig loads ngforge.yaml from the target directory, reporting every
// diagnostic before failing.
func loadConfig(dir string) (*manifest.Config, error) {
	path := filepath.Join(dir, manifest.DefaultFileName)
	config, diags := manifest.Load(path)

	for _, diag := range diags.Items() {
		switch diag.Severity {
		case manifest.SeverityError:
			if diag.Suggestion != "" {
				ui.Error("%s: %s (%s)", diag.Path, diag.Message, diag.Suggestion)
			} else {
				ui.Error("%s: %s", diag.Path, diag.Message)
			}
		default:
			ui.Warning("%s: %s", diag.Path, diag.Message)
		}
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("configuration %s is invalid", path)
	}
	return config, nil
}

// resolveVariant applies the variant precedence chain: flag override,
// configuration value, detected framework version.
func resolveVariant(dir, flagValue string, config *manifest.Config) (variant.Variant, error) {
	override, err := variant.Parse(flagValue)
	if err != nil {
		return variant.None, err
	}
	if override == variant.None {
		// Load already validated the configuration value.
		override, _ = variant.Parse(config.Variant)
	}

	detected, err := manifest.DetectAngular(dir)
	if err != nil {
		return variant.None, err
	}
	if detected != nil {
		ui.Debug("Detected @angular/core %d.%d in %s", detected.Major, detected.Minor, dir)
	}

	resolved, err := variant.Resolve(override, detected)
	if err != nil {
		return variant.None, err
	}

	ui.Debug("Resolved style variant: %s", resolved)
	return resolved, nil
}
