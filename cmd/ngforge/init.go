// Package main provides the ngforge CLI init command.
//
// Overview:
//   - Responsibility: Write a starter ngforge.yaml into a project
//   - Key Types: Init command handler
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Coded errors mapped to exit codes
//   - Performance Notes: Single file write
//
// Usage:
//
//	ngforge init
//	ngforge init --dir ./frontend
package main

import (
	"github.com/spf13/cobra"

	"github.com/ngforge/ngforge/internal/manifest"
	"github.com/ngforge/ngforge/internal/projectfs"
	"github.com/ngforge/ngforge/internal/ui"
)

var initDir string

// starterConfig is the commented configuration written by init. Every key
// is optional; the file documents the defaults rather than changing them.
const starterConfig = `# ngforge project configuration.
# Every key is optional; the values below are the defaults.

config_version: "1"

# Style variant override: legacy, modern, or hybrid.
# Leave empty to resolve from the @angular/core version in package.json.
variant: ""

# Selector prefix for components and directives.
prefix: "app"

# Stylesheet extension: css, scss, sass, or less.
style: "css"

# Generate artifacts directly in the target root, without a
# per-artifact directory.
flat: false

# Omit spec files by default.
skip_tests: false
`

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter ngforge.yaml",
	Long: `Write a commented starter ngforge.yaml into the target directory.

An existing configuration file is never overwritten.

Example:
  ngforge init --dir ./frontend`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initDir, "dir", ".", "Target root directory")
}

// runInit executes the init command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments
//
// Returns:
//   - error: Coded execution error if any
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - Single file write
func runInit(cmd *cobra.Command, args []string) error {
	fs := projectfs.New(initDir)
	fs.SetVerbose(verbose)

	written, err := fs.WriteFileIfNotExists(manifest.DefaultFileName, starterConfig, 0644)
	if err != nil {
		return err
	}

	if !written {
		ui.Info("%s already exists, leaving it untouched", manifest.DefaultFileName)
		return nil
	}

	ui.Success("Created %s", manifest.DefaultFileName)
	return nil
}
