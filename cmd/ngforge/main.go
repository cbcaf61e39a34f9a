// Package main provides the ngforge CLI tool entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Exit codes and user-friendly error messages
//   - Performance Notes: Fast startup, minimal memory footprint
//
// Usage:
//
//	ngforge [command] [flags]
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ngforge/ngforge/internal/errs"
	"github.com/ngforge/ngforge/internal/ui"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
)

// rootCmd represents the base command when called without any subcommands.
//
// Parameters:
//   - None (global flags are parsed automatically)
//
// Returns:
//   - None (executes subcommands)
//
// Concurrency:
//   - Single-threaded CLI execution
//
// Performance:
//   - Fast startup, minimal initialization
var rootCmd = &cobra.Command{
	Use:   "ngforge",
	Short: "Angular artifact scaffolding CLI",
	Long: `ngforge scaffolds Angular artifacts from version-aware templates.

This tool provides commands for:
- Generating components, services, modules, guards, directives, pipes,
  and interceptors
- Selecting legacy (NgModule-era) or modern (standalone-era) patterns,
  automatically from the project's Angular version or by explicit override
- Inspecting the available template registry
- Diagnosing a project's configuration and detected framework version

All commands respect an optional ngforge.yaml configuration file in the
target directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetNonInteractive(nonInteractive)
		ui.SetJSONOutput(jsonOutput)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
//
// Parameters:
//   - None (uses global variables)
//
// Returns:
//   - None (exits with appropriate code)
//
// Concurrency:
//   - Single-threaded execution
//
// Performance:
//   - Fast command resolution and execution
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("Command failed: %v", err)
		os.Exit(errs.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	// Add version flags (--version and -v)
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}

// main is the entry point for the ngforge CLI tool.
func main() {
	Execute()
}
