// Package main provides the ngforge CLI list command.
//
// Overview:
//   - Responsibility: Display the registered template sets
//   - Key Types: List command handler
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: No errors (registry display only)
//   - Performance Notes: In-memory registry walk
//
// Usage:
//
//	ngforge list
//	ngforge list component
package main

import (
	"github.com/spf13/cobra"

	"github.com/ngforge/ngforge/internal/registry"
	"github.com/ngforge/ngforge/internal/ui"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List registered artifact kinds and their file sets",
	Long: `List every registered artifact kind with the files each style variant
produces. Conditional files note the flag controlling them.

With a kind argument only that kind is shown.

Examples:
  ngforge list
  ngforge list guard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList executes the list command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Optional kind argument
//
// Returns:
//   - error: UNKNOWN_TEMPLATE for an unrecognized kind argument
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - O(n) over the registry
func runList(cmd *cobra.Command, args []string) error {
	filter := registry.Kind("")
	if len(args) == 1 {
		kind, err := registry.ParseKind(args[0])
		if err != nil {
			return err
		}
		filter = kind
	}

	for _, set := range registry.All() {
		if filter != "" && set.Kind != filter {
			continue
		}

		ui.Info("%s (%s)", set.Kind, set.Variant)
		for _, file := range set.Files {
			ui.Info("  %-16s %s", file.Role, file.PathPattern)
		}
		ui.Info("")
	}
	return nil
}
