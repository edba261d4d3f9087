// Package main provides the sango CLI tool entry point.
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
//	sango [command] [flags]
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sango-kit/sango/internal/ui"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
	projectRoot    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sango",
	Short: "Module scaffolding for sango projects",
	Long: `Sango scaffolds feature modules for Go HTTP services backed by MongoDB.

This tool provides commands for:
- Generating feature modules (model, schemas, repository, use case, router)
- Keeping the module manifest in sync so routers mount automatically
- Listing the modules of an existing project

All commands read the sango.yaml configuration file at the project root.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetNonInteractive(nonInteractive)
		ui.SetJSONOutput(jsonOutput)
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("Command failed: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", ".", "Project root directory")

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}

// main is the entry point for the sango CLI tool.
func main() {
	Execute()
}
