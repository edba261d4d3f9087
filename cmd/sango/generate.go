// Package main provides the sango CLI command implementations.
//
// Overview:
//   - Responsibility: CLI command execution and orchestration
//   - Key Types: Command handlers, flag processors
//   - Concurrency Model: Sequential command execution
//   - Error Semantics: User-friendly error messages, non-zero exit on failure
//   - Performance Notes: Fast command resolution, minimal initialization
//
// Usage:
//
//	sango generate module <name>
//	sango generate module <name> --dry-run
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sango-kit/sango/internal/configschema"
	"github.com/sango-kit/sango/internal/generator"
	"github.com/sango-kit/sango/internal/projectfs"
	"github.com/sango-kit/sango/internal/ui"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate project code",
	Long: `Generate code for a sango project.

Examples:
  sango generate module products
  sango generate module order_items --dry-run
  sango generate module products --force`,
}

// generateModuleCmd represents the generate module command.
var generateModuleCmd = &cobra.Command{
	Use:   "module <name>",
	Short: "Generate a new feature module",
	Long: `Generate the fixed file set of a feature module.

This command creates, under the modules directory:
- model.go: document model for the feature's collection
- schemas.go: request/response payloads
- repository.go: data access
- use_case.go: business logic
- router.go: HTTP endpoints
- doc.go: package documentation

The module name must be snake_case: a lowercase letter followed by
lowercase letters, digits, or underscores. After writing, the module
manifest is rewritten so the new router mounts automatically.

Examples:
  sango generate module products
  sango generate module order_items --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerateModule,
}

var (
	dryRun        bool
	forceGenerate bool
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generateModuleCmd)

	generateModuleCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")
	generateModuleCmd.Flags().BoolVar(&forceGenerate, "force", false, "Overwrite files that already exist")
}

// loadGenerator builds a generator for the configured project root.
func loadGenerator() (*generator.Generator, error) {
	cfg, err := configschema.Load(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project configuration: %w", err)
	}

	fs := projectfs.New(projectRoot)
	fs.SetVerbose(verbose)
	return generator.New(fs, cfg), nil
}

// runGenerateModule executes the generate module command.
func runGenerateModule(cmd *cobra.Command, args []string) error {
	feature := args[0]

	gen, err := loadGenerator()
	if err != nil {
		return err
	}

	plan, err := gen.Plan(feature)
	if err != nil {
		return fmt.Errorf("cannot generate module %q: %w", feature, err)
	}

	if dryRun {
		ui.Info("Would generate module %q in %s:", plan.Feature.Snake, plan.Dir)
		for _, entry := range plan.Entries {
			if entry.Exists && !forceGenerate {
				ui.Item("%s (exists, would skip)", entry.Path)
			} else if entry.Exists {
				ui.Item("%s (exists, would overwrite)", entry.Path)
			} else {
				ui.Item("%s", entry.Path)
			}
		}
		ui.Info("Would rewrite %s", generator.ManifestFileName)
		return nil
	}

	conflicts := 0
	for _, entry := range plan.Entries {
		if entry.Exists {
			conflicts++
		}
	}

	if conflicts == len(plan.Entries) && !forceGenerate {
		return fmt.Errorf("module %q already exists in %s (use --force to overwrite)", plan.Feature.Snake, plan.Dir)
	}

	if conflicts > 0 && !forceGenerate {
		ui.Warning("%d of %d files already exist and will be skipped", conflicts, len(plan.Entries))
		if !ui.Confirm("Continue and write the remaining files?") {
			ui.Info("Aborted")
			return nil
		}
	}

	result, err := gen.Apply(plan, forceGenerate)
	if err != nil {
		for _, path := range result.Written {
			ui.Item("wrote %s", path)
		}
		return err
	}

	ui.Step(1, 2, "Generated module files")
	for _, path := range result.Written {
		ui.Item("wrote %s", path)
	}
	for _, path := range result.Conflicts {
		ui.Item("skipped %s (already exists)", path)
	}

	manifest, err := gen.SyncManifest()
	if err != nil {
		return fmt.Errorf("module files were written but the manifest update failed: %w", err)
	}
	ui.Step(2, 2, "Updated %s", manifest)

	ui.Success("Module %q is ready under %s", plan.Feature.Snake, plan.Dir)
	return nil
}
