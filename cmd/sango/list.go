package main

import (
	"github.com/spf13/cobra"

	"github.com/sango-kit/sango/internal/ui"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List project resources",
}

// listModulesCmd represents the list modules command.
var listModulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List feature modules in the project",
	Long: `List the feature modules of the project, in lexical order.

A directory under the modules root counts as a module when it contains
a router.go file.`,
	Args: cobra.NoArgs,
	RunE: runListModules,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listModulesCmd)
}

// runListModules executes the list modules command.
func runListModules(cmd *cobra.Command, args []string) error {
	gen, err := loadGenerator()
	if err != nil {
		return err
	}

	modules, err := gen.ListModules()
	if err != nil {
		return err
	}

	if len(modules) == 0 {
		ui.Info("No modules found")
		return nil
	}

	ui.Info("Modules (%d):", len(modules))
	for _, name := range modules {
		ui.Item("%s", name)
	}
	return nil
}
