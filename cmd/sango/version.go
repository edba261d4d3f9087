package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sango-kit/sango/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show sango CLI version information",
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Version = version.GetVersionString()
	rootCmd.SetVersionTemplate(`{{.Version}}
`)
}

// runVersion executes the version command.
func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(version.GetFullVersionInfo())
}
