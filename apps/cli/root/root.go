package root

import (
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the timetable CLI. Subcommands (migrate, entries, auth) are attached here.
var rootCmd = &cobra.Command{
	Use:           "timetable",
	Short:         "Timetable operator CLI",
	Long:          "Operator utilities for the timetable service (schema migration, bulk entry import, dev tokens).",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the mutable root command for wiring from subpackages.
func Root() *cobra.Command {
	return rootCmd
}
