// Package cli provides the command-line interface for the sumgen tool.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "sumgen",
		Short: "Sum type code generation for Go",
	}

	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd.Execute()
}
