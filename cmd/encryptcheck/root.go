package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "encryptcheck",
		Short:         "Validate and inspect encrypt rule configurations",
		Long:          "Offline checks for encrypt rule configuration files: strict YAML parsing, structural validation and a plain-text summary of the declared bindings.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newSummaryCmd())
	return rootCmd
}
