package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for confreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confreport",
		Short: "Report the resolvable configurations of a build project",
		Long: `confreport reads a configuration snapshot exported by a build and prints
every resolvable configuration with its description, capabilities, attributes
and extended configurations.

Legacy configurations (resolvable and consumable) are hidden unless --all is
given, in which case each one is also reported as a deprecation warning.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log records to stderr as JSON")

	// Add subcommands
	cmd.AddCommand(NewResolvableCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
