package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/confreport/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/confreport.yaml
var configTemplate embed.FS

// templatePath is the embedded path of the config template.
const templatePath = "templates/confreport.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a confreport configuration file",
		Long: `Init writes a commented .confreport configuration file.

The file holds default report settings (--all, --recursive, --configuration)
and per-project overrides keyed by project path. Flags given on the command
line always take precedence.

Examples:
  # Create .confreport in the current directory
  confreport init

  # Create the config file at a specific path
  confreport init -o ~/.config/confreport/config.yaml

  # Overwrite an existing file
  confreport init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	if err := createParentDir(outputPath); err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to set per-project report options such as:")
	fmt.Fprintln(out, "  - including legacy configurations (all)")
	fmt.Fprintln(out, "  - listing transitively extended configurations (recursive)")

	return nil
}

// createParentDir creates the directory holding path if needed.
func createParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
