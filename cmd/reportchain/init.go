package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/reportchain/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/reportchain.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new reportchain configuration file",
		Long: `Initialize creates a new .reportchain configuration file in the current directory.

The generated file includes:
- A default preset used by 'reportchain generate'
- Example presets for sales and user reports
- The list of available reports and decorators

Examples:
  # Create .reportchain in current directory
  reportchain init

  # Create config file at a specific path
  reportchain init -o presets.yaml

  # Force overwrite existing file
  reportchain init -f`,
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

	content, err := configTemplate.ReadFile("templates/reportchain.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to define presets such as:")
	fmt.Fprintln(out, "  - The default chain used by 'reportchain generate'")
	fmt.Fprintln(out, "  - Named chains for 'reportchain generate --preset <name>'")
	fmt.Fprintln(out, "  - Decorator order for each report")

	return nil
}
