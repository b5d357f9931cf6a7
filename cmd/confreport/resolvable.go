package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/confreport/internal/config"
	"github.com/nao1215/confreport/internal/log"
	"github.com/nao1215/confreport/internal/model"
	"github.com/nao1215/confreport/internal/pipeline"
	"github.com/nao1215/confreport/internal/report"
	"github.com/spf13/cobra"
)

// NewResolvableCmd creates the resolvable command.
func NewResolvableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolvable [snapshot...]",
		Short: "Report the resolvable configurations of a project",
		Long: `Resolvable prints every resolvable configuration of the project described
by a snapshot file, sorted by name. Each configuration lists its description,
its capabilities (or the project's default capability), its attributes and
the configurations it extends.

Legacy configurations, which are both resolvable and consumable, are only
reported with --all. Each of them is marked with (l) and logged as a
deprecation warning on stderr.

Snapshots are YAML or JSON files; "-" reads one from standard input.
Several snapshots are reported in argument order.

Examples:
  # Report the resolvable configurations of one project
  confreport resolvable build/confreport/snapshot.yaml

  # Include legacy configurations and transitively extended ones
  confreport resolvable --all --recursive snapshot.yaml

  # Report a single configuration
  confreport resolvable -n runtimeClasspath snapshot.yaml

  # Write a Markdown report for several projects
  confreport resolvable --markdown -o report.md app.yaml lib.yaml

  # Read the snapshot from a pipe
  ./gradlew -q exportSnapshot | confreport resolvable -`,
		Args: cobra.ArbitraryArgs,
		RunE: runResolvableCmd,
	}

	// Report content flags
	cmd.Flags().BoolP("all", "a", false,
		"Also report legacy configurations (resolvable and consumable)")
	cmd.Flags().StringP("configuration", "n", "",
		"Report only the configuration with this name")
	cmd.Flags().BoolP("recursive", "r", false,
		"List transitively extended configurations")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of snapshots processed concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .confreport in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runResolvableCmd executes the resolvable command.
func runResolvableCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd, cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runResolvable(ctx, cmd, cfg, flagOverrides(cmd), logger)
}

// getGlobalFlag retrieves a boolean flag from the command or its parent.
func getGlobalFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		value, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return value
}

// newLogger creates the stderr logger selected by the global flags.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	if getGlobalFlag(cmd, "log-json") {
		return log.NewJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewLogger(cmd.ErrOrStderr(), verbose)
}

// flagOverrides records which report flags were given on the command line.
func flagOverrides(cmd *cobra.Command) config.Overrides {
	return config.Overrides{
		All:           cmd.Flags().Changed("all"),
		Recursive:     cmd.Flags().Changed("recursive"),
		Configuration: cmd.Flags().Changed("configuration"),
	}
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.IncludeAll, err = cmd.Flags().GetBool("all")
	if err != nil {
		return nil, err
	}

	cfg.Configuration, err = cmd.Flags().GetString("configuration")
	if err != nil {
		return nil, err
	}

	cfg.Recursive, err = cmd.Flags().GetBool("recursive")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly given config file must exist; otherwise a missing file
	// just means no per-project settings.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		cfg.Projects, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getGlobalFlag(cmd, "verbose")
	cfg.Snapshots = args

	return cfg, nil
}

// runResolvable builds the reports of all snapshots and writes them in
// argument order. Snapshots that fail to load are skipped; their errors are
// returned together once every other report was written.
func runResolvable(ctx context.Context, cmd *cobra.Command, cfg *config.Config, overrides config.Overrides, logger *slog.Logger) (err error) {
	logger.Debug("starting report",
		"snapshots", cfg.Snapshots,
		"batchSize", cfg.BatchSize,
		"configFile", cfg.ConfigFilePath,
	)

	resolve := func(projectPath string) model.Options {
		return cfg.ProjectOptions(projectPath, overrides).Options()
	}
	stdin := cmd.InOrStdin()

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(logger, resolve, pipeline.WithStdin(stdin))
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	jobs, err := bp.ProcessBatch(ctx, cfg.Snapshots)
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput(cfg.ReportFile, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	writer := report.NewWriter(reportFormat(cfg), output, getVersion())

	var errs []error
	for _, job := range jobs {
		if job.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", job.Source, job.Err))
			continue
		}

		log.Dispatch(logger.With("source", job.Source), job.Report.Diagnostics)

		if _, err := writer.Write(job.Report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return errors.Join(errs...)
}

// reportFormat returns the report format selected by the flags.
func reportFormat(cfg *config.Config) report.Format {
	switch {
	case cfg.JSONReport:
		return report.FormatJSON
	case cfg.MarkdownReport:
		return report.FormatMarkdown
	default:
		return report.FormatText
	}
}

// openOutput returns the report destination. With an empty path the
// fallback writer is used and closing is a no-op.
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}

	if err := createParentDir(path); err != nil {
		return nil, nil, err
	}

	// Create/overwrite the output file with owner-only permissions (0600)
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
