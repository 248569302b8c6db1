package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/nao1215/reportchain/internal/config"
	"github.com/nao1215/reportchain/internal/history"
	"github.com/nao1215/reportchain/internal/model"
	"github.com/nao1215/reportchain/internal/output"
	"github.com/nao1215/reportchain/internal/pipeline"
	"github.com/nao1215/reportchain/internal/report"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a report from a decorator chain",
		Long: `Generate builds a base report, wraps it in decorators and prints the result.

The chain comes from exactly one of:
- --report with optional --decorate flags (applied in the order given)
- --preset, naming a preset in the configuration file
- --all, rendering every preset in the configuration file concurrently
- the configuration file's default preset
- the built-in chain sales -> date-filter -> sorting -> pdf

Reports: sales, user
Decorators: date-filter, sorting, csv, pdf

Examples:
  # User report exported as CSV
  reportchain generate --report user --decorate csv

  # Order matters: this differs from --decorate date-filter,sorting
  reportchain generate -r sales -d sorting -d date-filter

  # Render a preset as Markdown into a file
  reportchain generate --preset weekly --markdown -o reports/weekly.md

  # Render every preset as JSON and record them in history
  reportchain generate --all --json --save

Configuration file (.reportchain) example:
  default: weekly
  presets:
    weekly:
      report: sales
      decorators: [date-filter, sorting, pdf]`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	// Chain flags
	cmd.Flags().StringP("report", "r", "",
		"Base report kind (sales, user)")
	cmd.Flags().StringSliceP("decorate", "d", nil,
		"Decorator to apply, innermost first (repeatable or comma separated)")
	cmd.Flags().StringP("preset", "p", "",
		"Preset name from the configuration file")
	cmd.Flags().BoolP("all", "a", false,
		"Render every preset in the configuration file")
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Number of presets rendered at once with --all")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .reportchain in current or home directory)")

	// Output flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().BoolP("save", "s", false,
		"Record generated reports in the history database")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd, cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runGenerate(ctx, cfg, cmd.OutOrStdout(), logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	if cfg.Report, err = cmd.Flags().GetString("report"); err != nil {
		return nil, err
	}
	if cfg.Decorators, err = cmd.Flags().GetStringSlice("decorate"); err != nil {
		return nil, err
	}
	if cfg.Preset, err = cmd.Flags().GetString("preset"); err != nil {
		return nil, err
	}
	if cfg.AllPresets, err = cmd.Flags().GetBool("all"); err != nil {
		return nil, err
	}
	if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	if cfg.SaveToDB, err = cmd.Flags().GetBool("save"); err != nil {
		return nil, err
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
	}

	// An explicit --report never needs the preset file.
	if cfg.Report != "" {
		return cfg, nil
	}

	// If the user named a config file it must exist; otherwise a missing
	// file just means no presets.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		presets, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Presets = presets
		cfg.ConfigFilePath = configPath
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	return cfg, nil
}

// resolveJobs turns the configuration into the jobs to run.
func resolveJobs(cfg *config.Config) ([]pipeline.Job, error) {
	switch {
	case cfg.Report != "":
		chain, err := report.ParseChain(cfg.Report, cfg.Decorators)
		if err != nil {
			return nil, err
		}
		return []pipeline.Job{{Chain: chain}}, nil

	case cfg.Preset != "":
		job, err := presetJob(cfg.Presets, cfg.Preset)
		if err != nil {
			return nil, err
		}
		return []pipeline.Job{job}, nil

	case cfg.AllPresets:
		names := cfg.Presets.Names()
		if len(names) == 0 {
			return nil, config.ErrNoPresets
		}
		jobs := make([]pipeline.Job, 0, len(names))
		for _, name := range names {
			job, err := presetJob(cfg.Presets, name)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}
		return jobs, nil
	}

	if name, _, ok := cfg.Presets.DefaultPreset(); ok {
		job, err := presetJob(cfg.Presets, name)
		if err != nil {
			return nil, err
		}
		return []pipeline.Job{job}, nil
	}

	return []pipeline.Job{{Chain: report.DefaultChain()}}, nil
}

// presetJob builds the job for a named preset.
func presetJob(file *config.File, name string) (pipeline.Job, error) {
	preset, err := file.Lookup(name)
	if err != nil {
		return pipeline.Job{}, err
	}
	chain, err := report.ParseChain(preset.Report, preset.Decorators)
	if err != nil {
		return pipeline.Job{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return pipeline.Job{Name: name, Chain: chain}, nil
}

// runGenerate resolves the jobs, runs them and writes the results.
func runGenerate(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	jobs, err := resolveJobs(cfg)
	if err != nil {
		return err
	}

	logger.Debug("resolved jobs",
		"count", len(jobs),
		"config", cfg.ConfigFilePath,
		"save", cfg.SaveToDB,
	)

	// Assign only a non-nil store so the pipeline sees a nil Saver otherwise.
	var saver pipeline.Saver
	if cfg.SaveToDB {
		store, err := history.Open(cfg.DBDir, history.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer store.Close()
		saver = store
		logger.Debug("history database opened", "path", store.Path())
	}

	newPipeline := func() *pipeline.Pipeline {
		return pipeline.DefaultPipeline(saver, pipeline.WithLogger(logger))
	}

	if len(jobs) == 1 {
		run := pipeline.NewRun(jobs[0])
		if err := newPipeline().Execute(ctx, run); err != nil {
			return err
		}
		return withOutput(cfg, stdout, func(w io.Writer) error {
			return writeResults(cfg, w, []*model.GenerationResult{run.Result})
		})
	}

	bp := pipeline.NewBatchProcessor(newPipeline,
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
	)

	if output.Format(cfg.Format()) == output.FormatPlain {
		return withOutput(cfg, stdout, func(w io.Writer) error {
			return streamRuns(ctx, bp, jobs, output.NewPlainWriter(w, output.WithLabel(true)))
		})
	}

	runs, err := bp.ProcessBatch(ctx, jobs)
	if err != nil {
		return err
	}

	results := make([]*model.GenerationResult, len(runs))
	for i, run := range runs {
		results[i] = run.Result
	}

	return withOutput(cfg, stdout, func(w io.Writer) error {
		return writeResults(cfg, w, results)
	})
}

// streamRuns writes each result as soon as it and every job before it
// have finished, so output keeps job order while the batch is running.
func streamRuns(ctx context.Context, bp *pipeline.BatchProcessor, jobs []pipeline.Job, w output.Writer) error {
	var (
		mu       sync.Mutex
		finished = make([]*pipeline.Run, len(jobs))
		next     int
		writeErr error
	)

	err := bp.ProcessBatchWithCallback(ctx, jobs, func(run *pipeline.Run, index int) {
		mu.Lock()
		defer mu.Unlock()

		finished[index] = run
		for next < len(finished) && finished[next] != nil {
			if writeErr == nil {
				if _, err := w.Write(finished[next].Result); err != nil {
					writeErr = fmt.Errorf("failed to write report: %w", err)
				}
			}
			next++
		}
	})
	if err != nil {
		return err
	}
	return writeErr
}

// withOutput calls write with stdout, or with the --output file when set.
// A failure to close the file is returned when write succeeded.
func withOutput(cfg *config.Config, stdout io.Writer, write func(io.Writer) error) (err error) {
	if cfg.ReportFile == "" {
		return write(stdout)
	}

	f, err := createOutputFile(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return write(f)
}

// writeResults writes results to w in the configured format.
// Several results as JSON form one array so the output stays valid JSON.
func writeResults(cfg *config.Config, w io.Writer, results []*model.GenerationResult) error {
	format := output.Format(cfg.Format())

	if len(results) > 1 && format == output.FormatJSON {
		_, err := output.NewJSONWriter(w, output.WithPrettyPrint()).WriteAll(results)
		return err
	}

	writer, err := output.New(format, w)
	if err != nil {
		return err
	}
	for _, r := range results {
		if _, err := writer.Write(r); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// createOutputFile creates path and its parent directories.
// The file is created with 0600 permissions and truncated if it exists.
func createOutputFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
