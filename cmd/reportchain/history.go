package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/reportchain/internal/config"
	"github.com/nao1215/reportchain/internal/history"
	"github.com/nao1215/reportchain/internal/output"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
// This command lists reports recorded by 'generate --save'.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previously generated reports",
		Long: `History lists reports recorded with 'reportchain generate --save'.

Examples:
  # Show the 20 most recent reports
  reportchain history

  # Show a single entry in full
  reportchain history --id 5

  # Output entries as JSON
  reportchain history --json --limit 100

  # List the presets that have history
  reportchain history --presets`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "l", config.DefaultHistoryLimit,
		"Maximum number of entries to show (0 for all)")
	cmd.Flags().Int64P("id", "i", 0,
		"Show a single entry by ID")
	cmd.Flags().BoolP("json", "j", false,
		"Output in JSON format")
	cmd.Flags().BoolP("presets", "P", false,
		"List preset names that have history")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	id, err := cmd.Flags().GetInt64("id")
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	presetsOnly, err := cmd.Flags().GetBool("presets")
	if err != nil {
		return err
	}
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	out := cmd.OutOrStdout()

	// Avoid creating an empty database just to report that it is empty.
	if _, err := os.Stat(filepath.Join(dbDir, history.DBFileName)); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(out, "No history found.")
		fmt.Fprintln(out, "\nUse 'reportchain generate --save' to record generated reports.")
		return nil
	}

	logger := newLogger(cmd, getVerboseFlag(cmd))

	store, err := history.Open(dbDir, history.Options{CreateIfNotExists: false})
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()
	logger.Debug("history database opened", "path", store.Path(), "limit", limit, "id", id)

	ctx := cmd.Context()

	if presetsOnly {
		return listHistoryPresets(ctx, store, jsonOutput, out)
	}
	if id > 0 {
		return showHistoryEntry(ctx, store, id, jsonOutput, out)
	}
	return listHistory(ctx, store, limit, jsonOutput, out)
}

// showHistoryEntry prints one stored result.
func showHistoryEntry(ctx context.Context, store *history.Store, id int64, jsonOutput bool, out io.Writer) error {
	result, err := store.Get(ctx, id)
	if err != nil {
		return err
	}

	if jsonOutput {
		_, err = output.NewJSONWriter(out, output.WithPrettyPrint()).Write(result)
		return err
	}

	fmt.Fprintf(out, "Entry %d\n\n", id)
	if result.Preset != "" {
		fmt.Fprintf(out, "  Preset:    %s\n", result.Preset)
	}
	fmt.Fprintf(out, "  Chain:     %s\n", result.ChainString())
	fmt.Fprintf(out, "  Layers:    %s\n", strings.Join(result.Layers, " -> "))
	fmt.Fprintf(out, "  Generated: %s\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "  Output:    %s\n", result.Output)
	return nil
}

// listHistory prints the most recent entries.
func listHistory(ctx context.Context, store *history.Store, limit int, jsonOutput bool, out io.Writer) error {
	entries, err := store.List(ctx, limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		if entries == nil {
			entries = []history.Entry{}
		}
		return writeJSON(out, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No history found.")
		return nil
	}

	fmt.Fprintf(out, "History (%d entries):\n\n", len(entries))
	fmt.Fprintf(out, "  %-6s  %-19s  %-16s  %s\n", "ID", "Date", "Preset", "Chain")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 70))

	for _, e := range entries {
		preset := e.Preset
		if preset == "" {
			preset = "-"
		}
		fmt.Fprintf(out, "  %-6d  %-19s  %-16s  %s\n",
			e.ID,
			e.GeneratedAt.Format("2006-01-02 15:04:05"),
			preset,
			e.Chain,
		)
		fmt.Fprintf(out, "  %-6s  %s\n", "", e.Output)
	}

	fmt.Fprintln(out, "\nUse 'reportchain history --id <ID>' to see an entry in full.")
	return nil
}

// listHistoryPresets prints the preset names that have stored entries.
func listHistoryPresets(ctx context.Context, store *history.Store, jsonOutput bool, out io.Writer) error {
	presets, err := store.Presets(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		if presets == nil {
			presets = []string{}
		}
		return writeJSON(out, presets)
	}

	if len(presets) == 0 {
		fmt.Fprintln(out, "No presets in history.")
		return nil
	}
	for _, name := range presets {
		fmt.Fprintln(out, name)
	}
	return nil
}
