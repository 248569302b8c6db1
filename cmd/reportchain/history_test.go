package main

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/reportchain/internal/history"
	"github.com/nao1215/reportchain/internal/model"
)

// TestNewHistoryCmd tests the history command creation.
func TestNewHistoryCmd(t *testing.T) {
	t.Parallel()

	cmd := NewHistoryCmd()

	if cmd.Use != "history" {
		t.Errorf("expected use 'history', got %q", cmd.Use)
	}

	flags := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"limit", "l", "20"},
		{"id", "i", "0"},
		{"json", "j", "false"},
		{"presets", "P", "false"},
		{"db-dir", "", ""},
	}

	for _, tt := range flags {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("expected default %q, got %q", tt.defValue, flag.DefValue)
			}
		})
	}
}

// seedHistory records three generations in a fresh database directory.
func seedHistory(t *testing.T) string {
	t.Helper()
	dbDir := t.TempDir()

	runs := [][]string{
		{"generate", "-r", "sales", "-s", "--db-dir", dbDir},
		{"generate", "-r", "user", "-d", "csv", "-s", "--db-dir", dbDir},
		{"generate", "-r", "sales", "-d", "date-filter,pdf", "-s", "--db-dir", dbDir},
	}
	for _, args := range runs {
		if _, err := executeRoot(t, args...); err != nil {
			t.Fatalf("failed to seed history: %v", err)
		}
	}
	return dbDir
}

// TestRunHistoryCmd tests the history command execution.
func TestRunHistoryCmd(t *testing.T) {
	t.Parallel()

	t.Run("empty database directory", func(t *testing.T) {
		t.Parallel()
		out, err := executeRoot(t, "history", "--db-dir", t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "No history found") {
			t.Errorf("expected 'No history found', got %q", out)
		}
	})

	dbDir := seedHistory(t)

	t.Run("lists newest first", func(t *testing.T) {
		t.Parallel()
		out, err := executeRoot(t, "history", "--db-dir", dbDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "History (3 entries)") {
			t.Errorf("expected entry count in output, got %q", out)
		}
		newest := strings.Index(out, "sales -> date-filter -> pdf")
		oldest := strings.Index(out, "Sales Report Data\n")
		if newest < 0 || oldest < 0 || newest > oldest {
			t.Errorf("expected newest entry first, got %q", out)
		}
	})

	t.Run("limit", func(t *testing.T) {
		t.Parallel()
		out, err := executeRoot(t, "history", "--db-dir", dbDir, "-l", "1", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var entries []history.Entry
		if err := json.Unmarshal([]byte(out), &entries); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Output != "Sales Report Data with Date Filter Exported as PDF" {
			t.Errorf("unexpected output %q", entries[0].Output)
		}
	})

	t.Run("single entry as json", func(t *testing.T) {
		t.Parallel()
		out, err := executeRoot(t, "history", "--db-dir", dbDir, "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var entries []history.Entry
		if err := json.Unmarshal([]byte(out), &entries); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}

		var user history.Entry
		for _, e := range entries {
			if e.Report == "user" {
				user = e
			}
		}
		if user.ID == 0 {
			t.Fatal("expected a user entry")
		}

		out, err = executeRoot(t, "history", "--db-dir", dbDir, "--id", strconv.FormatInt(user.ID, 10), "-j")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var result model.GenerationResult
		if err := json.Unmarshal([]byte(out), &result); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if result.Output != "User Report Data Exported as CSV" {
			t.Errorf("unexpected output %q", result.Output)
		}
	})

	t.Run("single entry as text", func(t *testing.T) {
		t.Parallel()
		out, err := executeRoot(t, "history", "--db-dir", dbDir, "-i", "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Entry 1", "Layers:    SalesReport", "Output:    Sales Report Data"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got %q", want, out)
			}
		}
	})

	t.Run("presets without preset entries", func(t *testing.T) {
		t.Parallel()
		out, err := executeRoot(t, "history", "--db-dir", dbDir, "--presets")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "No presets in history.\n" {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		_, err := executeRoot(t, "history", "--db-dir", dbDir, "--id", "999")
		if !errors.Is(err, history.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

// TestHistoryPresets tests listing the presets recorded in history.
func TestHistoryPresets(t *testing.T) {
	t.Parallel()

	configPath := writeTestConfig(t, testPresets)
	dbDir := t.TempDir()

	for _, args := range [][]string{
		{"generate", "-c", configPath, "-p", "weekly", "-s", "--db-dir", dbDir},
		{"generate", "-c", configPath, "-p", "users", "-s", "--db-dir", dbDir},
		{"generate", "-c", configPath, "-p", "weekly", "-s", "--db-dir", dbDir},
		{"generate", "-r", "sales", "-s", "--db-dir", dbDir},
	} {
		if _, err := executeRoot(t, args...); err != nil {
			t.Fatalf("failed to seed history: %v", err)
		}
	}

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		out, err := executeRoot(t, "history", "--db-dir", dbDir, "-P")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "users\nweekly\n" {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		out, err := executeRoot(t, "history", "--db-dir", dbDir, "--presets", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var presets []string
		if err := json.Unmarshal([]byte(out), &presets); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if diff := cmp.Diff([]string{"users", "weekly"}, presets); diff != "" {
			t.Errorf("presets mismatch (-want +got):\n%s", diff)
		}
	})
}
