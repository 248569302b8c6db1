package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestReadBuildInfo(t *testing.T) {
	t.Parallel()

	info := readBuildInfo()
	// Each field falls back to a placeholder, so none may be empty.
	if info.Version == "" {
		t.Error("Version is empty")
	}
	if info.Commit == "" {
		t.Error("Commit is empty")
	}
	if info.Date == "" {
		t.Error("Date is empty")
	}
}

func TestShortRevision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{in: "0123456789abcdef", want: "0123456"},
		{in: "abc", want: "abc"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := shortRevision(tt.in); got != tt.want {
			t.Errorf("shortRevision(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	t.Run("command has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd := NewVersionCmd(); cmd.Use != "version" {
			t.Errorf("expected Use to be 'version', got %q", cmd.Use)
		}
	})

	t.Run("outputs version info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{"reportchain version", "commit:", "built:"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got %q", want, output)
			}
		}
	})

	t.Run("outputs json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--json"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var info buildInfo
		if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
			t.Fatalf("invalid JSON %q: %v", buf.String(), err)
		}
		if info.Version == "" {
			t.Error("expected version in JSON output")
		}
	})
}
