package log

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// newTestLogger returns a debug logger with a fixed home directory.
func newTestLogger(buf *bytes.Buffer, home string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	return slog.New(NewHomeHandler(slog.NewTextHandler(buf, opts), home))
}

// TestHomeHandler_ShortensPaths tests home directory shortening.
func TestHomeHandler_ShortensPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "file under home", value: "/home/alice/.reportchain", want: "path=~/.reportchain"},
		{name: "home itself", value: "/home/alice", want: "path=~"},
		{name: "nested dir", value: "/home/alice/.local/share/reportchain", want: "path=~/.local/share/reportchain"},
		{name: "sibling with same prefix", value: "/home/alicia/x", want: "path=/home/alicia/x"},
		{name: "outside home", value: "/etc/reportchain.yaml", want: "path=/etc/reportchain.yaml"},
		{name: "plain text", value: "sales", want: "path=sales"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			newTestLogger(&buf, "/home/alice").Info("test", "path", tt.value)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in output, got %s", tt.want, buf.String())
			}
		})
	}
}

// TestHomeHandler_WithAttrs tests that WithAttrs values are shortened.
func TestHomeHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestLogger(&buf, "/home/alice").With("db", "/home/alice/data.db").Info("opened")

	if strings.Contains(buf.String(), "/home/alice") {
		t.Errorf("expected home to be shortened, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "db=~/data.db") {
		t.Errorf("expected shortened path, got %s", buf.String())
	}
}

// TestHomeHandler_WithGroup tests that grouped values are shortened.
func TestHomeHandler_WithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newTestLogger(&buf, "/home/alice")
	logger.WithGroup("config").Info("loaded", "path", "/home/alice/.reportchain")
	logger.Info("nested", slog.Group("files", slog.String("out", "/home/alice/out.md")))

	output := buf.String()
	if strings.Contains(output, "/home/alice") {
		t.Errorf("expected home to be shortened, got %s", output)
	}
	if !strings.Contains(output, "config.path=~/.reportchain") {
		t.Errorf("expected grouped path, got %s", output)
	}
	if !strings.Contains(output, "files.out=~/out.md") {
		t.Errorf("expected nested group path, got %s", output)
	}
}

// TestHomeHandler_NonStringValues tests that other kinds pass through.
func TestHomeHandler_NonStringValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestLogger(&buf, "/home/alice").Info("batch", "jobs", 3, "save", true)

	if !strings.Contains(buf.String(), "jobs=3") || !strings.Contains(buf.String(), "save=true") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

// TestShortenHome tests edge cases of the helper.
func TestShortenHome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s, home, want string
	}{
		{s: "/home/alice/x", home: "", want: "/home/alice/x"},
		{s: "/x", home: "/", want: "/x"},
		{s: "/home/alice/x", home: "/home/alice", want: "~/x"},
	}

	for _, tt := range tests {
		if got := shortenHome(tt.s, tt.home); got != tt.want {
			t.Errorf("shortenHome(%q, %q) = %q, want %q", tt.s, tt.home, got, tt.want)
		}
	}
}

// TestHomeHandler_ShortensErrors tests that error values are shortened too.
func TestHomeHandler_ShortensErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := fmt.Errorf("failed to load config file %s: %w", "/home/alice/.reportchain", errors.New("bad yaml"))
	newTestLogger(&buf, "/home/alice").Error("step failed", "error", err)

	output := buf.String()
	if strings.Contains(output, "/home/alice") {
		t.Errorf("expected home directory to be shortened, got %s", output)
	}
	if !strings.Contains(output, "failed to load config file ~/.reportchain: bad yaml") {
		t.Errorf("expected shortened error message, got %s", output)
	}
}

// TestShortenHomeIn tests shortening inside free-form text.
func TestShortenHomeIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, s, home, want string
	}{
		{name: "no home", s: "open /home/alice/x: denied", home: "", want: "open /home/alice/x: denied"},
		{name: "middle", s: "open /home/alice/x: denied", home: "/home/alice", want: "open ~/x: denied"},
		{name: "quoted", s: `path "/home/alice/.reportchain"`, home: "/home/alice", want: `path "~/.reportchain"`},
		{name: "twice", s: "/home/alice/a -> /home/alice/b", home: "/home/alice", want: "~/a -> ~/b"},
		{name: "whole", s: "home is /home/alice", home: "/home/alice", want: "home is ~"},
		{name: "prefix of other user", s: "open /home/alicebob/x", home: "/home/alice", want: "open /home/alicebob/x"},
		{name: "nested under other dir", s: "open /srv/home/alice/x", home: "/home/alice", want: "open /srv/home/alice/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := shortenHomeIn(tt.s, tt.home); got != tt.want {
				t.Errorf("shortenHomeIn(%q, %q) = %q, want %q", tt.s, tt.home, got, tt.want)
			}
		})
	}
}

// TestLogLevels tests that verbose controls the level.
func TestLogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verbose    bool
		logLevel   slog.Level
		shouldShow bool
	}{
		{name: "debug shown in verbose mode", verbose: true, logLevel: slog.LevelDebug, shouldShow: true},
		{name: "debug hidden in non-verbose mode", verbose: false, logLevel: slog.LevelDebug, shouldShow: false},
		{name: "info hidden in non-verbose mode", verbose: false, logLevel: slog.LevelInfo, shouldShow: false},
		{name: "warn shown in non-verbose mode", verbose: false, logLevel: slog.LevelWarn, shouldShow: true},
		{name: "error shown in non-verbose mode", verbose: false, logLevel: slog.LevelError, shouldShow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)

			msg := "test_unique_message_12345"
			logger.Log(context.Background(), tt.logLevel, msg)

			hasMessage := strings.Contains(buf.String(), msg)
			if tt.shouldShow && !hasMessage {
				t.Errorf("expected message to be shown, got %s", buf.String())
			}
			if !tt.shouldShow && hasMessage {
				t.Errorf("expected message to be hidden, got %s", buf.String())
			}
		})
	}
}

// TestNewJSONLogger tests JSON logger creation.
func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewJSONLogger(&buf, true).Info("test message", "report", "sales")

	output := buf.String()
	if !strings.HasPrefix(output, "{") || !strings.Contains(output, `"report":"sales"`) {
		t.Errorf("expected JSON output, got %s", output)
	}
}

// TestNewHomeHandler_NilHandler tests that nil handler is handled gracefully.
func TestNewHomeHandler_NilHandler(t *testing.T) {
	t.Parallel()

	handler := NewHomeHandler(nil, "/home/alice")
	if handler == nil {
		t.Fatal("expected non-nil handler")
	}
	slog.New(handler).Debug("test message")
}
