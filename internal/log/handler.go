package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// HomeHandler wraps an slog.Handler and shortens home directory paths in
// string attribute values.
type HomeHandler struct {
	handler slog.Handler
	home    string
}

// NewHomeHandler creates a HomeHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used. If home is empty,
// values are passed through unchanged.
func NewHomeHandler(handler slog.Handler, home string) *HomeHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &HomeHandler{handler: handler, home: filepath.Clean(home)}
}

// Enabled reports whether the handler handles records at the given level.
func (h *HomeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it on.
func (h *HomeHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})
	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *HomeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &HomeHandler{handler: h.handler.WithAttrs(rewritten), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *HomeHandler) WithGroup(name string) slog.Handler {
	return &HomeHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// rewriteAttr shortens a single attribute, recursing into groups.
func (h *HomeHandler) rewriteAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			rewritten[i] = h.rewriteAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	}
	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, shortenHome(a.Value.String(), h.home))
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok && err != nil {
			return slog.String(a.Key, shortenHomeIn(err.Error(), h.home))
		}
	}
	return a
}

// shortenHome replaces a leading home directory in s with "~".
// Only whole path components match: "/home/al" does not shorten "/home/alice".
func shortenHome(s, home string) string {
	if home == "" || home == "." || home == string(filepath.Separator) {
		return s
	}
	if s == home {
		return "~"
	}
	if strings.HasPrefix(s, home+string(filepath.Separator)) {
		return "~" + s[len(home):]
	}
	return s
}

// shortenHomeIn replaces every occurrence of the home directory in s that
// starts a path, as in error messages such as "failed to load /home/a/x".
func shortenHomeIn(s, home string) string {
	if home == "" || home == "." || home == string(filepath.Separator) {
		return s
	}
	var b strings.Builder
	for {
		i := strings.Index(s, home)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := i + len(home)
		atStart := i == 0 || !isPathChar(s[i-1])
		atEnd := end == len(s) || s[end] == filepath.Separator || !isPathChar(s[end])
		b.WriteString(s[:i])
		if atStart && atEnd {
			b.WriteString("~")
		} else {
			b.WriteString(home)
		}
		s = s[end:]
	}
}

// isPathChar reports whether c can be part of a path component.
func isPathChar(c byte) bool {
	return c != ' ' && c != '\t' && c != '\n' && c != ':' && c != '"' && c != '\'' && c != '(' && c != ')'
}

// userHome returns the current user's home directory or "" if unknown.
func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// level maps verbose to Debug, otherwise Warn.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text slog.Logger that writes to w.
// If verbose is true the level is Debug; otherwise Warn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewHomeHandler(slog.NewTextHandler(w, opts), userHome()))
}

// NewJSONLogger creates a slog.Logger that outputs JSON.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewHomeHandler(slog.NewJSONHandler(w, opts), userHome()))
}
