// Package log provides the application's structured loggers, built on the
// standard slog package.
//
// Loggers write to stderr so that report output on stdout stays a single
// clean line. Verbose mode lowers the level from Warn to Debug, and
// NewJSONLogger backs the --log-json flag.
//
// # Path shortening
//
// HomeHandler rewrites string attribute values that start with the user's
// home directory to "~/...", so log lines carrying config or database paths
// do not leak the absolute home path when shared:
//
//	logger := log.NewLogger(os.Stderr, true)
//	logger.Debug("loaded presets", "path", "/home/alice/.reportchain")
//	// ... path=~/.reportchain
package log
