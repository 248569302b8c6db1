// Package history provides SQLite-based storage for generated reports.
//
// Each run of generate --save appends one row per generated chain, holding
// the chain description, the output string and the full result as JSON.
// The history command reads these rows back.
//
// The database is a single reportchain.db file, by default under the XDG
// data directory, opened through the modernc.org/sqlite driver.
package history
