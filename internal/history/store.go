package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/reportchain/internal/model"
)

// DBFileName is the database file created inside the history directory.
const DBFileName = "reportchain.db"

// Store provides SQLite-backed storage for generation results.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a Store in dir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dir, DBFileName)

	var dsn string
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = dbPath + "?mode=rwc&_pragma=busy_timeout(5000)"
	} else {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
		dsn = dbPath + "?mode=rw&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		preset TEXT NOT NULL DEFAULT '',
		report_kind TEXT NOT NULL,
		chain TEXT NOT NULL,
		output TEXT NOT NULL,
		generated_at TEXT NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_generations_preset ON generations(preset);
	CREATE INDEX IF NOT EXISTS idx_generations_report ON generations(report_kind);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Entry is a summary row of the history table.
type Entry struct {
	// ID is the unique identifier of the entry.
	ID int64 `json:"id"`

	// Preset is the preset name, empty for ad-hoc chains.
	Preset string `json:"preset,omitempty"`

	// Report is the base report kind.
	Report string `json:"report"`

	// Chain is the rendered chain, e.g. "sales -> pdf".
	Chain string `json:"chain"`

	// Output is the generated string.
	Output string `json:"output"`

	// GeneratedAt is when the chain was run.
	GeneratedAt time.Time `json:"generated_at"`
}

// Save stores a result and returns its ID.
func (s *Store) Save(ctx context.Context, result *model.GenerationResult) (int64, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize result: %w", err)
	}

	query := `
	INSERT INTO generations (preset, report_kind, chain, output, generated_at, result_json)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		result.Preset,
		result.Report,
		result.ChainString(),
		result.Output,
		result.GeneratedAt.UTC().Format(time.RFC3339Nano),
		string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

// List returns up to limit entries, newest first.
// A limit of zero or less returns every entry.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `
	SELECT id, preset, report_kind, chain, output, generated_at
	FROM generations
	ORDER BY id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var generatedAt string
		if err := rows.Scan(&e.ID, &e.Preset, &e.Report, &e.Chain, &e.Output, &generatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.GeneratedAt = parseTimestamp(generatedAt)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Get retrieves the full result stored under id.
func (s *Store) Get(ctx context.Context, id int64) (*model.GenerationResult, error) {
	query := `
	SELECT result_json FROM generations
	WHERE id = ?
	`

	var resultJSON string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&resultJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result model.GenerationResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse result: %w", err)
	}

	return &result, nil
}

// Presets returns the distinct preset names that have history, sorted.
func (s *Store) Presets(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT preset FROM generations
	WHERE preset != ''
	ORDER BY preset
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer rows.Close()

	var presets []string
	for rows.Next() {
		var preset string
		if err := rows.Scan(&preset); err != nil {
			return nil, fmt.Errorf("failed to scan preset: %w", err)
		}
		presets = append(presets, preset)
	}

	return presets, rows.Err()
}

// timestampFormats contains the timestamp formats that may be stored.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// parseTimestamp parses s with each known format and returns zero time
// if none match.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
