// Package sqlite provides a SQLite-backed store for named shared tags.
//
// Applications that persist SharedTag encodings across process
// restarts need a durable place to keep them; TagStore is that place.
// It stores only the transport-safe text encodings, never raw tags,
// so an encoding written by a previous process instance loads back
// intact and compares unequal to anything minted after the restart.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	stdSync "sync"
	"time"

	tagErrors "github.com/danylaporte/version-tag/errors"
	"github.com/danylaporte/version-tag/logging"
	"github.com/danylaporte/version-tag/sharedtag"

	// Go SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

// Operation constants for consistent error reporting
const (
	opSave   = tagErrors.OpSave
	opLoad   = tagErrors.OpLoad
	opDelete = tagErrors.OpDelete
	opList   = tagErrors.OpList
)

// Custom errors for better error handling
var (
	ErrTagNotFound = errors.New("tag not found")
	ErrStoreClosed = errors.New("store is closed")
	ErrEmptyName   = errors.New("tag name must not be empty")
)

// Config holds configuration options for the TagStore.
type Config struct {
	// DataSourceName is the connection string for the SQLite database.
	// Example: "file:tags.db?_journal_mode=WAL"
	DataSourceName string

	// EnableWAL enables Write-Ahead Logging mode for better concurrency.
	// When true, automatically appends "?_journal_mode=WAL" to DataSourceName.
	EnableWAL bool

	// Logger is an optional structured logger for internal operations.
	// If nil, the package default logger is used.
	Logger *logging.Logger

	// Metrics receives operation timings and errors.
	// If nil, metrics are discarded.
	Metrics MetricsCollector

	// TableName is the name of the table to store tags.
	// Defaults to "shared_tags" if empty.
	TableName string

	// Connection pool settings.
	// Defaults: MaxOpen=25, MaxIdle=5, Lifetime=1h, IdleTime=5m
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// setDefaults applies default values to the config
func (c *Config) setDefaults() {
	if c.TableName == "" {
		c.TableName = "shared_tags"
	}
	if c.Logger == nil {
		c.Logger = logging.Default()
	}
	if c.Metrics == nil {
		c.Metrics = &NoOpMetricsCollector{}
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 25
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = time.Hour
	}
	if c.ConnMaxIdleTime == 0 {
		c.ConnMaxIdleTime = 5 * time.Minute
	}
	if c.EnableWAL {
		if !strings.Contains(c.DataSourceName, "_journal_mode=") {
			if strings.Contains(c.DataSourceName, "?") {
				c.DataSourceName += "&_journal_mode=WAL"
			} else {
				c.DataSourceName += "?_journal_mode=WAL"
			}
		}
	}
}

// DefaultConfig returns a Config with production-ready defaults.
func DefaultConfig(dataSourceName string) *Config {
	config := &Config{
		DataSourceName: dataSourceName,
		EnableWAL:      true,
	}
	config.setDefaults()
	return config
}

// NewWithDataSource is a convenience constructor
func NewWithDataSource(dataSourceName string) (*TagStore, error) {
	return New(DefaultConfig(dataSourceName))
}

// TagStore persists named SharedTag encodings in SQLite.
type TagStore struct {
	db        *sql.DB
	mu        stdSync.RWMutex
	closed    bool
	logger    *logging.Logger
	metrics   MetricsCollector
	tableName string
}

// New creates a new TagStore from a Config.
func New(config *Config) (*TagStore, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	config.setDefaults()

	if config.DataSourceName == "" {
		return nil, fmt.Errorf("DataSourceName is required")
	}

	logger := config.Logger.WithComponent(logging.Component("sqlite-tag-store"))
	logger.InfoContext(context.Background(), "Opening SQLite database",
		slog.String("data_source", config.DataSourceName),
		slog.Bool("wal_enabled", config.EnableWAL),
	)

	db, err := sql.Open("sqlite3", config.DataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)
	db.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	store := &TagStore{
		db:        db,
		logger:    logger,
		metrics:   config.Metrics,
		tableName: config.TableName,
	}

	if err := store.setupSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database schema: %w", err)
	}

	logger.InfoContext(context.Background(), "TagStore successfully initialized",
		slog.String("table_name", config.TableName),
	)
	return store, nil
}

// setupSchema creates the tag table if it doesn't exist.
func (s *TagStore) setupSchema() error {
	query := fmt.Sprintf(`
    CREATE TABLE IF NOT EXISTS %s (
        name        TEXT PRIMARY KEY,
        tag         TEXT NOT NULL,
        updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );`, s.tableName)
	_, err := s.db.Exec(query)
	return err
}

// checkOpen returns ErrStoreClosed if Close has been called.
func (s *TagStore) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return nil
}

// Save upserts a shared tag under the given name.
func (s *TagStore) Save(ctx context.Context, name string, tag sharedtag.SharedTag) error {
	start := time.Now()

	if name == "" {
		return tagErrors.NewValidationError(opSave, ErrEmptyName)
	}
	if err := s.checkOpen(); err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (name, tag, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(name) DO UPDATE SET tag = excluded.tag, updated_at = CURRENT_TIMESTAMP`, s.tableName)
	if _, err := s.db.ExecContext(ctx, query, name, tag.Encode()); err != nil {
		s.metrics.RecordOpError(string(opSave), "exec")
		return tagErrors.NewStorageError(opSave, err)
	}

	s.metrics.RecordOpDuration(string(opSave), time.Since(start))
	s.logger.DebugContext(ctx, "tag saved",
		slog.String("name", name),
		slog.Uint64("ordinal", tag.Ordinal()),
	)
	return nil
}

// Load retrieves the shared tag saved under the given name.
// Returns ErrTagNotFound if no tag has been saved under that name, and
// a decode error if the stored row does not hold a valid encoding.
func (s *TagStore) Load(ctx context.Context, name string) (sharedtag.SharedTag, error) {
	start := time.Now()

	if name == "" {
		return sharedtag.SharedTag{}, tagErrors.NewValidationError(opLoad, ErrEmptyName)
	}
	if err := s.checkOpen(); err != nil {
		return sharedtag.SharedTag{}, err
	}

	query := fmt.Sprintf(`SELECT tag FROM %s WHERE name = ?`, s.tableName)

	var encoded string
	err := s.db.QueryRowContext(ctx, query, name).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return sharedtag.SharedTag{}, ErrTagNotFound
	}
	if err != nil {
		s.metrics.RecordOpError(string(opLoad), "query")
		return sharedtag.SharedTag{}, tagErrors.NewStorageError(opLoad, err)
	}

	tag, err := sharedtag.Decode(encoded)
	if err != nil {
		// A corrupted row must surface as a decode error, never as a
		// silently wrong tag.
		s.metrics.RecordOpError(string(opLoad), "decode")
		s.logger.LogError(ctx, err, "stored tag is corrupted",
			slog.String("name", name),
		)
		return sharedtag.SharedTag{}, tagErrors.WithMetadata(err, "name", name)
	}

	s.metrics.RecordOpDuration(string(opLoad), time.Since(start))
	return tag, nil
}

// Delete removes the tag saved under the given name. Deleting a name
// that was never saved is not an error.
func (s *TagStore) Delete(ctx context.Context, name string) error {
	start := time.Now()

	if name == "" {
		return tagErrors.NewValidationError(opDelete, ErrEmptyName)
	}
	if err := s.checkOpen(); err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE name = ?`, s.tableName)
	if _, err := s.db.ExecContext(ctx, query, name); err != nil {
		s.metrics.RecordOpError(string(opDelete), "exec")
		return tagErrors.NewStorageError(opDelete, err)
	}

	s.metrics.RecordOpDuration(string(opDelete), time.Since(start))
	return nil
}

// List returns all saved tags keyed by name. Corrupted rows are
// skipped and logged rather than failing the whole listing.
func (s *TagStore) List(ctx context.Context) (map[string]sharedtag.SharedTag, error) {
	start := time.Now()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT name, tag FROM %s ORDER BY name`, s.tableName)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.metrics.RecordOpError(string(opList), "query")
		return nil, tagErrors.NewStorageError(opList, err)
	}
	defer rows.Close()

	tags := make(map[string]sharedtag.SharedTag)
	for rows.Next() {
		var name, encoded string
		if err := rows.Scan(&name, &encoded); err != nil {
			s.metrics.RecordOpError(string(opList), "scan")
			return nil, tagErrors.NewStorageError(opList, err)
		}
		tag, err := sharedtag.Decode(encoded)
		if err != nil {
			s.logger.LogError(ctx, err, "skipping corrupted tag row",
				slog.String("name", name),
			)
			continue
		}
		tags[name] = tag
	}
	if err := rows.Err(); err != nil {
		s.metrics.RecordOpError(string(opList), "rows")
		return nil, tagErrors.NewStorageError(opList, err)
	}

	s.metrics.RecordOpDuration(string(opList), time.Since(start))
	return tags, nil
}

// Close closes the underlying database. Further calls on the store
// return ErrStoreClosed; Close itself is idempotent.
func (s *TagStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.db.Close(); err != nil {
		return tagErrors.NewStorageError(tagErrors.OpClose, err)
	}
	return nil
}
