package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"karma-server/internal/observability"
)

var ErrNotFound = errors.New("not found")

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// timeLayout is fixed width so stored timestamps sort and prefix-match as text.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

type Store struct {
	db     *sqlx.DB
	driver string
	logger *observability.Logger
	now    func() time.Time
}

// New opens the database. SQLite is limited to one connection so pragmas and
// in-memory databases are shared by every query.
func New(driver, dsn string, logger *observability.Logger) (*Store, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		if !strings.Contains(dsn, ":memory:") {
			if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to enable WAL: %w", err)
			}
		}
	}

	return &Store{
		db:     db,
		driver: driver,
		logger: logger,
		now:    time.Now,
	}, nil
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS calls (
    id TEXT PRIMARY KEY,
    caller_number TEXT NOT NULL DEFAULT 'unknown',
    start_time TEXT NOT NULL,
    end_time TEXT,
    duration_seconds INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'active',
    mode TEXT NOT NULL DEFAULT 'twilio',
    threat_level TEXT NOT NULL DEFAULT 'HIGH',
    summary TEXT
)`,
	`CREATE TABLE IF NOT EXISTS messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    call_id TEXT NOT NULL REFERENCES calls(id) ON DELETE CASCADE,
    role TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS intel (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    call_id TEXT NOT NULL REFERENCES calls(id) ON DELETE CASCADE,
    field_name TEXT NOT NULL,
    field_value TEXT NOT NULL,
    confidence REAL NOT NULL DEFAULT 0.5,
    created_at TEXT NOT NULL,
    UNIQUE (call_id, field_name, field_value)
)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS calls (
    id TEXT PRIMARY KEY,
    caller_number TEXT NOT NULL DEFAULT 'unknown',
    start_time TEXT NOT NULL,
    end_time TEXT,
    duration_seconds INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'active',
    mode TEXT NOT NULL DEFAULT 'twilio',
    threat_level TEXT NOT NULL DEFAULT 'HIGH',
    summary TEXT
)`,
	`CREATE TABLE IF NOT EXISTS messages (
    id BIGSERIAL PRIMARY KEY,
    call_id TEXT NOT NULL REFERENCES calls(id) ON DELETE CASCADE,
    role TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS intel (
    id BIGSERIAL PRIMARY KEY,
    call_id TEXT NOT NULL REFERENCES calls(id) ON DELETE CASCADE,
    field_name TEXT NOT NULL,
    field_value TEXT NOT NULL,
    confidence DOUBLE PRECISION NOT NULL DEFAULT 0.5,
    created_at TEXT NOT NULL,
    UNIQUE (call_id, field_name, field_value)
)`,
}

var commonIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_calls_status ON calls (status)`,
	`CREATE INDEX IF NOT EXISTS idx_calls_start_time ON calls (start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_call_id ON messages (call_id)`,
}

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	stmts := sqliteSchema
	if s.driver == DriverPostgres {
		stmts = postgresSchema
	}
	stmts = append(append([]string{}, stmts...), commonIndexes...)

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			s.logger.Error(ctx, "failed to apply schema", err)
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	s.logger.Info(ctx, "database schema ready")
	return nil
}
