package runstore

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultDBName is the history database file created under the output
// directory.
const DefaultDBName = "history.db"

// Store keeps the history of analysis runs in a SQLite database.
type Store struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path.
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close() // Close error less important than PRAGMA error
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	store := &Store{
		DB:   sqlDB,
		path: path,
	}

	if err := store.ensureSchemaExists(); err != nil {
		_ = store.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not.
func (s *Store) ensureSchemaExists() error {
	var tableName string
	err := s.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='runs'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return s.InitSchema()
	}
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// InitSchema initializes the database schema.
func (s *Store) InitSchema() error {
	_, err := s.Exec(schema)
	return err
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
}
