// Package database provides a sqlite-backed store of consolidated journal
// rankings, so quartiles can be queried per year without re-reading the
// per-year spreadsheets.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS rankings (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	year         INTEGER NOT NULL,
	title_clean  TEXT NOT NULL,
	title        TEXT NOT NULL,
	quartile     TEXT NOT NULL,
	q_rank       INTEGER NOT NULL,
	sjr_rank     TEXT NOT NULL DEFAULT '',
	source_file  TEXT NOT NULL DEFAULT '',
	UNIQUE(year, title_clean)
);

CREATE INDEX IF NOT EXISTS idx_rankings_year ON rankings(year);
CREATE INDEX IF NOT EXISTS idx_rankings_title ON rankings(title_clean);
`

// RankingDB is the database handle for the rankings store.
type RankingDB struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// OpenPath opens or creates the store at a specific path.
func OpenPath(path string) (*RankingDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	rdb := &RankingDB{db: db, path: path}
	if err := rdb.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to migrate database: %w", err)
	}
	return rdb, nil
}

// OpenInMemory opens an in-memory store for testing.
func OpenInMemory() (*RankingDB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("unable to open in-memory database: %w", err)
	}
	rdb := &RankingDB{db: db, path: ":memory:"}
	if err := rdb.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to migrate in-memory database: %w", err)
	}
	return rdb, nil
}

func (r *RankingDB) migrate() error {
	_, err := r.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (r *RankingDB) Close() error {
	return r.db.Close()
}

// Path returns the filesystem path to the database file.
func (r *RankingDB) Path() string {
	return r.path
}
