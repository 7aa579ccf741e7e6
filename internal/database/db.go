// Package database opens the SQLite store and bootstraps its schema.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// schema creates all tables if they don't exist.  Layouts are stored
// wholesale as JSON blobs per year; seat_assignments is the denormalized
// index derived on every save for efficient history queries.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    id           TEXT PRIMARY KEY,
    first_name   TEXT,
    last_name    TEXT,
    display_name TEXT,
    room_id      TEXT,
    created_at   INTEGER
);

CREATE TABLE IF NOT EXISTS layouts (
    year       INTEGER PRIMARY KEY,
    items      TEXT, -- JSON
    tables     TEXT, -- JSON
    columns    TEXT, -- JSON
    updated_at INTEGER
);

CREATE TABLE IF NOT EXISTS seat_assignments (
    year       INTEGER,
    seat_label TEXT,
    member_id  TEXT,
    PRIMARY KEY (year, seat_label)
);
`

// Open connects to the SQLite database at path, verifies the connection,
// applies the usual pragmas and bootstraps the schema.  Pass ":memory:" for
// an in-memory database (testing).
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating db directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise get its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Single-writer file store: WAL keeps readers unblocked, busy_timeout
	// covers the occasional overlap with the queue consumer process.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrapping schema: %w", err)
	}
	return db, nil
}
