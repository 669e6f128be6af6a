// Package sqlite provides a SQLite-backed store.Store using the pure Go
// modernc driver. It is the default driver for local runs and the test suite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/trouvaille/lostfound/internal/store"
)

// Open opens (or creates) a SQLite database at path, enables WAL journal mode
// and foreign keys, and applies the schema. Use ":memory:" for tests.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	var dsn string
	if path == ":memory:" {
		// A plain :memory: DSN gives every pooled connection its own private
		// empty database. A named shared-cache database keeps all pooled
		// connections on the same store; the random name isolates stores
		// opened in the same process.
		dsn = fmt.Sprintf("file:memdb-%s?mode=memory&cache=shared&_pragma=foreign_keys(ON)", uuid.NewString())
	} else {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// New opens the database at path and returns a store backed by it.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB wraps an existing connection (used by the factory and tests).
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) FoundItems() store.FoundItems { return &foundItems{db: s.db} }
func (s *sqliteStore) LostItems() store.LostItems   { return &lostItems{db: s.db} }
func (s *sqliteStore) Users() store.Users           { return &users{db: s.db} }
func (s *sqliteStore) Matches() store.Matches       { return &matches{db: s.db} }

func (s *sqliteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *sqliteStore) Close() error                   { return s.db.Close() }

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    is_admin      INTEGER NOT NULL DEFAULT 0,
    created_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS found_items (
    id             TEXT PRIMARY KEY,
    description    TEXT NOT NULL,
    found_date     TEXT NOT NULL DEFAULT '',
    found_time     TEXT NOT NULL DEFAULT '',
    location       TEXT NOT NULL DEFAULT '',
    content_info   TEXT,
    image_url      TEXT,
    image_filename TEXT,
    created_at     TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS lost_items (
    id           TEXT PRIMARY KEY,
    description  TEXT NOT NULL,
    lost_date    TEXT NOT NULL DEFAULT '',
    lost_time    TEXT NOT NULL DEFAULT '',
    location     TEXT NOT NULL DEFAULT '',
    content_info TEXT,
    created_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS possible_matches (
    found_item_id TEXT NOT NULL REFERENCES found_items(id) ON DELETE CASCADE,
    lost_item_id  TEXT NOT NULL REFERENCES lost_items(id) ON DELETE CASCADE,
    PRIMARY KEY (found_item_id, lost_item_id)
);
`
