// Package postgres provides a PostgreSQL-backed store.Store using the pgx
// stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/trouvaille/lostfound/internal/store"
)

// Open opens a PostgreSQL connection, verifies connectivity and applies the
// schema. Statements are all CREATE IF NOT EXISTS so repeated starts are safe.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
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

// New opens dsn and returns a store backed by it.
func New(dsn string) (store.Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB wraps an existing connection.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) FoundItems() store.FoundItems { return &foundItems{db: s.db} }
func (s *pgStore) LostItems() store.LostItems   { return &lostItems{db: s.db} }
func (s *pgStore) Users() store.Users           { return &users{db: s.db} }
func (s *pgStore) Matches() store.Matches       { return &matches{db: s.db} }

func (s *pgStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *pgStore) Close() error                   { return s.db.Close() }

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
    created_at    TIMESTAMPTZ NOT NULL
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
    created_at     TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS lost_items (
    id           TEXT PRIMARY KEY,
    description  TEXT NOT NULL,
    lost_date    TEXT NOT NULL DEFAULT '',
    lost_time    TEXT NOT NULL DEFAULT '',
    location     TEXT NOT NULL DEFAULT '',
    content_info TEXT,
    created_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS possible_matches (
    found_item_id TEXT NOT NULL REFERENCES found_items(id) ON DELETE CASCADE,
    lost_item_id  TEXT NOT NULL REFERENCES lost_items(id) ON DELETE CASCADE,
    PRIMARY KEY (found_item_id, lost_item_id)
);
`
