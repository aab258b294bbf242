// Package store persists the enriched play table to a local SQLite
// database. The analysis pipeline never reads it back; it exists so
// other tools can query the archive with SQL.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	query := `
CREATE TABLE IF NOT EXISTS Play (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ts TEXT NOT NULL,
  year INTEGER NOT NULL,
  month INTEGER NOT NULL,
  year_month TEXT NOT NULL,
  artist TEXT,
  album TEXT,
  song TEXT,
  platform TEXT,
  conn_country TEXT,
  spotify_track_uri TEXT,
  episode_name TEXT,
  episode_show_name TEXT,
  shuffle INTEGER NOT NULL DEFAULT 0,
  skipped INTEGER NOT NULL DEFAULT 0,
  ms_played INTEGER,
  minutes REAL NOT NULL DEFAULT 0,
  hours REAL NOT NULL DEFAULT 0,
  days REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS PlayArtist ON Play(artist);
CREATE INDEX IF NOT EXISTS PlayYear ON Play(year);
`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}
