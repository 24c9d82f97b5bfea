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
	const query = `
CREATE TABLE IF NOT EXISTS RawSong (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  artist_name TEXT,
  song_name TEXT,
  popularity REAL,
  valence REAL,
  danceability REAL,
  mode TEXT,
  explicit TEXT,
  loudness REAL,
  duration_ms REAL
);

CREATE TABLE IF NOT EXISTS AnalysisRow (
  artist_name TEXT NOT NULL,
  song_name TEXT NOT NULL,
  popularity INTEGER NOT NULL,
  valence REAL NOT NULL,
  danceability REAL NOT NULL,
  mode INTEGER NOT NULL,
  explicit INTEGER NOT NULL,
  loudness REAL NOT NULL,
  duration_secs REAL NOT NULL,
  PRIMARY KEY (artist_name, song_name)
);
`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}
