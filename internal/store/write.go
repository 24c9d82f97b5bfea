package store

import (
	"fmt"

	"github.com/lcarnegie/chart-audio-tools/internal/dataset"
)

// ReplaceRawRecords replaces the stored raw records transactionally.
func (s *Store) ReplaceRawRecords(records []dataset.SongRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM RawSong"); err != nil {
		return fmt.Errorf("clearing raw records: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO RawSong
		(artist_name, song_name, popularity, valence, danceability, mode, explicit, loudness, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.Exec(
			rec.ArtistName, rec.SongName,
			rec.Popularity, rec.Valence, rec.Danceability,
			nullString(rec.Mode), nullString(rec.Explicit),
			rec.Loudness, rec.DurationMs)
		if err != nil {
			return fmt.Errorf("inserting raw record %q - %q: %w", rec.ArtistName, rec.SongName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ReplaceAnalysisRows replaces the persisted analysis dataset
// transactionally, preserving row order.
func (s *Store) ReplaceAnalysisRows(rows []dataset.AnalysisRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM AnalysisRow"); err != nil {
		return fmt.Errorf("clearing analysis rows: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO AnalysisRow
		(artist_name, song_name, popularity, valence, danceability, mode, explicit, loudness, duration_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.Exec(
			row.ArtistName, row.SongName, row.Popularity,
			row.Valence, row.Danceability, row.Mode, row.Explicit,
			row.Loudness, row.DurationSecs)
		if err != nil {
			return fmt.Errorf("inserting analysis row %q - %q: %w", row.ArtistName, row.SongName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
