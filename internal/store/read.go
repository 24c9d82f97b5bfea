package store

import (
	"database/sql"
	"fmt"

	"github.com/lcarnegie/chart-audio-tools/internal/dataset"
)

// LoadRawRecords returns the stored raw records in insertion order.
func (s *Store) LoadRawRecords() ([]dataset.SongRecord, error) {
	rows, err := s.db.Query(`
		SELECT artist_name, song_name, popularity, valence, danceability,
		       mode, explicit, loudness, duration_ms
		FROM RawSong ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying raw records: %w", err)
	}
	defer rows.Close()

	var records []dataset.SongRecord
	for rows.Next() {
		var rec dataset.SongRecord
		var pop, val, dance, loud, dur sql.NullFloat64
		var mode, explicit sql.NullString
		err := rows.Scan(&rec.ArtistName, &rec.SongName, &pop, &val, &dance,
			&mode, &explicit, &loud, &dur)
		if err != nil {
			return nil, fmt.Errorf("scanning raw record: %w", err)
		}
		rec.Popularity = nullableFloat(pop)
		rec.Valence = nullableFloat(val)
		rec.Danceability = nullableFloat(dance)
		rec.Loudness = nullableFloat(loud)
		rec.DurationMs = nullableFloat(dur)
		rec.Mode = mode.String
		rec.Explicit = explicit.String
		records = append(records, rec)
	}
	return records, rows.Err()
}

// LoadAnalysisRows returns the persisted analysis dataset in the order
// it was written, so diagnostic vectors computed later stay aligned.
func (s *Store) LoadAnalysisRows() ([]dataset.AnalysisRow, error) {
	rows, err := s.db.Query(`
		SELECT artist_name, song_name, popularity, valence, danceability,
		       mode, explicit, loudness, duration_secs
		FROM AnalysisRow ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying analysis rows: %w", err)
	}
	defer rows.Close()

	var out []dataset.AnalysisRow
	for rows.Next() {
		var row dataset.AnalysisRow
		err := rows.Scan(&row.ArtistName, &row.SongName, &row.Popularity,
			&row.Valence, &row.Danceability, &row.Mode, &row.Explicit,
			&row.Loudness, &row.DurationSecs)
		if err != nil {
			return nil, fmt.Errorf("scanning analysis row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CountAnalysisRows returns the size of the persisted dataset.
func (s *Store) CountAnalysisRows() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM AnalysisRow").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting analysis rows: %w", err)
	}
	return count, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
