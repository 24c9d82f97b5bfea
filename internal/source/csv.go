package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lcarnegie/chart-audio-tools/internal/dataset"
)

// ReadCSV reads a provider CSV export into raw song records. Columns
// are matched by header name, case-insensitively. Missing or
// non-numeric values become nil fields on the record; they are not
// errors here (preparation decides what to drop).
func ReadCSV(path string) ([]dataset.SongRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(in io.Reader) ([]dataset.SongRecord, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(rec []string, names ...string) string {
		for _, name := range names {
			if i, ok := idx[name]; ok && i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
		}
		return ""
	}
	numeric := func(rec []string, names ...string) *float64 {
		s := field(rec, names...)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &v
	}

	var records []dataset.SongRecord
	line := 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading row %d: %w", line, err)
		}
		line++

		records = append(records, dataset.SongRecord{
			ArtistName:   field(rec, "artist_name", "artist"),
			SongName:     field(rec, "song_name", "track_name", "song"),
			Popularity:   numeric(rec, "popularity"),
			Valence:      numeric(rec, "valence"),
			Danceability: numeric(rec, "danceability"),
			Mode:         field(rec, "mode"),
			Explicit:     field(rec, "explicit"),
			Loudness:     numeric(rec, "loudness"),
			DurationMs:   numeric(rec, "duration_ms"),
		})
	}

	return records, nil
}
