package dataset

import (
	"math"
	"strings"
)

// PrepareResult is the outcome of running the preparation pipeline.
type PrepareResult struct {
	Rows []AnalysisRow

	// Excluded counts records dropped for missing or invalid fields.
	Excluded int

	// Duplicates counts records dropped by first-seen-wins dedup.
	Duplicates int
}

// Prepare cleans raw records into analysis rows: records missing or
// failing validation on any required field are dropped (counted, not
// errored), mode and explicit are normalized to {0, 1}, duration is
// converted from milliseconds to seconds, and duplicate
// (artist, song) pairs are resolved first-seen-wins. Empty input
// yields an empty result.
func Prepare(records []SongRecord) PrepareResult {
	res := PrepareResult{}
	seen := make(map[[2]string]bool, len(records))

	for _, rec := range records {
		row, ok := buildRow(rec)
		if !ok {
			res.Excluded++
			continue
		}
		key := [2]string{row.ArtistName, row.SongName}
		if seen[key] {
			res.Duplicates++
			continue
		}
		seen[key] = true
		res.Rows = append(res.Rows, row)
	}

	return res
}

func buildRow(rec SongRecord) (AnalysisRow, bool) {
	var row AnalysisRow

	if rec.ArtistName == "" || rec.SongName == "" {
		return row, false
	}
	if rec.Popularity == nil || rec.Valence == nil || rec.Danceability == nil ||
		rec.Loudness == nil || rec.DurationMs == nil {
		return row, false
	}

	pop := *rec.Popularity
	if pop != math.Trunc(pop) || pop < 0 || pop > 100 {
		return row, false
	}
	if *rec.Valence < 0 || *rec.Valence > 1 {
		return row, false
	}
	if *rec.Danceability < 0 || *rec.Danceability > 1 {
		return row, false
	}
	if *rec.DurationMs <= 0 {
		return row, false
	}

	mode, ok := parseMode(rec.Mode)
	if !ok {
		return row, false
	}
	explicit, ok := parseExplicit(rec.Explicit)
	if !ok {
		return row, false
	}

	row = AnalysisRow{
		ArtistName:   rec.ArtistName,
		SongName:     rec.SongName,
		Popularity:   int(pop),
		Valence:      *rec.Valence,
		Danceability: *rec.Danceability,
		Mode:         mode,
		Explicit:     explicit,
		Loudness:     *rec.Loudness,
		DurationSecs: *rec.DurationMs / 1000,
	}
	return row, true
}

func parseMode(s string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "major", "true":
		return 1, true
	case "0", "minor", "false":
		return 0, true
	}
	return 0, false
}

func parseExplicit(s string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "explicit", "true":
		return 1, true
	case "0", "clean", "false":
		return 0, true
	}
	return 0, false
}
