package dataset

import (
	"reflect"
	"testing"
)

func fullRecord(artist, song string) SongRecord {
	return SongRecord{
		ArtistName:   artist,
		SongName:     song,
		Popularity:   ptr(75),
		Valence:      ptr(0.5),
		Danceability: ptr(0.7),
		Mode:         "major",
		Explicit:     "clean",
		Loudness:     ptr(-6.5),
		DurationMs:   ptr(210000),
	}
}

func ptr(v float64) *float64 {
	return &v
}

func TestPrepareCompleteness(t *testing.T) {
	records := []SongRecord{
		fullRecord("Artist A", "Song 1"),
		{ArtistName: "Artist B", SongName: "Song 2"}, // all features missing
		fullRecord("Artist C", "Song 3"),
	}
	records[2].Loudness = nil

	res := Prepare(records)

	if len(res.Rows) != 1 {
		t.Fatalf("Prepare kept %d rows, want 1", len(res.Rows))
	}
	if res.Excluded != 2 {
		t.Errorf("Prepare excluded %d records, want 2", res.Excluded)
	}
	row := res.Rows[0]
	if row.ArtistName != "Artist A" || row.SongName != "Song 1" {
		t.Errorf("unexpected surviving row: %+v", row)
	}
}

func TestPrepareNormalizesFlags(t *testing.T) {
	cases := []struct {
		mode, explicit         string
		wantMode, wantExplicit int
	}{
		{"major", "explicit", 1, 1},
		{"minor", "clean", 0, 0},
		{"1", "0", 1, 0},
		{"true", "false", 1, 0},
		{"Major", "TRUE", 1, 1},
	}

	for _, c := range cases {
		rec := fullRecord("Artist", "Song")
		rec.Mode = c.mode
		rec.Explicit = c.explicit

		res := Prepare([]SongRecord{rec})
		if len(res.Rows) != 1 {
			t.Fatalf("Prepare(mode=%q explicit=%q) dropped the row", c.mode, c.explicit)
		}
		if res.Rows[0].Mode != c.wantMode {
			t.Errorf("mode %q normalized to %d, want %d", c.mode, res.Rows[0].Mode, c.wantMode)
		}
		if res.Rows[0].Explicit != c.wantExplicit {
			t.Errorf("explicit %q normalized to %d, want %d", c.explicit, res.Rows[0].Explicit, c.wantExplicit)
		}
	}
}

func TestPrepareRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SongRecord)
	}{
		{"popularity above 100", func(r *SongRecord) { r.Popularity = ptr(101) }},
		{"negative popularity", func(r *SongRecord) { r.Popularity = ptr(-1) }},
		{"fractional popularity", func(r *SongRecord) { r.Popularity = ptr(52.3) }},
		{"valence above 1", func(r *SongRecord) { r.Valence = ptr(1.5) }},
		{"danceability below 0", func(r *SongRecord) { r.Danceability = ptr(-0.1) }},
		{"zero duration", func(r *SongRecord) { r.DurationMs = ptr(0) }},
		{"garbage mode", func(r *SongRecord) { r.Mode = "dorian" }},
		{"empty explicit", func(r *SongRecord) { r.Explicit = "" }},
		{"missing artist", func(r *SongRecord) { r.ArtistName = "" }},
	}

	for _, c := range cases {
		rec := fullRecord("Artist", "Song")
		c.mutate(&rec)

		res := Prepare([]SongRecord{rec})
		if len(res.Rows) != 0 || res.Excluded != 1 {
			t.Errorf("%s: got %d rows, %d excluded; want 0 rows, 1 excluded",
				c.name, len(res.Rows), res.Excluded)
		}
	}
}

func TestPrepareConvertsDuration(t *testing.T) {
	rec := fullRecord("Artist", "Song")
	rec.DurationMs = ptr(215000)

	res := Prepare([]SongRecord{rec})
	if len(res.Rows) != 1 {
		t.Fatal("Prepare dropped a valid row")
	}
	if res.Rows[0].DurationSecs != 215 {
		t.Errorf("DurationSecs = %v, want 215", res.Rows[0].DurationSecs)
	}
}

func TestPrepareDeduplicatesFirstSeen(t *testing.T) {
	first := fullRecord("Artist", "Song")
	first.Popularity = ptr(90)
	second := fullRecord("Artist", "Song")
	second.Popularity = ptr(10)

	res := Prepare([]SongRecord{first, second, fullRecord("Other", "Song")})

	if len(res.Rows) != 2 {
		t.Fatalf("Prepare kept %d rows, want 2", len(res.Rows))
	}
	if res.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", res.Duplicates)
	}
	if res.Rows[0].Popularity != 90 {
		t.Errorf("dedup kept popularity %d, want first-seen value 90", res.Rows[0].Popularity)
	}
}

func TestPrepareIsIdempotent(t *testing.T) {
	records := []SongRecord{
		fullRecord("Artist A", "Song 1"),
		fullRecord("Artist A", "Song 1"),
		fullRecord("Artist B", "Song 2"),
	}

	once := Prepare(records)

	// Feed the cleaned rows back through as raw records.
	again := make([]SongRecord, 0, len(once.Rows))
	for _, row := range once.Rows {
		again = append(again, SongRecord{
			ArtistName:   row.ArtistName,
			SongName:     row.SongName,
			Popularity:   ptr(float64(row.Popularity)),
			Valence:      ptr(row.Valence),
			Danceability: ptr(row.Danceability),
			Mode:         map[int]string{0: "0", 1: "1"}[row.Mode],
			Explicit:     map[int]string{0: "0", 1: "1"}[row.Explicit],
			Loudness:     ptr(row.Loudness),
			DurationMs:   ptr(row.DurationSecs * 1000),
		})
	}
	twice := Prepare(again)

	if twice.Excluded != 0 || twice.Duplicates != 0 {
		t.Errorf("re-preparing a clean dataset dropped rows: %+v", twice)
	}
	if !reflect.DeepEqual(once.Rows, twice.Rows) {
		t.Errorf("re-preparing changed the dataset:\nfirst:  %+v\nsecond: %+v", once.Rows, twice.Rows)
	}
}

func TestPrepareEmptyInput(t *testing.T) {
	res := Prepare(nil)
	if len(res.Rows) != 0 || res.Excluded != 0 || res.Duplicates != 0 {
		t.Errorf("Prepare(nil) = %+v, want empty result", res)
	}
}

func TestFeatureVector(t *testing.T) {
	res := Prepare([]SongRecord{fullRecord("A", "1"), fullRecord("B", "2")})

	for _, name := range Features {
		values := FeatureVector(res.Rows, name)
		if len(values) != 2 {
			t.Errorf("FeatureVector(%q) returned %d values, want 2", name, len(values))
		}
	}

	if FeatureVector(res.Rows, "tempo") != nil {
		t.Error("FeatureVector with unknown name should return nil")
	}
}
