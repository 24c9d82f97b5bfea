package dataset

// Feature names as they appear in the persisted dataset and in reports.
const (
	FeaturePopularity   = "popularity"
	FeatureValence      = "valence"
	FeatureDanceability = "danceability"
	FeatureMode         = "mode"
	FeatureExplicit     = "explicit"
	FeatureLoudness     = "loudness"
	FeatureDuration     = "duration_secs"
)

// Features lists the analyzed features in report order.
var Features = []string{
	FeaturePopularity,
	FeatureValence,
	FeatureDanceability,
	FeatureMode,
	FeatureExplicit,
	FeatureLoudness,
	FeatureDuration,
}

// Predictors lists the regression design columns in model order. The
// intercept is not a feature and is handled by the regression engine.
var Predictors = []string{
	FeatureValence,
	FeatureDanceability,
	FeatureMode,
	FeatureExplicit,
	FeatureLoudness,
	FeatureDuration,
}

// BinaryFeatures are the features that take only the values 0 and 1.
var BinaryFeatures = map[string]bool{
	FeatureMode:     true,
	FeatureExplicit: true,
}

// SongRecord is a raw per-song record as delivered by the provider.
// Numeric fields are nil when the provider omitted them; mode and
// explicit arrive as free-form strings ("major", "1", "true", ...).
// Duration arrives in milliseconds.
type SongRecord struct {
	ArtistName   string
	SongName     string
	Popularity   *float64
	Valence      *float64
	Danceability *float64
	Mode         string
	Explicit     string
	Loudness     *float64
	DurationMs   *float64
}

// AnalysisRow is one cleaned row of the analysis dataset. All eight
// fields are present; rows that would violate that are dropped during
// preparation.
type AnalysisRow struct {
	ArtistName   string  `yaml:"artist_name"`
	SongName     string  `yaml:"song_name"`
	Popularity   int     `yaml:"popularity"`
	Valence      float64 `yaml:"valence"`
	Danceability float64 `yaml:"danceability"`
	Mode         int     `yaml:"mode"`
	Explicit     int     `yaml:"explicit"`
	Loudness     float64 `yaml:"loudness"`
	DurationSecs float64 `yaml:"duration_secs"`
}

// Feature returns the named feature value for the row. The second
// return is false for unknown names.
func (r AnalysisRow) Feature(name string) (float64, bool) {
	switch name {
	case FeaturePopularity:
		return float64(r.Popularity), true
	case FeatureValence:
		return r.Valence, true
	case FeatureDanceability:
		return r.Danceability, true
	case FeatureMode:
		return float64(r.Mode), true
	case FeatureExplicit:
		return float64(r.Explicit), true
	case FeatureLoudness:
		return r.Loudness, true
	case FeatureDuration:
		return r.DurationSecs, true
	}
	return 0, false
}

// FeatureVector extracts one feature column across rows, aligned with
// the row order.
func FeatureVector(rows []AnalysisRow, name string) []float64 {
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		v, ok := r.Feature(name)
		if !ok {
			return nil
		}
		out = append(out, v)
	}
	return out
}
