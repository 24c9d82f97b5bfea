package report

import (
	"fmt"
	"time"

	"github.com/lcarnegie/chart-audio-tools/internal/dataset"
	"github.com/lcarnegie/chart-audio-tools/internal/describe"
	"github.com/lcarnegie/chart-audio-tools/internal/regression"
)

// Report is the top-level structure consumed by report rendering.
type Report struct {
	Metadata   Metadata           `yaml:"metadata"`
	Features   []FeatureSummary   `yaml:"features"`
	Regression *regression.Result `yaml:"regression"`
}

type Metadata struct {
	GeneratedDate string `yaml:"generated_date"`
	Rows          int    `yaml:"rows"`
}

// FeatureSummary holds the descriptive analytics for one feature.
// Binary features carry category counts instead of a histogram.
type FeatureSummary struct {
	Name       string                   `yaml:"name"`
	Summary    describe.Summary         `yaml:"summary"`
	Histogram  []describe.Bin           `yaml:"histogram,omitempty"`
	Categories []describe.CategoryCount `yaml:"categories,omitempty"`
}

// Generate computes the full report for the dataset: per-feature
// descriptive statistics plus the fitted regression. A failed
// regression fails the report; no document with fabricated numbers is
// produced.
func Generate(rows []dataset.AnalysisRow, bins int) (*Report, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("insufficient data: dataset is empty")
	}

	rep := &Report{
		Metadata: Metadata{
			GeneratedDate: time.Now().Format("2006-01-02"),
			Rows:          len(rows),
		},
	}

	for _, name := range dataset.Features {
		values := dataset.FeatureVector(rows, name)
		fs := FeatureSummary{
			Name:    name,
			Summary: describe.Summarize(values),
		}
		if dataset.BinaryFeatures[name] {
			fs.Categories = describe.Categories(values)
		} else {
			fs.Histogram = describe.Histogram(values, bins)
		}
		rep.Features = append(rep.Features, fs)
	}

	res, err := regression.Fit(rows)
	if err != nil {
		return nil, fmt.Errorf("fitting model: %w", err)
	}
	rep.Regression = res

	return rep, nil
}
