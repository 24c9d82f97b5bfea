/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lcarnegie/chart-audio-tools/internal/dataset"
	"github.com/lcarnegie/chart-audio-tools/internal/describe"
	"github.com/lcarnegie/chart-audio-tools/internal/report"
	"github.com/lcarnegie/chart-audio-tools/internal/store"
)

var describeBins int
var describeFeature string

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Prints descriptive statistics for the dataset",
	Long: `Prints summary statistics for each analyzed feature, with histogram
bin counts for continuous features and category counts for binary ones.
Use --feature to restrict the distribution output to one feature.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printDescribe(os.Stdout, viper.GetString("database"), describeFeature, describeBins)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().IntVar(&describeBins, "bins", 10, "Number of histogram bins")
	describeCmd.Flags().StringVar(&describeFeature, "feature", "", "Only show the distribution for this feature")
}

func printDescribe(out io.Writer, dbPath string, feature string, bins int) error {
	rows, err := loadDataset(dbPath)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("insufficient data: dataset is empty - run ingest and prepare first")
	}
	if feature != "" {
		known := false
		for _, name := range dataset.Features {
			if name == feature {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown feature %q", feature)
		}
	}

	var summaries []report.FeatureSummary
	for _, name := range dataset.Features {
		values := dataset.FeatureVector(rows, name)
		summaries = append(summaries, report.FeatureSummary{
			Name:    name,
			Summary: describe.Summarize(values),
		})
	}
	fmt.Fprint(out, report.SummaryTable(summaries))
	fmt.Fprintf(out, "%d rows\n\n", len(rows))

	for _, name := range dataset.Features {
		if feature != "" && name != feature {
			continue
		}
		values := dataset.FeatureVector(rows, name)
		fmt.Fprintf(out, "## %s\n", name)
		if dataset.BinaryFeatures[name] {
			fmt.Fprint(out, report.CategoryTable(describe.Categories(values)))
		} else {
			fmt.Fprint(out, report.HistogramTable(describe.Histogram(values, bins)))
		}
		fmt.Fprintln(out)
	}

	return nil
}

func loadDataset(dbPath string) ([]dataset.AnalysisRow, error) {
	db, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.LoadAnalysisRows()
	if err != nil {
		return nil, fmt.Errorf("loading analysis rows: %w", err)
	}
	return rows, nil
}
