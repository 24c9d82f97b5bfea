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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lcarnegie/chart-audio-tools/internal/dataset"
	"github.com/lcarnegie/chart-audio-tools/internal/source"
	"github.com/lcarnegie/chart-audio-tools/internal/store"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <csv-path-or-url>",
	Short: "Loads raw song records from the provider",
	Long: `Reads raw per-song feature records from a provider CSV export, or
fetches them from a provider HTTP endpoint, and stores them in the local
SQLite database. Run 'prepare' afterwards to build the analysis dataset.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := ingest(viper.GetString("database"), args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func ingest(dbPath string, from string) error {
	var records []dataset.SongRecord
	var err error

	if strings.HasPrefix(from, "http://") || strings.HasPrefix(from, "https://") {
		fetcher := source.NewFetcher(from)
		records, err = fetcher.Fetch(context.Background())
		if err != nil {
			return fmt.Errorf("fetching records: %w", err)
		}
	} else {
		records, err = source.ReadCSV(from)
		if err != nil {
			return fmt.Errorf("reading records: %w", err)
		}
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceRawRecords(records); err != nil {
		return fmt.Errorf("storing records: %w", err)
	}

	fmt.Printf("Ingested %d raw records from %s\n", len(records), from)
	return nil
}
