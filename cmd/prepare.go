package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lcarnegie/chart-audio-tools/internal/dataset"
	"github.com/lcarnegie/chart-audio-tools/internal/store"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Builds the analysis dataset from raw records",
	Long: `Cleans the ingested raw records into the analysis dataset: drops
records with missing or invalid fields, normalizes mode and explicit to
0/1, converts duration to seconds, and deduplicates songs first-seen-wins.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := prepare(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(prepareCmd)
}

func prepare(out io.Writer, dbPath string) error {
	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	records, err := db.LoadRawRecords()
	if err != nil {
		return fmt.Errorf("loading raw records: %w", err)
	}

	res := dataset.Prepare(records)

	if err := db.ReplaceAnalysisRows(res.Rows); err != nil {
		return fmt.Errorf("storing analysis rows: %w", err)
	}

	fmt.Fprintf(out, "Prepared %d rows from %d raw records (%d excluded, %d duplicates)\n",
		len(res.Rows), len(records), res.Excluded, res.Duplicates)
	return nil
}
