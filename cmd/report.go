package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lcarnegie/chart-audio-tools/internal/report"
)

var reportBins int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generates the full analysis report",
	Long: `Computes descriptive statistics for every feature, fits the
popularity regression, and writes the combined report as YAML. Fails
if the regression cannot be fit.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntVar(&reportBins, "bins", 10, "Number of histogram bins")
}

func runReport() error {
	rows, err := loadDataset(viper.GetString("database"))
	if err != nil {
		return err
	}

	rep, err := report.Generate(rows, reportBins)
	if err != nil {
		return fmt.Errorf("analyzing data: %w", err)
	}

	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	err = encoder.Encode(rep)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}
