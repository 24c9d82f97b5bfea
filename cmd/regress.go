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

	"github.com/lcarnegie/chart-audio-tools/internal/regression"
	"github.com/lcarnegie/chart-audio-tools/internal/report"
)

var regressCmd = &cobra.Command{
	Use:   "regress",
	Short: "Fits the popularity regression and saves the model",
	Long: `Fits an ordinary least squares model of popularity on valence,
danceability, mode, explicit, loudness, and duration, saves the model
artifact, and prints the coefficient table.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := regress(os.Stdout, viper.GetString("database"), viper.GetString("model"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(regressCmd)
}

func regress(out io.Writer, dbPath string, modelPath string) error {
	rows, err := loadDataset(dbPath)
	if err != nil {
		return err
	}

	res, err := regression.Fit(rows)
	if err != nil {
		return fmt.Errorf("fitting model: %w", err)
	}

	if err := regression.Save(modelPath, res); err != nil {
		return err
	}

	fmt.Fprint(out, report.CoefficientTable(res))
	fmt.Fprintf(out, "Saved model to %s\n", modelPath)
	return nil
}
