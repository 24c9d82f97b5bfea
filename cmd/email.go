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
	"net/smtp"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lcarnegie/chart-audio-tools/internal/report"
)

type SendEmailConfig struct {
	DbPath       string
	From         string
	To           string
	Bins         int
	DryRun       bool
	SMTPUsername string
	SMTPPassword string
}

var emailCmd = &cobra.Command{
	Use:   "email <address>",
	Short: "Emails the analysis report",
	Long:  `Generates the full report and emails it as HTML to the specified address.`,
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		config := SendEmailConfig{
			DbPath:       viper.GetString("database"),
			From:         viper.GetString("from"),
			To:           args[0],
			Bins:         viper.GetInt("bins"),
			DryRun:       viper.GetBool("dryRun"),
			SMTPUsername: viper.GetString("smtp_username"),
			SMTPPassword: viper.GetString("smtp_password"),
		}
		err := sendEmail(config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	var dryRun bool
	emailCmd.Flags().BoolVarP(&dryRun, "dry_run", "n", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))

	var bins int
	emailCmd.Flags().IntVar(&bins, "bins", 10, "Number of histogram bins")
	viper.BindPFlag("bins", emailCmd.Flags().Lookup("bins"))
}

func sendEmail(config SendEmailConfig) error {
	rows, err := loadDataset(config.DbPath)
	if err != nil {
		return err
	}

	rep, err := report.Generate(rows, config.Bins)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	subject := fmt.Sprintf("Audio feature report %s", time.Now().Format("2006-01-02"))
	out := report.HTML(rep)

	if config.DryRun {
		fmt.Printf("Would have sent email: \nsubject: %s\n%s\n", subject, out)
		return nil
	}

	if config.SMTPUsername == "" || config.SMTPPassword == "" {
		return fmt.Errorf("smtp_username and smtp_password must be set in order to send emails")
	}

	msg := "From: chart-audio-tools <" + config.From + ">\r\n" +
		"To: " + config.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		out

	auth := smtp.PlainAuth("", config.SMTPUsername, config.SMTPPassword, "smtp.gmail.com")
	err = smtp.SendMail("smtp.gmail.com:587", auth, config.From, []string{config.To}, []byte(msg))
	if err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}

	return nil
}
