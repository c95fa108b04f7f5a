// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elfaka/site/models"
	"github.com/elfaka/site/survey"
)

// samplesCmd prints the text answers of one question one per line, ready to
// paste into a spreadsheet column.
var samplesCmd = &cobra.Command{
	Use:   "samples FILE",
	Short: "Print a question's text samples for pasting into a spreadsheet.",
	Long: `Print the text samples of one question, one per line.

Examples:
  formstat samples analysis.json --question 5a1b2c3d | pbcopy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := readResultFile(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		return writeSamples(cmd.OutOrStdout(), result, viper.GetString("question"), viper.GetInt("max"))
	},
}

func writeSamples(w io.Writer, result models.AnalyzeResult, questionID string, max int) error {
	if questionID == "" {
		return fmt.Errorf("--question is required")
	}
	for _, s := range result.Summaries {
		if s.QuestionID != questionID {
			continue
		}
		if s.Text == nil {
			return fmt.Errorf("question %s has no text answers", questionID)
		}
		out := survey.ExcelClipboard(s.Text.Samples, max)
		if out == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, out)
		return err
	}
	return fmt.Errorf("question %s not found", questionID)
}
