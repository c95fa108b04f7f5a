// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/elfaka/site/models"
	"github.com/elfaka/site/termview"
)

// renderCmd renders an analysis JSON file.
var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Render an analysis JSON file.",
	Long: `Render the JSON returned by GET /api/forms/{formId}/analyze.

Examples:
  # Render a saved analysis
  formstat render analysis.json

  # Read from stdin and show everything
  curl -s ... | formstat render - --expand

  # Only questions about satisfaction
  formstat render analysis.json --filter satisfaction`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := viewOptions()
		if err != nil {
			return err
		}
		result, err := readResultFile(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		return termview.Render(cmd.OutOrStdout(), result, opts)
	},
}

// readResultFile reads an analysis from path, or from stdin when path is "-".
func readResultFile(path string, stdin io.Reader) (models.AnalyzeResult, error) {
	if path == "-" {
		return decodeResult(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return models.AnalyzeResult{}, fmt.Errorf("open analysis: %w", err)
	}
	defer func() { _ = f.Close() }()
	return decodeResult(f)
}

func decodeResult(r io.Reader) (models.AnalyzeResult, error) {
	var result models.AnalyzeResult
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return models.AnalyzeResult{}, fmt.Errorf("decode analysis: %w", err)
	}
	return result, nil
}
