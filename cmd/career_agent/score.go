// Package main implements the career_agent CLI for personality-driven career guidance.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oguzhan/career-compass/internal/scoring"
	"github.com/oguzhan/career-compass/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a personality questionnaire into a trait vector",
	Long:  "Deterministically scores raw questionnaire answers into a Big Five trait vector, applying reverse-keyed remapping and per-category averaging.",
	RunE:  runScore,
}

var (
	scoreResponses string
	scoreOutput    string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResponses, "responses", "r", "", "Path to input QuestionnaireResponse JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output trait vector JSON file (required)")

	if err := scoreCmd.MarkFlagRequired("responses"); err != nil {
		panic(fmt.Sprintf("failed to mark responses flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(scoreResponses)
	if err != nil {
		return fmt.Errorf("failed to read responses file %s: %w", scoreResponses, err)
	}

	var response types.QuestionnaireResponse
	if err := json.Unmarshal(content, &response); err != nil {
		return fmt.Errorf("failed to unmarshal responses JSON: %w", err)
	}

	traits, err := scoring.ScoreResponse(response)
	if err != nil {
		return fmt.Errorf("failed to score responses: %w", err)
	}

	if err := writeJSON(scoreOutput, traits); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully scored %d trait categories to %s\n", len(traits), scoreOutput)

	return nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// parent directory when needed.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}
