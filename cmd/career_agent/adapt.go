package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/oguzhan/career-compass/internal/adaptation"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Build an adaptation profile from a trait vector",
	Long:  "Derives communication directives, time-of-day framing and learning preferences from a scored trait vector and recent conversation history.",
	RunE:  runAdapt,
}

var (
	adaptTraits  string
	adaptHistory []string
	adaptOutput  string
)

func init() {
	adaptCmd.Flags().StringVarP(&adaptTraits, "traits", "t", "", "Path to input trait vector JSON file (required)")
	adaptCmd.Flags().StringArrayVar(&adaptHistory, "history", nil, "Recent user message, repeatable")
	adaptCmd.Flags().StringVarP(&adaptOutput, "out", "o", "", "Path to output AdaptationProfile JSON file (prints to stdout when omitted)")

	if err := adaptCmd.MarkFlagRequired("traits"); err != nil {
		panic(fmt.Sprintf("failed to mark traits flag as required: %v", err))
	}

	rootCmd.AddCommand(adaptCmd)
}

func runAdapt(_ *cobra.Command, _ []string) error {
	traits, err := loadTraits(adaptTraits)
	if err != nil {
		return err
	}

	profile := adaptation.Build(traits, adaptHistory, time.Now())

	if adaptOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, adaptation.Render(profile))
		return nil
	}

	if err := writeJSON(adaptOutput, profile); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote adaptation profile to %s\n", adaptOutput)

	return nil
}
