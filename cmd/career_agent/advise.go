package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/oguzhan/career-compass/internal/advisor"
	"github.com/oguzhan/career-compass/internal/catalog"
	"github.com/oguzhan/career-compass/internal/llm"
	"github.com/oguzhan/career-compass/internal/logger"
	"github.com/oguzhan/career-compass/internal/types"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Answer a career question with model-backed advice",
	Long: `Builds a personalized advisory payload from the user's trait vector and chosen field, sends it to the model with bounded retries, and falls back to templated guidance when the model is unavailable.

The answer is printed to stdout; use --out to also write the full outcome JSON.`,
	RunE: runAdvise,
}

var (
	adviseMessage  string
	adviseTraits   string
	adviseField    string
	adviseCatalog  string
	adviseHistory  []string
	adviseCategory string
	adviseAPIKey   string
	adviseVerbose  bool
	adviseOutput   string
)

func init() {
	adviseCmd.Flags().StringVarP(&adviseMessage, "message", "m", "", "Career question to answer (required)")
	adviseCmd.Flags().StringVarP(&adviseTraits, "traits", "t", "", "Path to input trait vector JSON file (required)")
	adviseCmd.Flags().StringVarP(&adviseField, "field", "f", "", "Field ID the advice should target")
	adviseCmd.Flags().StringVarP(&adviseCatalog, "catalog", "c", "", "Path to field catalog JSON file (optional, defaults to the built-in catalog)")
	adviseCmd.Flags().StringArrayVar(&adviseHistory, "history", nil, "Recent user message, repeatable")
	adviseCmd.Flags().StringVar(&adviseCategory, "category", "", "Advisory category: casual, career, education or technical")
	adviseCmd.Flags().BoolVarP(&adviseVerbose, "verbose", "v", false, "Print detailed debug information")
	adviseCmd.Flags().StringVarP(&adviseOutput, "out", "o", "", "Path to output AdvisoryOutcome JSON file (optional)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	adviseCmd.Flags().StringVar(&adviseAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	if err := adviseCmd.MarkFlagRequired("message"); err != nil {
		panic(fmt.Sprintf("failed to mark message flag as required: %v", err))
	}
	if err := adviseCmd.MarkFlagRequired("traits"); err != nil {
		panic(fmt.Sprintf("failed to mark traits flag as required: %v", err))
	}

	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	traits, err := loadTraits(adviseTraits)
	if err != nil {
		return err
	}

	fields := catalog.Default()
	if adviseCatalog != "" {
		fields, err = catalog.Load(adviseCatalog)
		if err != nil {
			return fmt.Errorf("failed to load field catalog: %w", err)
		}
	}

	var field *types.FieldProfile
	if adviseField != "" {
		field = catalog.ByID(fields, adviseField)
		if field == nil {
			return fmt.Errorf("unknown field id %q", adviseField)
		}
	}

	apiKey := adviseAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	log, err := logger.New(adviseVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	orchestrator := advisor.New(client, advisor.Options{
		Limiter: rate.NewLimiter(rate.Limit(1), 3),
		Logger:  log,
	})

	outcome, err := orchestrator.Advise(ctx, advisor.Request{
		Message:  adviseMessage,
		FieldID:  adviseField,
		Field:    field,
		User:     traits,
		History:  adviseHistory,
		Category: types.AdvisoryCategory(adviseCategory),
	})
	if err != nil {
		return fmt.Errorf("advisory request failed: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, outcome.Text)

	if adviseOutput != "" {
		if err := writeJSON(adviseOutput, outcome); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote advisory outcome to %s\n", adviseOutput)
	}

	return nil
}
