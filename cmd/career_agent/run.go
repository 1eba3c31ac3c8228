package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/oguzhan/career-compass/internal/config"
	"github.com/oguzhan/career-compass/internal/guidance"
	"github.com/oguzhan/career-compass/internal/llm"
	"github.com/oguzhan/career-compass/internal/logger"
	"github.com/oguzhan/career-compass/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full guidance pipeline end-to-end",
	Long: `Orchestrates the entire guidance process: scoring -> ranking + adaptation (parallel) -> advisory.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runResponses  string
	runTraits     string
	runMessage    string
	runHistory    []string
	runFieldID    string
	runCatalog    string
	runTopN       int
	runAPIKey     string
	runVerbose    bool
	runOutput     string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResponses, "responses", "r", "", "Path to QuestionnaireResponse JSON file (mutually exclusive with --traits)")
	runCommand.Flags().StringVarP(&runTraits, "traits", "t", "", "Path to pre-scored trait vector JSON file (mutually exclusive with --responses)")
	runCommand.Flags().StringVarP(&runMessage, "message", "m", "", "Career question to answer (optional; skips the advisory step when omitted)")
	runCommand.Flags().StringArrayVar(&runHistory, "history", nil, "Recent user message, repeatable")
	runCommand.Flags().StringVarP(&runFieldID, "field", "f", "", "Field ID to pin the advisory to (defaults to the top ranked field)")
	runCommand.Flags().StringVarP(&runCatalog, "catalog", "c", "", "Path to field catalog JSON file")
	runCommand.Flags().IntVar(&runTopN, "top", 0, "Keep only the top N ranked fields (0 keeps all)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().StringVarP(&runOutput, "out", "o", "", "Path to output Result JSON file (optional)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = runCatalog
	}
	if cmd.Flags().Changed("top") {
		cfg.TopN = runTopN
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		TopN:              5,
		RequestsPerMinute: 30,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if runResponses == "" && runTraits == "" {
		return fmt.Errorf("either --responses or --traits must be provided")
	}
	if runResponses != "" && runTraits != "" {
		return fmt.Errorf("--responses and --traits are mutually exclusive; provide only one")
	}

	opts := guidance.RunOptions{
		Message:       runMessage,
		History:       runHistory,
		FieldID:       runFieldID,
		CatalogPath:   cfg.Catalog,
		Weights:       cfg.Weights,
		Tolerance:     cfg.Tolerance,
		TopN:          cfg.TopN,
		Verbose:       cfg.Verbose,
		MaxAttempts:   cfg.MaxAttempts,
		HistoryWindow: cfg.HistoryWindow,
	}

	if runResponses != "" {
		content, err := os.ReadFile(runResponses)
		if err != nil {
			return fmt.Errorf("failed to read responses file %s: %w", runResponses, err)
		}
		var response types.QuestionnaireResponse
		if err := json.Unmarshal(content, &response); err != nil {
			return fmt.Errorf("failed to unmarshal responses JSON: %w", err)
		}
		opts.Responses = &response
	} else {
		traits, err := loadTraits(runTraits)
		if err != nil {
			return err
		}
		opts.Traits = traits
	}

	// Step 5: API Key handling (only needed for the advisory step)
	if runMessage != "" {
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
		}

		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts.Client = client

		if cfg.RequestsPerMinute > 0 {
			opts.Limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute/60), 1)
		}
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	opts.Logger = log

	result, err := guidance.Run(ctx, opts)
	if err != nil {
		return err
	}

	if result.Outcome != nil {
		_, _ = fmt.Fprintln(os.Stdout, result.Outcome.Text)
	}

	if runOutput != "" {
		if err := writeJSON(runOutput, result); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote pipeline result to %s\n", runOutput)
	}

	return nil
}
