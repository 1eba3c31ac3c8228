// Package guidance provides the high-level orchestration for the career
// guidance process: scoring, ranking, adaptation, and advisory generation.
package guidance

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/oguzhan/career-compass/internal/adaptation"
	"github.com/oguzhan/career-compass/internal/advisor"
	"github.com/oguzhan/career-compass/internal/catalog"
	"github.com/oguzhan/career-compass/internal/llm"
	"github.com/oguzhan/career-compass/internal/logger"
	"github.com/oguzhan/career-compass/internal/observability"
	"github.com/oguzhan/career-compass/internal/ranking"
	"github.com/oguzhan/career-compass/internal/scoring"
	"github.com/oguzhan/career-compass/internal/types"
)

// Pipeline step identifiers emitted in progress events.
const (
	StepTraitVector = "trait_vector"
	StepRankedList  = "ranked_list"
	StepAdaptation  = "adaptation_profile"
	StepAdvisory    = "advisory_outcome"
)

// Pipeline step categories emitted in progress events.
const (
	CategoryScoring    = "scoring"
	CategoryRanking    = "ranking"
	CategoryAdaptation = "adaptation"
	CategoryAdvisory   = "advisory"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	// Responses holds raw questionnaire answers. Mutually exclusive with
	// Traits; exactly one must be provided.
	Responses *types.QuestionnaireResponse
	// Traits is a pre-scored trait vector, used when the questionnaire step
	// already ran.
	Traits types.TraitVector

	// Message is the advisory question. Empty skips the advisory step.
	Message  string
	History  []string
	Category types.AdvisoryCategory

	// CatalogPath points to a JSON field catalog. Empty means the built-in
	// catalog.
	CatalogPath string
	// FieldID pins the advisory to a specific field instead of the top
	// ranked one.
	FieldID string

	Client    llm.Client
	Weights   map[string]float64
	Tolerance float64
	TopN      int
	Limiter   *rate.Limiter
	Logger    *zap.Logger
	Verbose   bool
	Now       func() time.Time
	// MaxAttempts bounds the advisory retry loop. Zero means the advisor
	// default.
	MaxAttempts int
	// HistoryWindow bounds how many trailing history messages enter the
	// advisory payload. Zero means the advisor default.
	HistoryWindow int
	OnProgress    ProgressCallback
}

// Result holds the artifacts produced by a pipeline run.
type Result struct {
	RunID      string                  `json:"run_id"`
	Traits     types.TraitVector       `json:"traits"`
	Ranked     types.RankedFields      `json:"ranked"`
	Adaptation types.AdaptationProfile `json:"adaptation"`
	Outcome    *types.AdvisoryOutcome  `json:"outcome,omitempty"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// Run orchestrates the full guidance pipeline. Scoring runs first; ranking
// and adaptation are independent of each other and run concurrently; the
// advisory step consumes both.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	log := logger.OrNop(opts.Logger)
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.NewString()

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	// Step 1: resolve the trait vector.
	traits := opts.Traits
	if opts.Responses != nil {
		if !traits.IsEmpty() {
			return nil, fmt.Errorf("responses and traits are mutually exclusive")
		}
		scored, err := scoring.ScoreResponse(*opts.Responses)
		if err != nil {
			return nil, fmt.Errorf("scoring questionnaire failed: %w", err)
		}
		traits = scored
	}
	if traits.IsEmpty() {
		return nil, fmt.Errorf("no questionnaire responses or trait vector provided")
	}
	if opts.Verbose {
		printer.PrintTraitVector(traits)
	}
	emitProgress(&opts, runID, StepTraitVector, CategoryScoring,
		fmt.Sprintf("Scored %d trait categories", len(traits)), traits)

	// Step 2: load the field catalog.
	fields, err := loadCatalog(opts.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading field catalog failed: %w", err)
	}

	// Ranking and adaptation only read the trait vector; run them in
	// parallel.
	g, _ := errgroup.WithContext(ctx)

	// Each goroutine writes its own result variable; g.Wait() orders the
	// reads after the writes.
	var ranked []types.CompatibilityResult
	var profile types.AdaptationProfile

	g.Go(func() error {
		ranked = ranking.Rank(traits, fields, ranking.Options{
			Weights:   opts.Weights,
			Tolerance: opts.Tolerance,
			TopN:      opts.TopN,
			Logger:    log,
		})
		return nil
	})

	g.Go(func() error {
		profile = adaptation.Build(traits, opts.History, now())
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintRankedFields(ranked)
		printer.PrintAdaptationProfile(profile)
	}
	emitProgress(&opts, runID, StepRankedList, CategoryRanking,
		fmt.Sprintf("Ranked %d career fields", len(ranked)), ranked)
	emitProgress(&opts, runID, StepAdaptation, CategoryAdaptation,
		fmt.Sprintf("Built adaptation profile for %s", profile.Period), profile)

	result := &Result{
		RunID:      runID,
		Traits:     traits,
		Ranked:     types.RankedFields{Ranked: ranked},
		Adaptation: profile,
	}

	// Step 3: advisory, only when a message was given.
	if opts.Message == "" {
		return result, nil
	}
	if opts.Client == nil {
		return nil, fmt.Errorf("advisory step requires a model client")
	}

	field, err := resolveField(fields, ranked, opts.FieldID)
	if err != nil {
		return nil, err
	}

	orchestrator := advisor.New(opts.Client, advisor.Options{
		Limiter:       opts.Limiter,
		Logger:        log,
		Now:           now,
		MaxAttempts:   opts.MaxAttempts,
		HistoryWindow: opts.HistoryWindow,
	})
	outcome, err := orchestrator.Advise(ctx, advisor.Request{
		Message:  opts.Message,
		FieldID:  field.ID,
		Field:    field,
		User:     traits,
		History:  opts.History,
		Category: opts.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("advisory request failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintOutcome(&outcome)
	}
	emitProgress(&opts, runID, StepAdvisory, CategoryAdvisory,
		fmt.Sprintf("Produced %s advisory (%d attempts)", outcome.Source, outcome.Attempts), outcome)

	result.Outcome = &outcome
	return result, nil
}

// loadCatalog returns the built-in catalog or one loaded from disk.
func loadCatalog(path string) ([]types.FieldProfile, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// resolveField picks the advisory target: an explicit field ID wins,
// otherwise the top ranked field, otherwise no field context at all.
func resolveField(fields []types.FieldProfile, ranked []types.CompatibilityResult, fieldID string) (*types.FieldProfile, error) {
	if fieldID != "" {
		field := catalog.ByID(fields, fieldID)
		if field == nil {
			return nil, fmt.Errorf("unknown field id %q", fieldID)
		}
		return field, nil
	}
	if len(ranked) > 0 {
		if field := catalog.ByID(fields, ranked[0].FieldID); field != nil {
			return field, nil
		}
	}
	return &types.FieldProfile{}, nil
}
