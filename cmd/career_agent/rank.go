package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oguzhan/career-compass/internal/catalog"
	"github.com/oguzhan/career-compass/internal/ranking"
	"github.com/oguzhan/career-compass/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank career fields against a trait vector",
	Long:  "Deterministically ranks catalog career fields against a scored trait vector, producing a RankedFields JSON sorted by compatibility score.",
	RunE:  runRank,
}

var (
	rankTraits  string
	rankCatalog string
	rankTopN    int
	rankOutput  string
)

func init() {
	rankCmd.Flags().StringVarP(&rankTraits, "traits", "t", "", "Path to input trait vector JSON file (required)")
	rankCmd.Flags().StringVarP(&rankCatalog, "catalog", "c", "", "Path to field catalog JSON file (optional, defaults to the built-in catalog)")
	rankCmd.Flags().IntVar(&rankTopN, "top", 0, "Keep only the top N results (0 keeps all)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output RankedFields JSON file (required)")

	if err := rankCmd.MarkFlagRequired("traits"); err != nil {
		panic(fmt.Sprintf("failed to mark traits flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	traits, err := loadTraits(rankTraits)
	if err != nil {
		return err
	}

	fields := catalog.Default()
	if rankCatalog != "" {
		fields, err = catalog.Load(rankCatalog)
		if err != nil {
			return fmt.Errorf("failed to load field catalog: %w", err)
		}
	}

	results := ranking.Rank(traits, fields, ranking.Options{TopN: rankTopN})

	ranked := types.RankedFields{Ranked: results}
	if err := writeJSON(rankOutput, ranked); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d fields to %s\n", len(results), rankOutput)

	return nil
}

// loadTraits reads a trait vector JSON file.
func loadTraits(path string) (types.TraitVector, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read traits file %s: %w", path, err)
	}

	var traits types.TraitVector
	if err := json.Unmarshal(content, &traits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal traits JSON: %w", err)
	}
	if traits.IsEmpty() {
		return nil, fmt.Errorf("traits file %s contains no trait categories", path)
	}

	return traits, nil
}
