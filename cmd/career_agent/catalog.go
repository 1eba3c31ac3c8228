package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oguzhan/career-compass/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List or validate the field catalog",
	Long:  "Lists the built-in career-field catalog, or validates a caller-authored JSON catalog against the field profile schema.",
	RunE:  runCatalogCmd,
}

var catalogValidatePath string

func init() {
	catalogCmd.Flags().StringVar(&catalogValidatePath, "validate", "", "Path to a catalog JSON file to validate instead of listing the built-in catalog")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalogCmd(_ *cobra.Command, _ []string) error {
	if catalogValidatePath != "" {
		fields, err := catalog.Load(catalogValidatePath)
		if err != nil {
			return fmt.Errorf("catalog validation failed: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Catalog %s is valid (%d fields)\n", catalogValidatePath, len(fields))
		return nil
	}

	for _, field := range catalog.Default() {
		_, _ = fmt.Fprintf(os.Stdout, "%-24s %-28s demand: %s\n", field.ID, field.Name, field.DemandLevel)
	}

	return nil
}
