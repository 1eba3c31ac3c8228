// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/oguzhan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTraitVector outputs a human-readable summary of a scored trait vector.
func (p *Printer) PrintTraitVector(vector types.TraitVector) {
	if vector.IsEmpty() {
		return
	}

	var sb strings.Builder
	for _, category := range vector.Categories() {
		sb.WriteString(fmt.Sprintf("%-20s %.1f / 5.0\n", category, vector[category]))
	}

	p.printBox("TRAIT VECTOR", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedFields outputs the top N compatibility results with scores and
// strength/weakness annotations.
func (p *Printer) PrintRankedFields(results []types.CompatibilityResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total fields ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.FieldID))
		sb.WriteString(fmt.Sprintf("    Score: %.1f\n", result.Score))
		if len(result.Strengths) > 0 {
			strengths := strings.Join(result.Strengths, ", ")
			if len(strengths) > 40 {
				strengths = strengths[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Strengths: %s\n", strengths))
		}
		if len(result.Weaknesses) > 0 {
			weaknesses := strings.Join(result.Weaknesses, ", ")
			if len(weaknesses) > 40 {
				weaknesses = weaknesses[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Weaknesses: %s\n", weaknesses))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more fields", len(results)-maxItemsToShow))
	}

	p.printBox("TOP CAREER MATCHES", sb.String())
}

// PrintAdaptationProfile outputs the derived adaptation directives and
// preferences.
func (p *Printer) PrintAdaptationProfile(profile types.AdaptationProfile) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Period:   %s (energy: %s)\n", profile.Period, profile.EnergyLevel))
	sb.WriteString(fmt.Sprintf("Detail:   %s\n", profile.DetailPreference))
	sb.WriteString(fmt.Sprintf("Learning: %s\n", profile.LearningStyle))

	if len(profile.Directives) > 0 {
		sb.WriteString("\nDirectives:\n")
		count := min(len(profile.Directives), maxItemsToShow)
		for i := 0; i < count; i++ {
			directive := profile.Directives[i]
			text := directive.Text
			if len(text) > 45 {
				text = text[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", directive.Dimension, text))
		}
	}

	p.printBox("ADAPTATION PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutcome outputs the advisory outcome with its source tag.
func (p *Printer) PrintOutcome(outcome *types.AdvisoryOutcome) {
	if outcome == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", outcome.Source))
	sb.WriteString(fmt.Sprintf("Topic:    %s\n", outcome.Topic))
	sb.WriteString(fmt.Sprintf("Attempts: %d\n\n", outcome.Attempts))

	text := outcome.Text
	if len(text) > 200 {
		text = text[:197] + "..."
	}
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(line + "\n")
	}

	p.printBox("ADVISORY OUTCOME", strings.TrimSuffix(sb.String(), "\n"))
}
