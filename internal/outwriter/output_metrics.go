package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/bowen31337/prdscope/schema"
)

// PrintSizingGuidelines displays the formal definitions of the sizing methodology.
// This is a static display that does not require any document.
func PrintSizingGuidelines(model *schema.SizingGuidelines, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return printGuidelinesJSON(model, cfg)
	case schema.CSVOut:
		return printGuidelinesCSV(model, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printGuidelinesText(w, model, cfg)
		}, "Wrote text")
	}
}

// printGuidelinesText displays the methodology in human-readable text format.
func printGuidelinesText(w io.Writer, model *schema.SizingGuidelines, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n", model.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "=======================\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", model.Description); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Divisor: %.1f, per-factor cap: %d\n\n", model.Divisor, model.FactorCap); err != nil {
		return err
	}

	for _, factor := range model.Factors {
		if _, err := fmt.Fprintf(w, "%s (weight %.1f)\n", factorDisplayNames[factor.Key], factor.Weight); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   %s\n", factor.Purpose); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nCategories\n"); err != nil {
		return err
	}
	for _, cat := range model.Categories {
		label := categoryLabel(cat.Category, cfg)
		if _, err := fmt.Fprintf(w, "%s: score %s, stories %s, iterations %s\n", label, cat.ScoreBand, cat.Stories, cat.Iterations); err != nil {
			return err
		}
	}

	return nil
}

// printGuidelinesJSON displays the methodology in JSON format.
func printGuidelinesJSON(model *schema.SizingGuidelines, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, model)
	}, "Wrote JSON")
}

// printGuidelinesCSV displays the methodology in CSV format.
func printGuidelinesCSV(model *schema.SizingGuidelines, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		writer := csv.NewWriter(w)
		defer writer.Flush()
		return writeCSVGuidelines(writer, model)
	}, "Wrote CSV")
}

// writeCSVGuidelines writes one CSV record per factor, then one per category.
func writeCSVGuidelines(w *csv.Writer, model *schema.SizingGuidelines) error {
	if err := w.Write([]string{"kind", "name", "weight", "purpose", "score_band", "stories", "iterations"}); err != nil {
		return err
	}
	for _, factor := range model.Factors {
		rec := []string{
			"factor",
			string(factor.Key),
			strconv.FormatFloat(factor.Weight, 'f', 1, 64),
			factor.Purpose,
			"",
			"",
			"",
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	for _, cat := range model.Categories {
		rec := []string{
			"category",
			string(cat.Category),
			"",
			"",
			cat.ScoreBand,
			cat.Stories,
			cat.Iterations,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
