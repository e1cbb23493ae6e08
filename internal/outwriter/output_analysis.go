package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/bowen31337/prdscope/schema"
)

// PrintAnalysisReport outputs the sizing result, dispatching based on the output format configured.
func PrintAnalysisReport(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeAnalysisJSONResult(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeAnalysisCSVResult(result, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisTable(result, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// WriteGeneratedDocument writes the full sizing record as a JSON document for
// downstream story-population tooling. An empty output file falls back to the
// default document name rather than stdout, since the factor report owns stdout.
func WriteGeneratedDocument(result *schema.AnalysisResult, cfg *contract.Config) error {
	target := cfg.OutputFile
	if target == "" {
		target = contract.DefaultOutputName
	}
	return writeWithFile(target, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote document")
}

// writeAnalysisJSONResult handles opening the file and calling the JSON writer.
func writeAnalysisJSONResult(result *schema.AnalysisResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// writeAnalysisCSVResult handles opening the file and calling the CSV writer.
func writeAnalysisCSVResult(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVAnalysisResult(csvWriter, result, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeAnalysisTable generates and writes the human-readable factor report.
func writeAnalysisTable(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Factor", "Count", "Weight", "Contribution"})

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	weights := schema.GetFactorWeights()
	var data [][]string
	for _, key := range schema.AllFactorKeys {
		count := result.Complexity.Factors.Get(key)
		row := []string{
			factorDisplayNames[key],
			fmt.Sprintf(intFmt, count),
			fmtFloat(weights[key]),
			fmtFloat(float64(count) * weights[key]),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Summary lines below the factor table
	maxWidth := getMaxSummaryTextWidth(cfg)
	if _, err := fmt.Fprintf(writer, "Project: %s\n", contract.TruncateText(result.Project, maxWidth)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Branch: %s\n", contract.TruncateText(result.BranchName, maxWidth)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Complexity Score: %s (%s)\n", fmtFloat(result.Complexity.Score), categoryLabel(result.Complexity.Category, cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Recommended Stories: %s\n", result.Complexity.EstimatedStories); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Estimated Iterations: %s\n", result.Complexity.EstimatedIterations); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. History backend: %s\n", duration, cfg.HistoryBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVAnalysisResult writes the sizing result as a single CSV record.
func writeCSVAnalysisResult(w *csv.Writer, result *schema.AnalysisResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"project",
		"branch_name",
		"description",
		"score",
		"category",
		"label",
		"estimated_stories",
		"estimated_iterations",
	}
	for _, key := range schema.AllFactorKeys {
		header = append(header, string(key))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	rec := []string{
		result.Project,
		result.BranchName,
		result.Description,
		fmtFloat(result.Complexity.Score),
		string(result.Complexity.Category),
		contract.GetPlainLabel(result.Complexity.Category),
		result.Complexity.EstimatedStories,
		result.Complexity.EstimatedIterations,
	}
	for _, key := range schema.AllFactorKeys {
		rec = append(rec, strconv.Itoa(result.Complexity.Factors.Get(key)))
	}
	return w.Write(rec)
}
