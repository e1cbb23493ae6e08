// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/bowen31337/prdscope/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAnalysis prints a sizing result using the configured output format.
func (ow *OutWriter) WriteAnalysis(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return PrintAnalysisReport(result, cfg, duration)
}

// WriteDocument writes the full sizing record as a JSON document.
func (ow *OutWriter) WriteDocument(result *schema.AnalysisResult, cfg *contract.Config) error {
	return WriteGeneratedDocument(result, cfg)
}

// WriteGuidelines prints the sizing methodology using the configured output format.
func (ow *OutWriter) WriteGuidelines(model *schema.SizingGuidelines, cfg *contract.Config) error {
	return PrintSizingGuidelines(model, cfg)
}

// WriteHistoryStatus prints run-history store status using the configured output format.
func (ow *OutWriter) WriteHistoryStatus(status schema.HistoryStatus, cfg *contract.Config) error {
	return PrintHistoryStatus(status, cfg)
}

// getMaxSummaryTextWidth calculates the maximum width for free-form text in
// the summary output (descriptions, branch names) based on terminal width.
func getMaxSummaryTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed summary labels
	available := termWidth - 25
	if available < 15 {
		// Minimum reasonable text width
		return 15
	}
	if available > 70 {
		// Maximum text width to prevent overly long lines
		return 70
	}
	return available
}
