// Package core has core logic for document analysis, scoring and sizing.
package core

import (
	"context"
	"time"

	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/bowen31337/prdscope/internal/docload"
	"github.com/bowen31337/prdscope/internal/history"
	"github.com/bowen31337/prdscope/internal/outwriter"
	"github.com/bowen31337/prdscope/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteAnalyze runs the sizing analysis and prints the factor report.
// It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	loader := docload.NewOSLoader()
	prdText, archText, err := loader.LoadDocuments(cfg.PRDPath, cfg.ArchPath)
	if err != nil {
		return err
	}
	factors := AnalyzeDocuments(prdText, archText, cfg.FactorCap)
	result := BuildAnalysisResult(prdText, factors, cfg.BranchPrefix, start)
	duration := time.Since(start)
	recordRun(ctx, cfg, prdText, factors, duration)
	return outwriter.PrintAnalysisReport(result, cfg, duration)
}

// ExecuteGenerate runs the sizing analysis and writes the full record as a
// JSON document, for downstream story-population tooling. The factor report
// still goes to stdout so the caller sees what was sized.
func ExecuteGenerate(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	loader := docload.NewOSLoader()
	prdText, archText, err := loader.LoadDocuments(cfg.PRDPath, cfg.ArchPath)
	if err != nil {
		return err
	}
	factors := AnalyzeDocuments(prdText, archText, cfg.FactorCap)
	result := BuildAnalysisResult(prdText, factors, cfg.BranchPrefix, start)
	if err := outwriter.WriteGeneratedDocument(result, cfg); err != nil {
		return err
	}
	duration := time.Since(start)
	recordRun(ctx, cfg, prdText, factors, duration)

	// The JSON document above already claimed the output file, so the
	// factor report always goes to stdout here.
	reportCfg := *cfg
	reportCfg.OutputFile = ""
	return outwriter.PrintAnalysisReport(result, &reportCfg, duration)
}

// ExecuteMetrics displays the formal definitions of the sizing methodology.
// This is a static display that does not require any document.
func ExecuteMetrics(_ context.Context, cfg *contract.Config) error {
	return outwriter.PrintSizingGuidelines(schema.BuildSizingGuidelines(cfg.FactorCap), cfg)
}

// recordRun persists one completed analysis to the run-history store.
// History is advisory, so storage failures degrade to a warning instead of
// failing the analysis itself.
func recordRun(_ context.Context, cfg *contract.Config, prdText string, factors schema.ComplexityFactors, duration time.Duration) {
	store := history.GetRunStore()
	if store == nil {
		return
	}

	rec := schema.RunRecord{
		CreatedAt:      time.Now(),
		Project:        ExtractProjectName(prdText),
		FeatureSlug:    ExtractFeatureName(prdText),
		PRDPath:        cfg.PRDPath,
		Score:          factors.Score,
		Category:       string(factors.Category),
		StoriesLow:     factors.Stories.Low,
		StoriesHigh:    factors.Stories.High,
		IterationsLow:  factors.Iterations.Low,
		IterationsHigh: factors.Iterations.High,
		DurationMs:     duration.Milliseconds(),
		Factors:        factors.Counts,
	}
	if _, err := store.RecordRun(rec); err != nil {
		contract.LogWarn("recording run history", err)
	}
}
