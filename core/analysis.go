package core

import (
	"math"
	"time"

	"github.com/bowen31337/prdscope/schema"
)

// AnalyzeDocuments runs the sizing pipeline over a PRD and an optional
// architecture document: combine, count factors, score.
func AnalyzeDocuments(prdText, archText string, factorCap int) schema.ComplexityFactors {
	combined := combineDocuments(prdText, archText)
	counts := CountFactors(combined, factorCap)
	return ComputeComplexity(counts)
}

// BuildAnalysisResult assembles the emitted sizing record from the analyzed
// factors and the PRD's extracted metadata. The score is rounded to one
// decimal on the wire; UserStories is always present and empty so that
// downstream population tools see a stable shape.
func BuildAnalysisResult(prdText string, factors schema.ComplexityFactors, branchPrefix string, now time.Time) *schema.AnalysisResult {
	slug := ExtractFeatureName(prdText)
	project := ExtractProjectName(prdText)

	return &schema.AnalysisResult{
		Project:     project,
		BranchName:  branchPrefix + "/" + slug,
		Description: schema.Titleize(slug) + " Feature",
		Complexity: schema.ComplexityRecord{
			Score:               math.Round(factors.Score*10) / 10,
			Category:            factors.Category,
			EstimatedStories:    factors.Stories.String(),
			EstimatedIterations: factors.Iterations.String(),
			Factors:             factors.Counts,
		},
		UserStories: []schema.UserStory{},
		Generated: schema.GenerationInfo{
			Timestamp: now.Format(time.RFC3339),
			Note:      schema.GeneratedNote,
		},
	}
}
