package core

import (
	"github.com/bowen31337/prdscope/schema"
)

// ComputeComplexity derives every sizing output from a set of factor counts:
// the weighted score, its category band, and the recommended story and
// iteration ranges. The result is a pure function of the counts, so equal
// counts always size identically.
func ComputeComplexity(counts schema.FactorCounts) schema.ComplexityFactors {
	weights := schema.GetFactorWeights()

	var weighted float64
	for _, key := range schema.AllFactorKeys {
		weighted += float64(counts.Get(key)) * weights[key]
	}
	score := weighted / schema.ScoreDivisor

	category := schema.CategoryForScore(score)
	stories := schema.GetStoryRange(category)

	return schema.ComplexityFactors{
		Counts:     counts,
		Score:      score,
		Category:   category,
		Stories:    stories,
		Iterations: schema.GetIterationRange(stories),
	}
}
