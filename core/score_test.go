package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bowen31337/prdscope/schema"
)

func TestComputeComplexityZeroCounts(t *testing.T) {
	result := ComputeComplexity(schema.FactorCounts{})

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, schema.SimpleCategory, result.Category)
	assert.Equal(t, schema.CountRange{Low: 3, High: 5}, result.Stories)
	assert.Equal(t, schema.CountRange{Low: 3, High: 7}, result.Iterations)
}

func TestComputeComplexityWeighting(t *testing.T) {
	// One authentication mention (weight 4) outweighs one UI mention (weight 1.5)
	auth := ComputeComplexity(schema.FactorCounts{AuthenticationFeatures: 1})
	ui := ComputeComplexity(schema.FactorCounts{UIComponents: 1})
	assert.Greater(t, auth.Score, ui.Score)

	// Weighted sum: 5*2 + 5*3 + 2*1.5 = 28, divided by 5
	mixed := ComputeComplexity(schema.FactorCounts{
		FunctionalRequirements: 5,
		IntegrationPoints:      5,
		UIComponents:           2,
	})
	assert.InDelta(t, 5.6, mixed.Score, 0.0001)
	assert.Equal(t, schema.MediumCategory, mixed.Category)
}

func TestComputeComplexityCategoryBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		counts     schema.FactorCounts
		score      float64
		category   schema.Category
		stories    schema.CountRange
		iterations schema.CountRange
	}{
		{
			// 5*2 + 5*3 = 25 weighted, score 5.0 sits inside simple
			name:     "simple upper bound",
			counts:   schema.FactorCounts{FunctionalRequirements: 5, ExternalAPIs: 5},
			score:    5.0,
			category: schema.SimpleCategory,
			stories:  schema.CountRange{Low: 3, High: 5}, iterations: schema.CountRange{Low: 3, High: 7},
		},
		{
			// 13*2 = 26 weighted, score 5.2 tips into medium
			name:     "just above simple",
			counts:   schema.FactorCounts{FunctionalRequirements: 13},
			score:    5.2,
			category: schema.MediumCategory,
			stories:  schema.CountRange{Low: 6, High: 12}, iterations: schema.CountRange{Low: 6, High: 18},
		},
		{
			// 15*4 + 10*1.5 = 75 weighted, score 15.0 sits inside medium
			name:     "medium upper bound",
			counts:   schema.FactorCounts{AuthenticationFeatures: 15, UIComponents: 10},
			score:    15.0,
			category: schema.MediumCategory,
			stories:  schema.CountRange{Low: 6, High: 12}, iterations: schema.CountRange{Low: 6, High: 18},
		},
		{
			// 15*4 + 10*1.5 + 1*2 = 77 weighted, score 15.4 tips into complex
			name:     "just above medium",
			counts:   schema.FactorCounts{AuthenticationFeatures: 15, UIComponents: 10, FunctionalRequirements: 1},
			score:    15.4,
			category: schema.ComplexCategory,
			stories:  schema.CountRange{Low: 13, High: 25}, iterations: schema.CountRange{Low: 13, High: 37},
		},
		{
			// 30*4 + 10*3 = 150 weighted, score 30.0 sits inside complex
			name:     "complex upper bound",
			counts:   schema.FactorCounts{AuthenticationFeatures: 30, RealTimeFeatures: 10},
			score:    30.0,
			category: schema.ComplexCategory,
			stories:  schema.CountRange{Low: 13, High: 25}, iterations: schema.CountRange{Low: 13, High: 37},
		},
		{
			// 40*4 = 160 weighted, score 32.0 lands in enterprise
			name:     "enterprise",
			counts:   schema.FactorCounts{AuthenticationFeatures: 40},
			score:    32.0,
			category: schema.EnterpriseCategory,
			stories:  schema.CountRange{Low: 26, High: 50}, iterations: schema.CountRange{Low: 26, High: 75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeComplexity(tt.counts)
			assert.InDelta(t, tt.score, result.Score, 0.0001)
			assert.Equal(t, tt.category, result.Category)
			assert.Equal(t, tt.stories, result.Stories)
			assert.Equal(t, tt.iterations, result.Iterations)
		})
	}
}

func TestComputeComplexityMonotonic(t *testing.T) {
	// Raising any single factor count never lowers the score
	base := schema.FactorCounts{
		FunctionalRequirements: 3,
		IntegrationPoints:      2,
		DatabaseChanges:        4,
	}
	baseScore := ComputeComplexity(base).Score

	for _, key := range schema.AllFactorKeys {
		bumped := base
		bumped.Set(key, bumped.Get(key)+1)
		assert.Greater(t, ComputeComplexity(bumped).Score, baseScore, "bumping %s", key)
	}
}

func TestComputeComplexityPreservesCounts(t *testing.T) {
	counts := schema.FactorCounts{FunctionalRequirements: 7, RealTimeFeatures: 2}
	result := ComputeComplexity(counts)
	assert.Equal(t, counts, result.Counts)
}
