package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bowen31337/prdscope/schema"
)

func TestCountFactorsEmptyText(t *testing.T) {
	counts := CountFactors("", schema.DefaultFactorCap)
	for _, key := range schema.AllFactorKeys {
		assert.Equal(t, 0, counts.Get(key), "factor %s on empty text", key)
	}
}

func TestCountFactorsPerFamily(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		key      schema.FactorKey
		expected int
	}{
		{
			name:     "requirement identifiers",
			text:     "fr-1 and fr-2 are mandatory",
			key:      schema.FactorFunctionalRequirements,
			expected: 2,
		},
		{
			name:     "modal capability phrasing",
			text:     "the operator must be able to retry a job",
			key:      schema.FactorFunctionalRequirements,
			expected: 1,
		},
		{
			name:     "integration vocabulary",
			text:     "integrate with stripe and connect to slack",
			key:      schema.FactorIntegrationPoints,
			expected: 2,
		},
		{
			name:     "webhooks",
			text:     "fire a webhook on completion",
			key:      schema.FactorIntegrationPoints,
			expected: 1,
		},
		{
			name:     "ui widgets and pages",
			text:     "a button on the settings page",
			key:      schema.FactorUIComponents,
			expected: 2,
		},
		{
			name:     "database vocabulary",
			text:     "a database migration adds one more column",
			key:      schema.FactorDatabaseChanges,
			expected: 3,
		},
		{
			name:     "api vocabulary",
			text:     "expose a rest endpoint",
			key:      schema.FactorExternalAPIs,
			expected: 2,
		},
		{
			name:     "auth vocabulary",
			text:     "login requires a password",
			key:      schema.FactorAuthenticationFeatures,
			expected: 2,
		},
		{
			name:     "file vocabulary",
			text:     "upload an attachment",
			key:      schema.FactorFileOperations,
			expected: 2,
		},
		{
			name:     "realtime vocabulary",
			text:     "websocket notifications",
			key:      schema.FactorRealTimeFeatures,
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := CountFactors(tt.text, schema.DefaultFactorCap)
			assert.Equal(t, tt.expected, counts.Get(tt.key))
		})
	}
}

func TestCountFactorsCaseInsensitive(t *testing.T) {
	counts := CountFactors("WEBHOOKS", schema.DefaultFactorCap)
	assert.Equal(t, 1, counts.Get(schema.FactorIntegrationPoints))
}

func TestCountFactorsCap(t *testing.T) {
	// 30 raw matches saturate at the cap
	text := strings.Repeat("webhook ", 30)

	counts := CountFactors(text, schema.DefaultFactorCap)
	assert.Equal(t, schema.DefaultFactorCap, counts.Get(schema.FactorIntegrationPoints))

	counts = CountFactors(text, 5)
	assert.Equal(t, 5, counts.Get(schema.FactorIntegrationPoints))

	// Below-cap counts pass through unchanged
	counts = CountFactors(strings.Repeat("webhook ", 3), schema.DefaultFactorCap)
	assert.Equal(t, 3, counts.Get(schema.FactorIntegrationPoints))
}

func TestCountFactorsNonPositiveCap(t *testing.T) {
	text := strings.Repeat("webhook ", 30)

	// Zero and negative caps fall back to the default
	counts := CountFactors(text, 0)
	assert.Equal(t, schema.DefaultFactorCap, counts.Get(schema.FactorIntegrationPoints))

	counts = CountFactors(text, -7)
	assert.Equal(t, schema.DefaultFactorCap, counts.Get(schema.FactorIntegrationPoints))
}

func TestCountFactorsDeterministic(t *testing.T) {
	text := "users must be able to upload a document via the api and receive a push notification"
	first := CountFactors(text, schema.DefaultFactorCap)
	for range 5 {
		assert.Equal(t, first, CountFactors(text, schema.DefaultFactorCap))
	}
}

func TestCombineDocuments(t *testing.T) {
	// Both documents lower-cased and joined with a newline boundary
	assert.Equal(t, "prd text\narch text", combineDocuments("PRD Text", "Arch Text"))
	assert.Equal(t, "prd only\n", combineDocuments("PRD Only", ""))

	// The newline keeps "...integration" + "points..." from fusing into one
	// token, while still letting whitespace-separated phrases match
	combined := combineDocuments("web", "hook")
	counts := CountFactors(combined, schema.DefaultFactorCap)
	assert.Equal(t, 0, counts.Get(schema.FactorIntegrationPoints))
}
