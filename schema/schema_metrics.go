package schema

// FactorGuideline describes one factor family for display purposes.
type FactorGuideline struct {
	Key     FactorKey `json:"key"`
	Purpose string    `json:"purpose"`
	Weight  float64   `json:"weight"`
}

// CategoryGuideline describes one complexity band with its score interval
// and the recommended story and iteration ranges.
type CategoryGuideline struct {
	Category   Category `json:"category"`
	ScoreBand  string   `json:"score_band"`
	Stories    string   `json:"stories"`
	Iterations string   `json:"iterations"`
}

// SizingGuidelines is the render model for the sizing methodology: factor
// weights, the normalization divisor, and the category tables.
type SizingGuidelines struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Divisor     float64             `json:"divisor"`
	FactorCap   int                 `json:"factor_cap"`
	Factors     []FactorGuideline   `json:"factors"`
	Categories  []CategoryGuideline `json:"categories"`
}

// factorPurposes summarizes what each pattern family is trying to detect.
var factorPurposes = map[FactorKey]string{
	FactorFunctionalRequirements: "Modal requirement phrasing, requirement IDs, user-capability statements",
	FactorIntegrationPoints:      "Integrations, third-party/external systems, webhooks, import/export",
	FactorUIComponents:           "Widgets, pages/views, display and interaction verbs",
	FactorDatabaseChanges:        "Schema/table/migration vocabulary, CRUD on storage, queries and keys",
	FactorExternalAPIs:           "API/endpoint/protocol vocabulary, URLs, HTTP verbs, auth tokens",
	FactorAuthenticationFeatures: "Auth/login/session, credentials, permissions and roles, MFA",
	FactorFileOperations:         "Uploads/downloads, attachments, storage buckets, media types",
	FactorRealTimeFeatures:       "Real-time/live/streaming, notifications and push, synchronization",
}

// scoreBands describes each category's score interval for display.
var scoreBands = map[Category]string{
	SimpleCategory:     "0 - 5",
	MediumCategory:     "5 - 15",
	ComplexCategory:    "15 - 30",
	EnterpriseCategory: "30+",
}

// BuildSizingGuidelines constructs the complete sizing methodology model
// from the static weight, threshold and range tables.
func BuildSizingGuidelines(factorCap int) *SizingGuidelines {
	weights := GetFactorWeights()

	factors := make([]FactorGuideline, len(AllFactorKeys))
	for i, key := range AllFactorKeys {
		factors[i] = FactorGuideline{
			Key:     key,
			Purpose: factorPurposes[key],
			Weight:  weights[key],
		}
	}

	categories := make([]CategoryGuideline, len(AllCategories))
	for i, cat := range AllCategories {
		stories := GetStoryRange(cat)
		categories[i] = CategoryGuideline{
			Category:   cat,
			ScoreBand:  scoreBands[cat],
			Stories:    stories.String(),
			Iterations: GetIterationRange(stories).String(),
		}
	}

	return &SizingGuidelines{
		Title:       "PRD Sizing Methodology",
		Description: "Score = sum of per-factor pattern counts times factor weight, divided by the normalization constant",
		Divisor:     ScoreDivisor,
		FactorCap:   factorCap,
		Factors:     factors,
		Categories:  categories,
	}
}
