package schema

import "math"

// Custom string types for type safety.
type (
	// FactorKey identifies one of the eight complexity dimensions.
	FactorKey string

	// Category represents a complexity tier derived from the weighted score.
	Category string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All factor keys, matching the field names of FactorCounts on the wire.
const (
	FactorFunctionalRequirements FactorKey = "functional_requirements"
	FactorIntegrationPoints      FactorKey = "integration_points"
	FactorUIComponents           FactorKey = "ui_components"
	FactorDatabaseChanges        FactorKey = "database_changes"
	FactorExternalAPIs           FactorKey = "external_apis"
	FactorAuthenticationFeatures FactorKey = "authentication_features"
	FactorFileOperations         FactorKey = "file_operations"
	FactorRealTimeFeatures       FactorKey = "real_time_features"
)

// AllFactorKeys lists every factor key in canonical display order.
var AllFactorKeys = []FactorKey{
	FactorFunctionalRequirements,
	FactorIntegrationPoints,
	FactorUIComponents,
	FactorDatabaseChanges,
	FactorExternalAPIs,
	FactorAuthenticationFeatures,
	FactorFileOperations,
	FactorRealTimeFeatures,
}

// All complexity categories, ordered from smallest to largest.
const (
	SimpleCategory     Category = "simple"
	MediumCategory     Category = "medium"
	ComplexCategory    Category = "complex"
	EnterpriseCategory Category = "enterprise"
)

// AllCategories lists every category in ascending order of complexity.
var AllCategories = []Category{SimpleCategory, MediumCategory, ComplexCategory, EnterpriseCategory}

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// DefaultFactorCap is the saturating ceiling applied to each raw factor
// count. The value is a tuning knob rather than a hard requirement, so it is
// overridable via config instead of being baked into the matcher.
const DefaultFactorCap = 20

// ScoreDivisor normalizes the weighted sum of factor counts into the score scale.
const ScoreDivisor = 5.0

// Per-unit factor weights. Authentication, integration, external-API and
// real-time mentions carry the most hidden implementation cost per mention;
// UI and file-handling mentions the least.
const (
	WeightFunctionalRequirements = 2.0
	WeightIntegrationPoints      = 3.0
	WeightUIComponents           = 1.5
	WeightDatabaseChanges        = 2.0
	WeightExternalAPIs           = 3.0
	WeightAuthenticationFeatures = 4.0
	WeightFileOperations         = 1.5
	WeightRealTimeFeatures       = 3.0
)

// GetFactorWeights returns the per-unit weight for every factor key.
func GetFactorWeights() map[FactorKey]float64 {
	return map[FactorKey]float64{
		FactorFunctionalRequirements: WeightFunctionalRequirements,
		FactorIntegrationPoints:      WeightIntegrationPoints,
		FactorUIComponents:           WeightUIComponents,
		FactorDatabaseChanges:        WeightDatabaseChanges,
		FactorExternalAPIs:           WeightExternalAPIs,
		FactorAuthenticationFeatures: WeightAuthenticationFeatures,
		FactorFileOperations:         WeightFileOperations,
		FactorRealTimeFeatures:       WeightRealTimeFeatures,
	}
}

// Category thresholds (inclusive upper bounds of each band).
const (
	SimpleMaxScore  = 5.0
	MediumMaxScore  = 15.0
	ComplexMaxScore = 30.0
)

// CategoryForScore maps a weighted score onto its complexity band. The four
// bands are contiguous and cover [0, +inf), so every score classifies.
func CategoryForScore(score float64) Category {
	switch {
	case score <= SimpleMaxScore:
		return SimpleCategory
	case score <= MediumMaxScore:
		return MediumCategory
	case score <= ComplexMaxScore:
		return ComplexCategory
	default:
		return EnterpriseCategory
	}
}

// storyRanges is the fixed category -> recommended story count table.
var storyRanges = map[Category]CountRange{
	SimpleCategory:     {Low: 3, High: 5},
	MediumCategory:     {Low: 6, High: 12},
	ComplexCategory:    {Low: 13, High: 25},
	EnterpriseCategory: {Low: 26, High: 50},
}

// IterationOverheadFactor inflates the story high bound to allow for rework
// and handoff overhead in the iteration estimate.
const IterationOverheadFactor = 1.5

// GetStoryRange returns the recommended story count range for a category.
// Unknown categories fall back to the medium range so a future category
// addition without a table update degrades instead of panicking.
func GetStoryRange(category Category) CountRange {
	if r, ok := storyRanges[category]; ok {
		return r
	}
	return storyRanges[MediumCategory]
}

// GetIterationRange derives the iteration estimate from a story range: the
// low bound carries over and the high bound is inflated for rework overhead.
func GetIterationRange(stories CountRange) CountRange {
	return CountRange{
		Low:  stories.Low,
		High: int(math.Floor(float64(stories.High) * IterationOverheadFactor)),
	}
}
