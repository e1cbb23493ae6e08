// Package schema has configs, models and global variables for all parts of prdscope.
package schema

import "fmt"

// FactorCounts holds the raw (clamped) pattern-match counts for each of the
// eight complexity dimensions of a requirements document. Each count is in
// [0, FactorCap] and the record is immutable once produced by an analysis run.
type FactorCounts struct {
	FunctionalRequirements int `json:"functional_requirements"`
	IntegrationPoints      int `json:"integration_points"`
	UIComponents           int `json:"ui_components"`
	DatabaseChanges        int `json:"database_changes"`
	ExternalAPIs           int `json:"external_apis"`
	AuthenticationFeatures int `json:"authentication_features"`
	FileOperations         int `json:"file_operations"`
	RealTimeFeatures       int `json:"real_time_features"`
}

// Get returns the counter for a single factor key. Unknown keys return 0.
func (fc FactorCounts) Get(key FactorKey) int {
	switch key {
	case FactorFunctionalRequirements:
		return fc.FunctionalRequirements
	case FactorIntegrationPoints:
		return fc.IntegrationPoints
	case FactorUIComponents:
		return fc.UIComponents
	case FactorDatabaseChanges:
		return fc.DatabaseChanges
	case FactorExternalAPIs:
		return fc.ExternalAPIs
	case FactorAuthenticationFeatures:
		return fc.AuthenticationFeatures
	case FactorFileOperations:
		return fc.FileOperations
	case FactorRealTimeFeatures:
		return fc.RealTimeFeatures
	default:
		return 0
	}
}

// Set assigns the counter for a single factor key. Unknown keys are ignored.
func (fc *FactorCounts) Set(key FactorKey, value int) {
	switch key {
	case FactorFunctionalRequirements:
		fc.FunctionalRequirements = value
	case FactorIntegrationPoints:
		fc.IntegrationPoints = value
	case FactorUIComponents:
		fc.UIComponents = value
	case FactorDatabaseChanges:
		fc.DatabaseChanges = value
	case FactorExternalAPIs:
		fc.ExternalAPIs = value
	case FactorAuthenticationFeatures:
		fc.AuthenticationFeatures = value
	case FactorFileOperations:
		fc.FileOperations = value
	case FactorRealTimeFeatures:
		fc.RealTimeFeatures = value
	}
}

// CountRange is an inclusive integer range with Low <= High.
type CountRange struct {
	Low  int
	High int
}

// String renders the range in the "low-high" wire format.
func (r CountRange) String() string {
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}

// ComplexityFactors wraps a FactorCounts with every value derived from it:
// the weighted score, the category band, and the recommended story and
// iteration ranges. All fields are pure functions of Counts.
type ComplexityFactors struct {
	Counts     FactorCounts
	Score      float64
	Category   Category
	Stories    CountRange
	Iterations CountRange
}
