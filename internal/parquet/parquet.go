// Package parquet provides data structures and functions for exporting run
// history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/bowen31337/prdscope/schema"
)

// SizingRun represents a single completed analysis run.
// This struct maps to the prdscope_runs database table.
type SizingRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// CreatedAt is when the run completed (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`

	// Project is the extracted project name
	Project string `parquet:"project,snappy"`

	// FeatureSlug is the kebab-case feature identifier
	FeatureSlug string `parquet:"feature_slug,snappy"`

	// PRDPath is the absolute path of the analyzed PRD
	PRDPath string `parquet:"prd_path,snappy"`

	// Score is the unrounded weighted complexity score
	Score float64 `parquet:"score,snappy"`

	// Category is the complexity band the score fell into
	Category string `parquet:"category,snappy"`

	// StoriesLow and StoriesHigh bound the recommended story count
	StoriesLow  int32 `parquet:"stories_low,snappy"`
	StoriesHigh int32 `parquet:"stories_high,snappy"`

	// IterationsLow and IterationsHigh bound the iteration estimate
	IterationsLow  int32 `parquet:"iterations_low,snappy"`
	IterationsHigh int32 `parquet:"iterations_high,snappy"`

	// DurationMs is the duration of the analysis in milliseconds
	DurationMs int64 `parquet:"duration_ms,snappy"`

	// Per-factor clamped match counts
	FunctionalRequirements int32 `parquet:"functional_requirements,snappy"`
	IntegrationPoints      int32 `parquet:"integration_points,snappy"`
	UIComponents           int32 `parquet:"ui_components,snappy"`
	DatabaseChanges        int32 `parquet:"database_changes,snappy"`
	ExternalAPIs           int32 `parquet:"external_apis,snappy"`
	AuthenticationFeatures int32 `parquet:"authentication_features,snappy"`
	FileOperations         int32 `parquet:"file_operations,snappy"`
	RealTimeFeatures       int32 `parquet:"real_time_features,snappy"`
}

// WriteSizingRunsParquet writes a slice of SizingRun structs to a Parquet file.
func WriteSizingRunsParquet(data []SizingRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the SizingRun struct tags
	writer := parquet.NewGenericWriter[SizingRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchSizingRuns generates sample SizingRun data for demonstration.
func MockFetchSizingRuns() []SizingRun {
	now := time.Now()

	return []SizingRun{
		{
			RunID:                  1,
			CreatedAt:              now.Add(-24 * time.Hour),
			Project:                "Storefront",
			FeatureSlug:            "guest-checkout",
			PRDPath:                "docs/guest-checkout.md",
			Score:                  12.4,
			Category:               "medium",
			StoriesLow:             6,
			StoriesHigh:            12,
			IterationsLow:          6,
			IterationsHigh:         18,
			DurationMs:             31,
			FunctionalRequirements: 9,
			IntegrationPoints:      4,
			UIComponents:           12,
			DatabaseChanges:        5,
			ExternalAPIs:           3,
			AuthenticationFeatures: 1,
			FileOperations:         2,
			RealTimeFeatures:       0,
		},
		{
			RunID:                  2,
			CreatedAt:              now.Add(-1 * time.Hour),
			Project:                "Storefront",
			FeatureSlug:            "order-tracking",
			PRDPath:                "docs/order-tracking.md",
			Score:                  21.8,
			Category:               "complex",
			StoriesLow:             13,
			StoriesHigh:            25,
			IterationsLow:          13,
			IterationsHigh:         37,
			DurationMs:             27,
			FunctionalRequirements: 14,
			IntegrationPoints:      8,
			UIComponents:           10,
			DatabaseChanges:        7,
			ExternalAPIs:           6,
			AuthenticationFeatures: 2,
			FileOperations:         1,
			RealTimeFeatures:       5,
		},
	}
}

// ConvertRunRecords converts schema.RunRecord to SizingRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []SizingRun {
	result := make([]SizingRun, len(records))
	for i, record := range records {
		result[i] = SizingRun{
			RunID:                  record.RunID,
			CreatedAt:              record.CreatedAt,
			Project:                record.Project,
			FeatureSlug:            record.FeatureSlug,
			PRDPath:                record.PRDPath,
			Score:                  record.Score,
			Category:               record.Category,
			StoriesLow:             int32(record.StoriesLow),
			StoriesHigh:            int32(record.StoriesHigh),
			IterationsLow:          int32(record.IterationsLow),
			IterationsHigh:         int32(record.IterationsHigh),
			DurationMs:             record.DurationMs,
			FunctionalRequirements: int32(record.Factors.FunctionalRequirements),
			IntegrationPoints:      int32(record.Factors.IntegrationPoints),
			UIComponents:           int32(record.Factors.UIComponents),
			DatabaseChanges:        int32(record.Factors.DatabaseChanges),
			ExternalAPIs:           int32(record.Factors.ExternalAPIs),
			AuthenticationFeatures: int32(record.Factors.AuthenticationFeatures),
			FileOperations:         int32(record.Factors.FileOperations),
			RealTimeFeatures:       int32(record.Factors.RealTimeFeatures),
		}
	}
	return result
}
