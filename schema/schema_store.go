package schema

import "time"

// RunRecord represents a row from the prdscope_runs history table: one
// completed analysis with its inputs, derived sizing and factor counts.
type RunRecord struct {
	RunID          int64        `json:"run_id"`
	CreatedAt      time.Time    `json:"created_at"`
	Project        string       `json:"project"`
	FeatureSlug    string       `json:"feature_slug"`
	PRDPath        string       `json:"prd_path"`
	Score          float64      `json:"score"`
	Category       string       `json:"category"`
	StoriesLow     int          `json:"stories_low"`
	StoriesHigh    int          `json:"stories_high"`
	IterationsLow  int          `json:"iterations_low"`
	IterationsHigh int          `json:"iterations_high"`
	DurationMs     int64        `json:"duration_ms"`
	Factors        FactorCounts `json:"factors"`
}

// HistoryStatus represents the status of the run-history store.
type HistoryStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRuns     int       `json:"total_runs"`
	LastRunID     int64     `json:"last_run_id"`
	LastRunTime   time.Time `json:"last_run_time"`
	OldestRunTime time.Time `json:"oldest_run_time"`
}
