package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bowen31337/prdscope/schema"
)

// newSQLiteStore creates a store backed by a throwaway database file.
func newSQLiteStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

func sampleRun(slug string) schema.RunRecord {
	return schema.RunRecord{
		CreatedAt:      time.Now().UTC(),
		Project:        "Storefront",
		FeatureSlug:    slug,
		PRDPath:        "/docs/" + slug + ".md",
		Score:          12.4,
		Category:       "medium",
		StoriesLow:     6,
		StoriesHigh:    12,
		IterationsLow:  6,
		IterationsHigh: 18,
		DurationMs:     42,
		Factors: schema.FactorCounts{
			FunctionalRequirements: 9,
			IntegrationPoints:      4,
			UIComponents:           12,
		},
	}
}

func TestRunStoreRecordAndFetch(t *testing.T) {
	store := newSQLiteStore(t)

	id1, err := store.RecordRun(sampleRun("guest-checkout"))
	require.NoError(t, err)
	assert.Positive(t, id1)

	id2, err := store.RecordRun(sampleRun("order-tracking"))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, "order-tracking", runs[0].FeatureSlug)
	assert.Equal(t, "guest-checkout", runs[1].FeatureSlug)

	// Factor counts survive the JSON round trip
	assert.Equal(t, 9, runs[1].Factors.FunctionalRequirements)
	assert.Equal(t, 4, runs[1].Factors.IntegrationPoints)
	assert.Equal(t, 0, runs[1].Factors.RealTimeFeatures)

	// Timestamps survive with sub-second precision
	assert.WithinDuration(t, time.Now(), runs[0].CreatedAt, time.Minute)
}

func TestRunStoreGetStatus(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalRuns)

	first, err := store.RecordRun(sampleRun("first"))
	require.NoError(t, err)
	last, err := store.RecordRun(sampleRun("second"))
	require.NoError(t, err)

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, last, status.LastRunID)
	assert.False(t, status.LastRunTime.IsZero())
	assert.False(t, status.OldestRunTime.IsZero())
	assert.True(t, first < last)
}

func TestRunStoreClearRuns(t *testing.T) {
	store := newSQLiteStore(t)

	_, err := store.RecordRun(sampleRun("one"))
	require.NoError(t, err)
	_, err = store.RecordRun(sampleRun("two"))
	require.NoError(t, err)

	removed, err := store.ClearRuns()
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Everything is a quiet no-op
	id, err := store.RecordRun(sampleRun("ignored"))
	require.NoError(t, err)
	assert.Zero(t, id)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Zero(t, status.TotalRuns)
}

func TestRunStoreUnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("prdscope_runs"))
	assert.NoError(t, validateTableName("_private"))
	assert.Error(t, validateTableName(""))
	assert.Error(t, validateTableName("runs; DROP TABLE users"))
	assert.Error(t, validateTableName("1runs"))
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`prdscope_runs`", quoteTableName("prdscope_runs", schema.MySQLBackend))
	assert.Equal(t, `"prdscope_runs"`, quoteTableName("prdscope_runs", schema.SQLiteBackend))
	assert.Equal(t, `"prdscope_runs"`, quoteTableName("prdscope_runs", schema.PostgreSQLBackend))
}
