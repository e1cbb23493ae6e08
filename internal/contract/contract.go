// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/bowen31337/prdscope/schema"
)

// HistoryStore defines the interface for run-history storage.
// This allows mocking the store for testing.
type HistoryStore interface {
	// RecordRun persists one completed analysis and returns its run ID.
	RecordRun(rec schema.RunRecord) (int64, error)

	// GetAllRuns returns every stored run, newest first.
	GetAllRuns() ([]schema.RunRecord, error)

	// ClearRuns deletes all stored runs and returns the number removed.
	ClearRuns() (int64, error)

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// HistoryManager defines the interface for managing history stores.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetRunStore() HistoryStore
}
