// Package history persists completed analysis runs.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/bowen31337/prdscope/schema"
)

// RunStoreManager manages the HistoryStore instance.
type RunStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	runs         contract.HistoryStore
}

var _ contract.HistoryManager = &RunStoreManager{} // Compile-time check

// GetRunStore returns the run HistoryStore.
func (mgr *RunStoreManager) GetRunStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}

// Global Manager instance for main logic.
var (
	Manager   = &RunStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global history manager.
// backend can be empty to disable run tracking entirely.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var runStore contract.HistoryStore
		if backend != "" {
			var err error
			runStore, err = NewRunStore(backend, connStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize run history: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.runs = runStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.runs != nil {
			_ = Manager.runs.Close()
		}
	})
}

// GetRunStore returns the global run store, or nil when history is disabled
// or was never initialized.
func GetRunStore() contract.HistoryStore {
	return Manager.GetRunStore()
}

// ClearHistory clears the run history for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearHistory(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, runsTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, runsTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported history backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(tableName, backendForDriver(driverName)))
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}

// backendForDriver maps a SQL driver name back to its backend constant.
func backendForDriver(driverName string) schema.DatabaseBackend {
	switch driverName {
	case "mysql":
		return schema.MySQLBackend
	case "pgx":
		return schema.PostgreSQLBackend
	default:
		return schema.SQLiteBackend
	}
}
