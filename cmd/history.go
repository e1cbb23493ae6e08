package cmd

import (
	"fmt"
	"strings"

	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/bowen31337/prdscope/internal/history"
	"github.com/bowen31337/prdscope/internal/outwriter"
	"github.com/bowen31337/prdscope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by status and export commands)
	cfg.Output = schema.OutputMode(strings.ToLower(viper.GetString("output")))
	cfg.OutputFile = viper.GetString("output-file")

	// Initialize the run store with the loaded config
	if err := history.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on run history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup used by analysis commands. This avoids document path
// resolution and complex config processing for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded sizing runs and exports",
	Long: `Manage the run history that tracks every sizing analysis.

When enabled, prdscope records every completed run, storing:
- Run metadata (timestamp, PRD path, duration)
- The complexity score, category and factor counts
- Story and iteration estimates

This enables longitudinal tracking of how PRD complexity evolves and data
export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run history statistics
  export  - Export runs to Parquet for analytics
  clear   - Remove all recorded runs
  migrate - Run database schema migrations

Examples:
  # Check run history status
  prdscope history status

  # Export for analysis in pandas/DuckDB
  prdscope history export --output-file sizing-data`,
}

// historyStatusCmd shows run history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run history statistics and connection details",
	Long: `Show detailed information about the run history store.

Displays:
- Backend type and connection status
- Total number of recorded runs
- Last and oldest run timestamps

Use this to:
- Verify run tracking is enabled and working
- Monitor data accumulation over time
- Debug history-related issues

Examples:
  # Check run history status
  prdscope history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := history.Manager.GetRunStore()
		if store == nil {
			contract.LogFatal("Cannot get history status", fmt.Errorf("history backend is not configured"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		if err := outwriter.PrintHistoryStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to print history status", err)
		}
	},
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded sizing runs",
	Long: `Delete all stored sizing runs from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the runs table

Examples:
  # Export before clearing
  prdscope history export --output-file backup
  prdscope history clear

  # Clear a MySQL backend (set connection string via env variable)
  PRDSCOPE_HISTORY_BACKEND=mysql PRDSCOPE_HISTORY_DB_CONNECT="..." prdscope history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ClearHistory(cfg.HistoryBackend, contract.GetHistoryDBFilePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyExportCmd exports run history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to Parquet for BI tools and analytics",
	Long: `Export all recorded sizing runs to Parquet format for use with analytics tools.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all runs
  prdscope history export --output-file sizing-data

  # Use with DuckDB for analysis
  prdscope history export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the run store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run history store.

Migrations allow:
- Upgrading to new schema versions when prdscope is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  prdscope history migrate

  # Migrate to specific version
  prdscope history migrate --target-version 1

  # Rollback to initial state
  prdscope history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := history.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
