package history

import (
	"fmt"

	"github.com/bowen31337/prdscope/internal/parquet"
)

// ExecuteHistoryExport exports the run history to a Parquet file.
func ExecuteHistoryExport(outputFile string) error {
	if outputFile == "" {
		return fmt.Errorf("output file is required for export (use --output-file flag)")
	}

	store := GetRunStore()
	if store == nil {
		return fmt.Errorf("history backend is not configured")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return fmt.Errorf("no run history found to export")
	}

	fmt.Printf("Exporting %d runs from %s backend...\n", status.TotalRuns, status.Backend)

	records, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to fetch run history: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteSizingRunsParquet(parquet.ConvertRunRecords(records), runsFile); err != nil {
		return fmt.Errorf("failed to write runs parquet file: %w", err)
	}
	fmt.Printf("Exported %d runs to %s\n", len(records), runsFile)

	return nil
}
