package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/bowen31337/prdscope/schema"
)

// PrintHistoryStatus displays run-history store status, dispatching based on the output format configured.
func PrintHistoryStatus(status schema.HistoryStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVHistoryStatus(csvWriter, status)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryStatusText(w, status)
		}, "Wrote text")
	}
}

// writeHistoryStatusText displays the status in human-readable text format.
func writeHistoryStatusText(w io.Writer, status schema.HistoryStatus) error {
	if _, err := fmt.Fprintf(w, "History backend: %s\n", status.Backend); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Connected: %t\n", status.Connected); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total runs: %d\n", status.TotalRuns); err != nil {
		return err
	}
	if status.TotalRuns == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Last run: #%d at %s\n", status.LastRunID, status.LastRunTime.Format(contract.DateTimeFormat)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Oldest run: %s\n", status.OldestRunTime.Format(contract.DateTimeFormat)); err != nil {
		return err
	}
	return nil
}

// writeCSVHistoryStatus writes the status as a single CSV record.
func writeCSVHistoryStatus(w *csv.Writer, status schema.HistoryStatus) error {
	header := []string{"backend", "connected", "total_runs", "last_run_id", "last_run_time", "oldest_run_time"}
	if err := w.Write(header); err != nil {
		return err
	}
	rec := []string{
		status.Backend,
		strconv.FormatBool(status.Connected),
		strconv.Itoa(status.TotalRuns),
		strconv.FormatInt(status.LastRunID, 10),
		status.LastRunTime.Format(contract.DateTimeFormat),
		status.OldestRunTime.Format(contract.DateTimeFormat),
	}
	return w.Write(rec)
}
