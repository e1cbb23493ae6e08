package cmd

import (
	"github.com/bowen31337/prdscope/core"
	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd performs complexity analysis on a PRD document.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <prd-path> [arch-path]",
	Short: "Score a PRD for implementation complexity.",
	Long: `Scan a Product Requirements Document for complexity signals and print a sizing report.

The analysis counts pattern matches across eight factor families:
- Functional requirements (must/shall/should statements, FR-N identifiers)
- Integration points (third-party services, webhooks, external systems)
- UI components (screens, pages, forms, dashboards)
- Database changes (schemas, tables, migrations)
- External APIs (endpoints, REST/GraphQL surfaces)
- Authentication features (login, permissions, roles)
- File operations (uploads, downloads, imports, exports)
- Real-time features (websockets, live updates, notifications)

Each factor is capped, weighted and summed into a single score that maps to a
complexity category (simple, medium, complex, enterprise), a recommended story
count and an iteration estimate.

An optional architecture document supplements the PRD with additional signals
but never contributes to feature or project naming.

Examples:
  # Size a PRD
  prdscope analyze docs/prd.md

  # Supplement with an architecture document
  prdscope analyze docs/prd.md docs/architecture.md

  # Export the report as CSV
  prdscope analyze docs/prd.md --output csv --output-file sizing.csv`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run PRD analysis", err)
		}
	},
}
