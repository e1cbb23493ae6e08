package cmd

import (
	"github.com/bowen31337/prdscope/core"
	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/spf13/cobra"
)

// generateCmd analyzes a PRD and writes the full record as a JSON document.
var generateCmd = &cobra.Command{
	Use:   "generate <prd-path> [arch-path]",
	Short: "Analyze a PRD and write a JSON record for story planning",
	Long: `Run the same sizing analysis as 'analyze' and write the complete record
as a JSON document for downstream story-population tooling.

The document contains:
- Extracted project name and feature slug
- A suggested feature branch name
- The complexity score, category and per-factor counts
- Recommended story and iteration ranges
- An empty userStories array ready to be populated

The factor report still prints to stdout so you can see what was sized.

Examples:
  # Write the default prd.json next to the current directory
  prdscope generate docs/prd.md

  # Choose the output location
  prdscope generate docs/prd.md --output-file planning/checkout.json

  # Use a different branch naming convention
  prdscope generate docs/prd.md --branch-prefix feature`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGenerate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot generate PRD record", err)
		}
	},
}
