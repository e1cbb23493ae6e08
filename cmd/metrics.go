package cmd

import (
	"github.com/bowen31337/prdscope/core"
	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of the sizing methodology.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display factor weights and category thresholds for the sizing methodology",
	Long: `Show the formal definitions behind the complexity score.

Provides complete transparency into how PRDs are sized, including:
- Factor names, weights and what each one detects
- The score formula and the per-factor cap
- Score bands for each complexity category
- Story and iteration ranges per category

No document analysis is performed - this is purely informational.

Use this to:
- Understand what drives a complexity score
- Explain sizing logic to your team
- Document the estimation methodology

Examples:
  # Show the sizing methodology
  prdscope metrics

  # With a custom factor cap
  prdscope metrics --factor-cap 30`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
