package cmd

import (
	"github.com/bowen31337/prdscope/internal/history"
	"github.com/bowen31337/prdscope/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the prdscope MCP server",
	Long:  `Launch an MCP server that allows AI agents to size PRDs via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdio carries the protocol, so setup must stay quiet.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, history.Manager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
