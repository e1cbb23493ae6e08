// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the PRD sizing MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"PRD Sizing Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_prd ---
	s.AddTool(mcp.NewTool("analyze_prd",
		mcp.WithDescription("Analyze a Product Requirements Document to estimate implementation complexity, story count and iteration count."),
		mcp.WithString("prd_path", mcp.Description("Path to the PRD markdown file. Ignored when prd_text is provided.")),
		mcp.WithString("prd_text", mcp.Description("Raw PRD text to analyze instead of reading a file.")),
		mcp.WithString("arch_path", mcp.Description("Optional path to an architecture document that supplements the PRD.")),
		mcp.WithString("arch_text", mcp.Description("Raw architecture text to analyze instead of reading a file.")),
		mcp.WithNumber("factor_cap", mcp.Description("Maximum count per complexity factor. Defaults to the configured cap.")),
		mcp.WithString("branch_prefix", mcp.Description("Prefix for the suggested branch name. Defaults to 'ralph'.")),
	), h.handleAnalyzePRD)

	// --- 2. Tool: get_sizing_guidelines ---
	s.AddTool(mcp.NewTool("get_sizing_guidelines",
		mcp.WithDescription("Return the sizing methodology: factor weights, score bands, story ranges and iteration ranges."),
		mcp.WithNumber("factor_cap", mcp.Description("Maximum count per complexity factor. Defaults to the configured cap.")),
	), h.handleGetSizingGuidelines)

	// --- 3. Tool: get_run_history ---
	s.AddTool(mcp.NewTool("get_run_history",
		mcp.WithDescription("Return previously recorded sizing runs from the history store, newest first."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of runs returned.")),
	), h.handleGetRunHistory)

	return s
}

// StartMCPServer starts the PRD sizing MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
