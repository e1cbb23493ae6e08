package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bowen31337/prdscope/core"
	"github.com/bowen31337/prdscope/internal/contract"
	"github.com/bowen31337/prdscope/internal/docload"
	"github.com/bowen31337/prdscope/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

func (h *toolHandler) handleAnalyzePRD(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("prd_path", ""); p != "" {
		cfg.PRDPath = p
	}
	if p := request.GetString("arch_path", ""); p != "" {
		cfg.ArchPath = p
	}
	if c := request.GetInt("factor_cap", 0); c > 0 {
		cfg.FactorCap = c
	}
	if b := request.GetString("branch_prefix", ""); b != "" {
		cfg.BranchPrefix = b
	}

	prdText := request.GetString("prd_text", "")
	archText := request.GetString("arch_text", "")
	if prdText == "" {
		loader := docload.NewOSLoader()
		loadedPRD, loadedArch, err := loader.LoadDocuments(cfg.PRDPath, cfg.ArchPath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("document loading failed: %v", err)), nil
		}
		prdText = loadedPRD
		if archText == "" {
			archText = loadedArch
		}
	}

	factors := core.AnalyzeDocuments(prdText, archText, cfg.FactorCap)
	result := core.BuildAnalysisResult(prdText, factors, cfg.BranchPrefix, time.Now())

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSizingGuidelines(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	factorCap := h.baseCfg.FactorCap
	if c := request.GetInt("factor_cap", 0); c > 0 {
		factorCap = c
	}

	guidelines := schema.BuildSizingGuidelines(factorCap)
	jsonData, _ := json.MarshalIndent(guidelines, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRunHistory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store := h.mgr.GetRunStore()
	if store == nil {
		return mcp.NewToolResultError("history backend is not configured"), nil
	}

	records, err := store.GetAllRuns()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history lookup failed: %v", err)), nil
	}

	if l := request.GetInt("limit", 0); l > 0 && l < len(records) {
		records = records[:l]
	}

	jsonData, _ := json.MarshalIndent(records, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
