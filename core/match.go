package core

import (
	"strings"

	"github.com/bowen31337/prdscope/schema"
)

// combineDocuments joins the PRD and architecture text into the single
// lower-cased corpus that factor matching runs against. The architecture
// text may be empty; the joining newline keeps the last word of one
// document from fusing with the first word of the next.
func combineDocuments(prdText, archText string) string {
	return strings.ToLower(prdText) + "\n" + strings.ToLower(archText)
}

// CountFactors scans the combined document text and returns the match count
// for every factor family. Matches within a family are summed across its
// patterns, then saturated at factorCap so one repetitive document cannot
// dominate the score. A non-positive cap falls back to the default.
func CountFactors(combined string, factorCap int) schema.FactorCounts {
	if factorCap <= 0 {
		factorCap = schema.DefaultFactorCap
	}

	var counts schema.FactorCounts
	for _, key := range schema.AllFactorKeys {
		total := 0
		for _, re := range compiledPatterns[key] {
			total += len(re.FindAllStringIndex(combined, -1))
		}
		counts.Set(key, min(total, factorCap))
	}
	return counts
}
