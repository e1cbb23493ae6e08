package core

import (
	"regexp"
	"strings"

	"github.com/bowen31337/prdscope/schema"
)

// Fallback identifiers for documents with no usable title or project line.
const (
	FallbackFeatureSlug = "feature"
	FallbackProjectName = "Project"
)

// titlePatterns locate a feature title inside the PRD, in priority order:
// an explicit "# PRD:" style heading, any markdown heading, then an inline
// "feature:" or "project:" field. Only the PRD is searched; architecture
// documents describe the system, not the feature being sized.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)#\s*(?:PRD|Feature|Product Requirements):\s*(.+)`),
	regexp.MustCompile(`(?i)#\s*(.+?)(?:\n|$)`),
	regexp.MustCompile(`(?i)(?:feature|project):\s*(.+?)(?:\n|$)`),
}

// projectPatterns locate a project name inside the PRD: an explicit
// "project:" field, or prose like "for the Acme project".
var projectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)project:\s*(.+?)(?:\n|$)`),
	regexp.MustCompile(`(?i)(?:for|in)\s+(?:the\s+)?([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)\s+(?:project|app|application)`),
}

// ExtractFeatureName pulls a feature title out of the PRD text and returns
// it as a kebab-case slug. A matched title that slugs down to nothing (all
// punctuation, say) is skipped in favor of the next pattern.
func ExtractFeatureName(prdText string) string {
	for _, re := range titlePatterns {
		if m := re.FindStringSubmatch(prdText); m != nil {
			if slug := schema.Slugify(m[1]); slug != "" {
				return slug
			}
		}
	}
	return FallbackFeatureSlug
}

// ExtractProjectName pulls a project name out of the PRD text. Unlike
// feature names, project names keep their original casing and spacing.
func ExtractProjectName(prdText string) string {
	for _, re := range projectPatterns {
		if m := re.FindStringSubmatch(prdText); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name
			}
		}
	}
	return FallbackProjectName
}
