package schema

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nonAlnumRuns matches every run of characters outside [a-z0-9] after lowercasing.
var nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)

var titleCaser = cases.Title(language.English)

// Slugify converts free text to a kebab-case identifier: lower-cased, every
// non-alphanumeric run collapsed to a single dash, leading and trailing
// dashes trimmed. "My Great Feature!" becomes "my-great-feature".
func Slugify(s string) string {
	slug := nonAlnumRuns.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// Titleize reverses a slug into a human-readable title: dashes become spaces
// and each word is title-cased. "my-great-feature" becomes "My Great Feature".
func Titleize(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}
