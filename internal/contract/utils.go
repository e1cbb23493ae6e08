package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/bowen31337/prdscope/schema"
)

// Category label constants.
const (
	SimpleValue     = "Simple"     // Simple band
	MediumValue     = "Medium"     // Medium band
	ComplexValue    = "Complex"    // Complex band
	EnterpriseValue = "Enterprise" // Enterprise band
)

// Color variables for console output.
var (
	EnterpriseColor = color.New(color.FgRed, color.Bold)     // enterpriseColor represents standard danger.
	ComplexColor    = color.New(color.FgMagenta, color.Bold) // complexColor represents strong, distinct warning.
	MediumColor     = color.New(color.FgYellow)              // mediumColor represents standard caution, not bold.
	SimpleColor     = color.New(color.FgCyan)                // simpleColor represents informational / low-priority signal.
)

// GetPlainLabel returns a plain text label for a complexity category.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(category schema.Category) string {
	switch category {
	case schema.EnterpriseCategory:
		return EnterpriseValue
	case schema.ComplexCategory:
		return ComplexValue
	case schema.MediumCategory:
		return MediumValue
	default:
		return SimpleValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(category schema.Category) string {
	text := GetPlainLabel(category)

	switch text {
	case EnterpriseValue:
		return EnterpriseColor.Sprint(text)
	case ComplexValue:
		return ComplexColor.Sprint(text)
	case MediumValue:
		return MediumColor.Sprint(text)
	default: // "Simple"
		return SimpleColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run-history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".prdscope_history.db"
	}
	return filepath.Join(homeDir, ".prdscope_history.db")
}

// TruncateText truncates a string to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." suffix and at least one character of content.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
