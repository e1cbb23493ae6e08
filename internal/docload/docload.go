// Package docload reads PRD and architecture documents off disk.
package docload

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/bowen31337/prdscope/internal/contract"
)

// Loader reads requirements documents from a filesystem.
// It uses an afero.Fs interface for filesystem operations, enabling
// easy testing with in-memory filesystems.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a document loader using the provided filesystem.
// Use afero.NewOsFs() for real filesystem operations,
// or afero.NewMemMapFs() for testing.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// NewOSLoader creates a Loader using the real operating system filesystem.
func NewOSLoader() *Loader {
	return NewLoader(afero.NewOsFs())
}

// LoadDocuments reads the PRD and the optional architecture document.
// The PRD must exist and be readable. The architecture document is
// advisory: an empty path means none was provided, and an unreadable one
// degrades to a warning so the analysis still runs on the PRD alone.
func (l *Loader) LoadDocuments(prdPath, archPath string) (string, string, error) {
	prdText, err := l.LoadPRD(prdPath)
	if err != nil {
		return "", "", err
	}

	archText := ""
	if archPath != "" {
		archText, err = l.loadFile(archPath)
		if err != nil {
			contract.LogWarn("reading architecture document", err)
			archText = ""
		}
	}

	return prdText, archText, nil
}

// LoadPRD reads the PRD document, which is required.
func (l *Loader) LoadPRD(prdPath string) (string, error) {
	if prdPath == "" {
		return "", fmt.Errorf("no PRD file provided")
	}

	exists, err := afero.Exists(l.fs, prdPath)
	if err != nil {
		return "", fmt.Errorf("check PRD file: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("PRD file not found: %s", prdPath)
	}

	return l.loadFile(prdPath)
}

func (l *Loader) loadFile(path string) (string, error) {
	content, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
