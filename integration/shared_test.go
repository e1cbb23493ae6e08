//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedPrdscopePath holds the path to a shared prdscope binary built once for all tests.
	sharedPrdscopePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getPrdscopeBinary returns the path to the prdscope binary, building it once if needed.
func getPrdscopeBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "prdscope-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		prdscopePath := filepath.Join(tempDir, "prdscope")
		buildCmd := exec.Command("go", "build", "-o", prdscopePath, "./cmd/prdscope")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build prdscope: %v", err))
		}

		sharedPrdscopePath = prdscopePath
	})

	return sharedPrdscopePath
}

// runPrdscopeCommand runs the shared binary from the project root.
func runPrdscopeCommand(t *testing.T, args ...string) error {
	prdscopePath := getPrdscopeBinary()
	cmd := exec.Command(prdscopePath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
