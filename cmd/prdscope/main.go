// main is the entry point for the prdscope CLI.
package main

import (
	"fmt"
	"os"

	"github.com/bowen31337/prdscope/cmd"
	"github.com/bowen31337/prdscope/internal/history"
)

func main() {
	err := cmd.Execute()

	// Close any open database connections before deciding the exit code,
	// since os.Exit skips deferred calls.
	history.CloseStores()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
