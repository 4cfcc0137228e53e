// Package main is the entry point for unraidctl.
package main

import (
	"fmt"
	"os"

	"github.com/jamesprial/unraid-cli/internal/cli"
)

func main() {
	// Unanticipated defects are reported with a generic message instead
	// of a raw crash trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "unraidctl: unexpected internal error: %v\n", r)
			os.Exit(2)
		}
	}()

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
