// Package main is the entry point for the pianofix CLI.
//
// Usage:
//
//	pianofix [flags] <command> [args]
//
// Commands:
//
//	generate   - Synthesize fixture clips and the ground-truth manifest
//	list       - List the built-in song catalog
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/pianofix/pianofix/cmd/pianofix/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
