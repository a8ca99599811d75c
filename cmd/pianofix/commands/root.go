// Package commands implements the pianofix command tree.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pianofix",
	Short: "Generate piano audio fixtures with ground-truth accuracy scores",
	Long: `pianofix - deterministic piano fixture generator.

Synthesizes short piano clips from a built-in song catalog and writes,
alongside the clips, a ground-truth manifest describing the expected
tempo and pitch accuracy of each one. The clips exercise external
pitch/tempo analyzers; every run produces bit-identical output.

Each song yields four variants:
  <id>.wav                the reference rendition
  <id>_fast.wav           15% faster   (expected tempo accuracy 0.85)
  <id>_slow.wav           10% slower   (expected tempo accuracy 0.90)
  <id>_missed_notes.wav   two melody notes silenced

Examples:
  pianofix list
  pianofix generate
  pianofix generate --out clips --song fur_elise --song ode_to_joy`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
