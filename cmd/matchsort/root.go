// Command matchsort ranks and sorts candidate strings against a query
// from the command line: one-shot classification, line sorting, a small
// benchmark harness, a reference-scorer comparison, and an interactive
// picker.
package main

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AetherXHub/matchsorter/internal/output"
)

var (
	verbose bool
	noColor bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "matchsort",
	Short: "Rank and sort strings by match quality",
	Long: `matchsort classifies candidate strings against a search query into
match tiers (exact, prefix, word prefix, substring, acronym, fuzzy) and
sorts them best-first.

Example usage:
  matchsort rank ap apple banana grape      # classify candidates
  matchsort sort ap words.txt               # match-sort lines from a file
  cat words.txt | matchsort sort ap         # or from stdin
  matchsort pick words.txt                  # interactive picker
  matchsort bench --items 50000             # timing harness`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}).
			Level(level).
			With().Timestamp().Logger()
	},
}

var printer = sync.OnceValue(func() *output.Printer {
	return output.NewPrinter(noColor)
})

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
