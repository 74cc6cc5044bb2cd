package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	matchsorter "github.com/AetherXHub/matchsorter"
	"github.com/AetherXHub/matchsorter/internal/output"
)

var (
	benchItems   int
	benchRounds  int
	benchSeed    int64
	benchQueries []string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the full rank-filter-sort pipeline over generated data",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchItems, "items", 10000, "dataset size")
	benchCmd.Flags().IntVar(&benchRounds, "rounds", 5, "runs per query, best time wins")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "dataset generator seed")
	benchCmd.Flags().StringSliceVar(&benchQueries, "query", []string{"co", "codn", "java", "zz"}, "queries to time")
	rootCmd.AddCommand(benchCmd)
}

var benchWords = []string{
	"alpha", "codon", "driver", "engine", "fabric", "garden", "harbor",
	"island", "jigsaw", "kernel", "ledger", "marble", "needle", "orbit",
	"packet", "quartz", "ribbon", "signal", "timber", "vector", "walnut",
	"zephyr", "Java", "JavaScript", "café", "Ωμέγα", "north-west",
}

func benchDataset(n int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	items := make([]string, n)
	for i := range items {
		a := benchWords[rng.Intn(len(benchWords))]
		b := benchWords[rng.Intn(len(benchWords))]
		items[i] = a + " " + b
	}
	return items
}

func runBench(cmd *cobra.Command, args []string) error {
	items := benchDataset(benchItems, benchSeed)
	logger.Debug().Int("items", len(items)).Int("rounds", benchRounds).Msg("dataset ready")

	table := output.NewTable(os.Stdout, []string{"Query", "Items", "Kept", "Best", "Per Item"})
	for _, query := range benchQueries {
		var kept int
		best := time.Duration(-1)
		for round := 0; round < benchRounds; round++ {
			start := time.Now()
			out := matchsorter.MatchSorter(items, query, matchsorter.Options[string]{})
			elapsed := time.Since(start)
			kept = len(out)
			if best < 0 || elapsed < best {
				best = elapsed
			}
		}
		perItem := best / time.Duration(len(items))
		table.AddRow([]string{
			query,
			fmt.Sprintf("%d", len(items)),
			fmt.Sprintf("%d", kept),
			best.Round(time.Microsecond).String(),
			perItem.String(),
		})
	}
	table.Render()
	return nil
}
