package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/spf13/cobra"

	matchsorter "github.com/AetherXHub/matchsorter"
	"github.com/AetherXHub/matchsorter/internal/output"
)

var compareTop int

var compareCmd = &cobra.Command{
	Use:   "compare <query> [file...]",
	Short: "Compare tier ranking against a Jaro-Winkler reference",
	Long: `compare ranks the same candidates twice: once with the tier engine and
once with plain Jaro-Winkler string similarity. It prints both top lists
side by side and how much they overlap. Useful for judging where tier
semantics (prefixes, word starts, acronyms) diverge from pure
edit-distance similarity.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().IntVar(&compareTop, "top", 10, "list length to compare")
	rootCmd.AddCommand(compareCmd)
}

type refScore struct {
	line  string
	score float32
}

// referenceRank scores every line with case-folded Jaro-Winkler
// similarity and returns them best first, ties broken by value so the
// order is deterministic.
func referenceRank(query string, lines []string) []refScore {
	ref := make([]refScore, 0, len(lines))
	for _, line := range lines {
		sim := edlib.JaroWinklerSimilarity(strings.ToLower(query), strings.ToLower(line))
		ref = append(ref, refScore{line: line, score: sim})
	}
	slices.SortStableFunc(ref, func(a, b refScore) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return strings.Compare(a.line, b.line)
	})
	return ref
}

func runCompare(cmd *cobra.Command, args []string) error {
	query := args[0]
	lines, err := readLines(args[1:])
	if err != nil {
		return err
	}

	tiered := matchsorter.MatchSorter(lines, query, matchsorter.Options[string]{})
	ref := referenceRank(query, lines)

	n := compareTop
	if n > len(tiered) {
		n = len(tiered)
	}
	if n > len(ref) {
		n = len(ref)
	}

	table := output.NewTable(os.Stdout, []string{"#", "Tier Engine", "Jaro-Winkler"})
	inTiered := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		inTiered[tiered[i]] = true
		table.AddRow([]string{
			fmt.Sprintf("%d", i+1),
			tiered[i],
			fmt.Sprintf("%s (%.3f)", ref[i].line, ref[i].score),
		})
	}
	table.Render()

	overlap := 0
	for i := 0; i < n; i++ {
		if inTiered[ref[i].line] {
			overlap++
		}
	}
	p := printer()
	if n > 0 {
		p.Print("%s", p.Bold(fmt.Sprintf("top-%d overlap: %d/%d", n, overlap, n)))
	} else {
		p.Print("no matches")
	}
	return nil
}
