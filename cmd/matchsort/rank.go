package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	matchsorter "github.com/AetherXHub/matchsorter"
	"github.com/AetherXHub/matchsorter/internal/output"
)

var (
	rankJSON           bool
	rankKeepDiacritics bool
)

var rankCmd = &cobra.Command{
	Use:   "rank <query> <candidate>...",
	Short: "Classify candidates against a query",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "emit JSON instead of a table")
	rankCmd.Flags().BoolVar(&rankKeepDiacritics, "keep-diacritics", false, "match accented characters literally")
	rootCmd.AddCommand(rankCmd)
}

type rankResult struct {
	Candidate string   `json:"candidate"`
	Tier      string   `json:"tier"`
	Score     *float64 `json:"score,omitempty"`
}

func runRank(cmd *cobra.Command, args []string) error {
	query, candidates := args[0], args[1:]

	results := make([]rankResult, 0, len(candidates))
	ranks := make([]matchsorter.Ranking, 0, len(candidates))
	for _, c := range candidates {
		rank := matchsorter.GetMatchRanking(c, query, rankKeepDiacritics)
		logger.Debug().Str("candidate", c).Stringer("rank", rank).Msg("ranked")
		res := rankResult{Candidate: c, Tier: rank.String()}
		if score, ok := rank.Score(); ok {
			res.Score = &score
		}
		results = append(results, res)
		ranks = append(ranks, rank)
	}

	if rankJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	p := printer()
	table := output.NewTable(os.Stdout, []string{"Candidate", "Rank"})
	for i, res := range results {
		table.AddRow([]string{res.Candidate, p.Rank(ranks[i])})
	}
	table.Render()
	return nil
}
