package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	matchsorter "github.com/AetherXHub/matchsorter"
)

var (
	sortThreshold      string
	sortKeepDiacritics bool
	sortInputOrder     bool
)

var sortCmd = &cobra.Command{
	Use:   "sort <query> [file...]",
	Short: "Match-sort lines from files or stdin",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSort,
}

func init() {
	sortCmd.Flags().StringVar(&sortThreshold, "threshold", "", "minimum tier to keep (e.g. contains, acronym, matches)")
	sortCmd.Flags().BoolVar(&sortKeepDiacritics, "keep-diacritics", false, "match accented characters literally")
	sortCmd.Flags().BoolVar(&sortInputOrder, "input-order", false, "break rank ties by input position instead of value")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	query := args[0]
	lines, err := readLines(args[1:])
	if err != nil {
		return err
	}

	opts := matchsorter.DefaultOptions[string]()
	opts.KeepDiacritics = sortKeepDiacritics
	if sortThreshold != "" {
		opts.Threshold, err = matchsorter.ParseRanking(sortThreshold)
		if err != nil {
			return err
		}
	}
	if sortInputOrder {
		opts.BaseSort = func(a, b matchsorter.RankedItem[string]) int {
			return cmp.Compare(a.Index, b.Index)
		}
	}

	logger.Debug().Int("lines", len(lines)).Str("query", query).Msg("sorting")
	for _, line := range matchsorter.MatchSorter(lines, query, opts) {
		fmt.Println(line)
	}
	return nil
}

// readLines collects non-empty lines from the named files, or from stdin
// when no files are given.
func readLines(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return scanLines(os.Stdin)
	}
	var lines []string
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		part, err := scanLines(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		lines = append(lines, part...)
	}
	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
