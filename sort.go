package matchsorter

import (
	"cmp"
	"strings"
)

// RankedItem pairs an item that survived the threshold with everything
// the sorter needs: its rank, the value that produced it, the flattened
// key position, and the item's original input position.
type RankedItem[T any] struct {
	// Item points into the caller's input slice.
	Item  *T
	Index int

	Rank         Ranking
	RankedValue  string
	KeyIndex     int
	KeyThreshold Ranking
}

// CompareRankedItems orders ranked items best first: higher rank, then
// lower flattened key position, then baseSort as the final tiebreak. A
// nil baseSort falls back to an ordinal comparison of the ranked values.
func CompareRankedItems[T any](a, b RankedItem[T], baseSort func(a, b RankedItem[T]) int) int {
	if c := b.Rank.Compare(a.Rank); c != 0 {
		return c
	}
	if c := cmp.Compare(a.KeyIndex, b.KeyIndex); c != 0 {
		return c
	}
	if baseSort == nil {
		return defaultBaseSort(a, b)
	}
	return baseSort(a, b)
}

func defaultBaseSort[T any](a, b RankedItem[T]) int {
	return strings.Compare(a.RankedValue, b.RankedValue)
}
