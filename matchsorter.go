package matchsorter

import (
	"fmt"
	"slices"
)

// MatchStringer lets an item type choose the string it matches as when
// no keys are configured.
type MatchStringer interface {
	MatchString() string
}

// Options configures one MatchSorter call. The zero value is usable:
// no keys (items match as themselves), the default Matches(1.0)
// threshold, diacritics stripped, default sort.
type Options[T any] struct {
	// Keys extract matchable values from items. Empty means the item
	// itself is the value; it must then be a string, a MatchStringer,
	// or a fmt.Stringer, and anything else never matches.
	Keys []Key[T]

	// Threshold is the minimum rank an item must reach to be kept.
	// The zero Ranking means Matches(1.0), which admits any match. A
	// winning key's own threshold, when set, replaces this per item.
	Threshold Ranking

	// KeepDiacritics skips mark stripping, so "café" and "cafe" no
	// longer collide.
	KeepDiacritics bool

	// BaseSort is the final tiebreak between items with equal rank and
	// key position. Nil means ordinal comparison of the ranked values.
	BaseSort func(a, b RankedItem[T]) int

	// Sorter replaces the whole sorting phase: it receives every kept
	// item and returns them in final order. BaseSort is ignored when
	// Sorter is set.
	Sorter func([]RankedItem[T]) []RankedItem[T]
}

// DefaultOptions spells out the defaults the zero value already implies.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{Threshold: Matches(1.0)}
}

// MatchSorter ranks items against query, drops those below the
// threshold, and returns the rest best-first. The input slice is not
// modified. Rank ties break by key position, then BaseSort, so the
// output order is deterministic for a given input order.
func MatchSorter[T any](items []T, query string, opts Options[T]) []T {
	threshold := opts.Threshold
	if threshold == (Ranking{}) {
		threshold = Matches(1.0)
	}

	r := newRanker(query, opts.KeepDiacritics, 2*len(query))
	ranked := make([]RankedItem[T], 0, len(items))
	for i := range items {
		var info RankingInfo
		if len(opts.Keys) > 0 {
			info = highestRanking(items[i], opts.Keys, r)
		} else {
			value, ok := itemString(items[i])
			if !ok {
				continue
			}
			info = RankingInfo{Rank: r.rank(value), RankedValue: value}
		}

		cutoff := threshold
		if info.KeyThreshold != (Ranking{}) {
			cutoff = info.KeyThreshold
		}
		if info.Rank.Compare(cutoff) < 0 {
			continue
		}

		ranked = append(ranked, RankedItem[T]{
			Item:         &items[i],
			Index:        i,
			Rank:         info.Rank,
			RankedValue:  info.RankedValue,
			KeyIndex:     info.KeyIndex,
			KeyThreshold: info.KeyThreshold,
		})
	}

	if opts.Sorter != nil {
		ranked = opts.Sorter(ranked)
	} else {
		slices.SortFunc(ranked, func(a, b RankedItem[T]) int {
			return CompareRankedItems(a, b, opts.BaseSort)
		})
	}

	out := make([]T, len(ranked))
	for i := range ranked {
		out[i] = *ranked[i].Item
	}
	return out
}

func itemString[T any](item T) (string, bool) {
	switch v := any(item).(type) {
	case string:
		return v, true
	case MatchStringer:
		return v.MatchString(), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}
