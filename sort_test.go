package matchsorter

import (
	"slices"
	"testing"
)

func rankedItem(rank Ranking, value string, keyIndex int) RankedItem[string] {
	return RankedItem[string]{Rank: rank, RankedValue: value, KeyIndex: keyIndex}
}

func TestCompareRankedItemsRankFirst(t *testing.T) {
	better := rankedItem(StartsWith, "zzz", 5)
	worse := rankedItem(Contains, "aaa", 0)
	if CompareRankedItems(better, worse, nil) >= 0 {
		t.Fatal("higher rank must sort first regardless of value and key index")
	}
	if CompareRankedItems(worse, better, nil) <= 0 {
		t.Fatal("comparator must be antisymmetric")
	}
}

func TestCompareRankedItemsKeyIndexSecond(t *testing.T) {
	a := rankedItem(Contains, "zzz", 0)
	b := rankedItem(Contains, "aaa", 1)
	if CompareRankedItems(a, b, nil) >= 0 {
		t.Fatal("lower key index must win inside a rank tier")
	}
}

func TestCompareRankedItemsBaseSortLast(t *testing.T) {
	a := rankedItem(Contains, "apple", 0)
	b := rankedItem(Contains, "banana", 0)
	if CompareRankedItems(a, b, nil) >= 0 {
		t.Fatal("default tiebreak is ordinal on the ranked value")
	}

	if CompareRankedItems(b, a, func(x, y RankedItem[string]) int { return -1 }) >= 0 {
		t.Fatal("custom base sort must decide equal-rank ties")
	}
}

func TestCompareRankedItemsFuzzyScores(t *testing.T) {
	a := rankedItem(Matches(1.8), "far", 0)
	b := rankedItem(Matches(1.2), "near", 0)
	if CompareRankedItems(a, b, nil) >= 0 {
		t.Fatal("higher sub-score must sort first")
	}
}

func TestSortFuncProducesDeterministicOrder(t *testing.T) {
	items := []RankedItem[string]{
		rankedItem(Matches(1.2), "m-low", 0),
		rankedItem(Equal, "exact", 3),
		rankedItem(Contains, "beta", 1),
		rankedItem(Contains, "alpha", 1),
		rankedItem(Contains, "zeta", 0),
		rankedItem(Matches(1.9), "m-high", 0),
	}
	slices.SortFunc(items, func(a, b RankedItem[string]) int {
		return CompareRankedItems(a, b, nil)
	})

	want := []string{"exact", "zeta", "alpha", "beta", "m-high", "m-low"}
	for i, w := range want {
		if items[i].RankedValue != w {
			t.Fatalf("position %d = %q, want %q (full order %v)", i, items[i].RankedValue, w, values(items))
		}
	}
}

func values(items []RankedItem[string]) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.RankedValue
	}
	return out
}
