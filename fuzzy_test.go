package matchsorter

import "testing"

func TestClosenessRankingSpread(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		query     string
		want      Ranking
	}{
		{"single char spread zero", "abc", "b", Matches(2.0)},
		{"adjacent pair", "abc", "ab", Matches(2.0)},
		{"playground", "playground", "plgnd", Matches(1 + 1.0/9)},
		{"wide spread", "a........z", "az", Matches(1 + 1.0/9)},
		{"missing char", "abc", "abd", NoMatch},
		{"out of order", "abc", "ca", NoMatch},
		{"repeated query char needs repeats", "abc", "aa", NoMatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := closenessRanking(tc.candidate, tc.query)
			if got.Compare(tc.want) != 0 {
				t.Fatalf("closenessRanking(%q, %q) = %v, want %v", tc.candidate, tc.query, got, tc.want)
			}
		})
	}
}

func TestClosenessRankingGreedyBinding(t *testing.T) {
	// Greedy scan binds 'a' to index 0 even though binding to index 2
	// would give a tighter spread. The score reflects the first viable
	// assignment, not the optimal one.
	got := closenessRanking("axabc", "ab")
	if got.Compare(Matches(1+1.0/3)) != 0 {
		t.Fatalf("greedy binding = %v, want matches(%.3f)", got, 1+1.0/3)
	}
}

func TestClosenessRankingScoreRange(t *testing.T) {
	for _, c := range []struct{ candidate, query string }{
		{"the quick brown fox", "tqbf"},
		{"kernel", "kl"},
		{"αβγδε", "αε"},
	} {
		got := closenessRanking(c.candidate, c.query)
		score, ok := got.Score()
		if !ok {
			t.Fatalf("closenessRanking(%q, %q) = %v, want a fuzzy match", c.candidate, c.query, got)
		}
		if score <= 1.0 || score > 2.0 {
			t.Fatalf("sub-score %v out of (1.0, 2.0]", score)
		}
	}
}

func TestClosenessRankingMultibyte(t *testing.T) {
	// Indices are rune positions, not byte offsets. "αγ" in "αβγ"
	// spans rune indices 0..2, spread 2.
	got := closenessRanking("αβγ", "αγ")
	if got.Compare(Matches(1.5)) != 0 {
		t.Fatalf("multibyte spread = %v, want matches(1.500)", got)
	}
}
