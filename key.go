package matchsorter

// Key describes one matchable aspect of an item: an extractor that pulls
// string values out of the item, plus optional per-key overrides. Build
// with NewKey or KeyOf and chain the With modifiers; each modifier
// returns a copy, so keys can be shared and specialized freely.
type Key[T any] struct {
	extract    func(T) []string
	threshold  Ranking // zero means "use the global threshold"
	minRanking Ranking
	maxRanking Ranking
}

// NewKey builds a key from a multi-value extractor. The returned values
// are evaluated in order; Go strings are immutable views, so returning
// struct fields directly shares their backing bytes.
func NewKey[T any](extract func(T) []string) Key[T] {
	return Key[T]{
		extract:    extract,
		minRanking: NoMatch,
		maxRanking: CaseSensitiveEqual,
	}
}

// KeyOf builds a key from a single-value extractor.
func KeyOf[T any](extract func(T) string) Key[T] {
	return NewKey(func(item T) []string {
		return []string{extract(item)}
	})
}

// WithThreshold sets a per-key threshold that replaces the global one
// for items whose best value came from this key.
func (k Key[T]) WithThreshold(r Ranking) Key[T] {
	k.threshold = r
	return k
}

// WithMaxRanking caps rankings produced by this key's values. A value
// that ranks above the cap is reported at the cap.
func (k Key[T]) WithMaxRanking(r Ranking) Key[T] {
	k.maxRanking = r
	return k
}

// WithMinRanking raises rankings produced by this key's values: any
// actual match below the floor is reported at the floor. NoMatch is
// never promoted.
func (k Key[T]) WithMinRanking(r Ranking) Key[T] {
	k.minRanking = r
	return k
}

// Values runs the extractor.
func (k Key[T]) Values(item T) []string {
	return k.extract(item)
}

// RankingInfo is the outcome of evaluating one item against a key set.
type RankingInfo struct {
	Rank Ranking
	// RankedValue is the extracted value that produced Rank.
	RankedValue string
	// KeyIndex is the position of that value in the flattened sequence
	// of all key values, used as the second sort level.
	KeyIndex int
	// KeyThreshold is the winning key's threshold; the zero Ranking
	// when that key has none.
	KeyThreshold Ranking
}

// highestRanking evaluates every value of every key, in key order, and
// returns the best outcome. Ties keep the earliest value: only a
// strictly better rank displaces the current best, so a later key never
// steals a rank an earlier key already achieved.
func highestRanking[T any](item T, keys []Key[T], r *ranker) RankingInfo {
	best := RankingInfo{Rank: NoMatch, KeyIndex: -1}
	idx := 0
	for _, key := range keys {
		for _, value := range key.Values(item) {
			rank := r.rank(value)
			if rank.Compare(key.maxRanking) > 0 {
				rank = key.maxRanking
			}
			if rank.Compare(key.minRanking) < 0 && !rank.IsNoMatch() {
				rank = key.minRanking
			}
			if rank.Compare(best.Rank) > 0 {
				best = RankingInfo{
					Rank:         rank,
					RankedValue:  value,
					KeyIndex:     idx,
					KeyThreshold: key.threshold,
				}
			}
			idx++
		}
	}
	return best
}
