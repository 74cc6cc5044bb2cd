package matchsorter

import "unicode/utf8"

// closenessRanking scores how tightly the characters of query appear, in
// order, inside candidate. Both strings must already be folded. The scan
// is greedy: each query character binds to its first occurrence after the
// previous one. Any character that never appears means NoMatch. Otherwise
// the score is derived from the spread between the first and last matched
// character positions: adjacent-or-same gives the top sub-score 2.0, and
// wider spreads decay as 1 + 1/spread toward (but never reaching) 1.0.
//
// "plgnd" inside "playground" binds positions 0 and 9, spread 9, score
// 1 + 1/9.
func closenessRanking(candidate, query string) Ranking {
	first := -1
	last := 0
	ci := 0 // rune index of the next candidate char
	cb := 0 // byte offset into candidate
	for _, qr := range query {
		found := false
		for cb < len(candidate) {
			r, size := utf8.DecodeRuneInString(candidate[cb:])
			cb += size
			idx := ci
			ci++
			if r == qr {
				if first < 0 {
					first = idx
				}
				last = idx
				found = true
				break
			}
		}
		if !found {
			return NoMatch
		}
	}
	if first < 0 {
		// Empty query. Callers resolve that earlier; spread 0 keeps
		// this total anyway.
		first = 0
		last = 0
	}
	spread := last - first
	if spread == 0 {
		return Matches(2.0)
	}
	return Matches(1 + 1/float64(spread))
}
