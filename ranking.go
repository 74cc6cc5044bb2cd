// Package matchsorter ranks candidate strings against a search query and
// sorts them best-first. Matches are classified into eight tiers, from exact
// byte equality down to a fuzzy in-order character match that carries a
// continuous sub-score; items that do not match at all are filtered out.
//
// The simplest entry point is MatchSorter over a []string. For arbitrary
// item types, configure Keys that extract matchable string values.
package matchsorter

import (
	"cmp"
	"fmt"
	"strings"
)

// Tier codes are ordered so that a plain integer comparison ranks them.
// Zero is reserved: the zero Ranking reads as "unspecified" so that
// Options and Key defaults can distinguish "not set" from NoMatch.
const (
	tierNoMatch uint8 = iota + 1
	tierMatches
	tierAcronym
	tierContains
	tierWordStartsWith
	tierStartsWith
	tierEqual
	tierCaseSensitiveEqual
)

// Ranking is the quality of a match between a candidate string and a query.
//
// Eight tiers, best to worst: CaseSensitiveEqual, Equal, StartsWith,
// WordStartsWith, Contains, Acronym, Matches(score), NoMatch. The Matches
// tier carries a sub-score in (1.0, 2.0]; a higher sub-score means the
// matched characters sit closer together. Any fixed tier outranks every
// Matches sub-score, and every Matches sub-score outranks NoMatch.
//
// Ranking is a small value type; compare with Compare, never with ==
// (two Matches values with different sub-scores are different rankings,
// but == would also distinguish rankings that Compare treats as equal).
type Ranking struct {
	score float64
	tier  uint8
}

// The fixed tiers. Matches(score) constructs the fuzzy tier.
var (
	CaseSensitiveEqual = Ranking{tier: tierCaseSensitiveEqual}
	Equal              = Ranking{tier: tierEqual}
	StartsWith         = Ranking{tier: tierStartsWith}
	WordStartsWith     = Ranking{tier: tierWordStartsWith}
	Contains           = Ranking{tier: tierContains}
	Acronym            = Ranking{tier: tierAcronym}
	NoMatch            = Ranking{tier: tierNoMatch}
)

// Matches returns a fuzzy-tier ranking with the given sub-score. The
// closeness scorer produces sub-scores in (1.0, 2.0]; Matches(1.0) is the
// conventional "any fuzzy match" threshold value.
func Matches(score float64) Ranking {
	return Ranking{tier: tierMatches, score: score}
}

func (r Ranking) effectiveTier() uint8 {
	if r.tier == 0 {
		return tierNoMatch
	}
	return r.tier
}

// Compare orders two rankings: negative when r is a worse match than o,
// zero when equal, positive when better. Different tiers order by tier
// alone; two Matches values order by sub-score. Incomparable sub-scores
// (NaN, never produced by this package) compare as equal.
func (r Ranking) Compare(o Ranking) int {
	a, b := r.effectiveTier(), o.effectiveTier()
	if a == tierMatches && b == tierMatches {
		switch {
		case r.score < o.score:
			return -1
		case r.score > o.score:
			return 1
		}
		return 0
	}
	return cmp.Compare(a, b)
}

// Less reports whether r is a worse match than o.
func (r Ranking) Less(o Ranking) bool {
	return r.Compare(o) < 0
}

// Score returns the fuzzy sub-score and whether r is the Matches tier.
func (r Ranking) Score() (float64, bool) {
	return r.score, r.tier == tierMatches
}

// IsNoMatch reports whether r is the NoMatch tier (or the zero Ranking).
func (r Ranking) IsNoMatch() bool {
	return r.effectiveTier() == tierNoMatch
}

func (r Ranking) String() string {
	switch r.tier {
	case tierCaseSensitiveEqual:
		return "case-sensitive-equal"
	case tierEqual:
		return "equal"
	case tierStartsWith:
		return "starts-with"
	case tierWordStartsWith:
		return "word-starts-with"
	case tierContains:
		return "contains"
	case tierAcronym:
		return "acronym"
	case tierMatches:
		return fmt.Sprintf("matches(%.3f)", r.score)
	case tierNoMatch:
		return "no-match"
	}
	return "unspecified"
}

// ParseRanking converts a tier name (as produced by String, e.g.
// "starts-with") into a Ranking. The name "matches" yields Matches(1.0),
// the lowest fuzzy threshold.
func ParseRanking(name string) (Ranking, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "case-sensitive-equal":
		return CaseSensitiveEqual, nil
	case "equal":
		return Equal, nil
	case "starts-with":
		return StartsWith, nil
	case "word-starts-with":
		return WordStartsWith, nil
	case "contains":
		return Contains, nil
	case "acronym":
		return Acronym, nil
	case "matches":
		return Matches(1.0), nil
	case "no-match":
		return NoMatch, nil
	}
	return Ranking{}, fmt.Errorf("unknown ranking tier %q", name)
}
