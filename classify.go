package matchsorter

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/AetherXHub/matchsorter/internal/normalize"
)

// GetMatchRanking classifies how well candidate matches query. Unless
// keepDiacritics is set, both sides are stripped of combining marks
// before anything else; a notable consequence is that "café" vs "cafe"
// ranks CaseSensitiveEqual, because the prepared forms are byte
// identical. After that the checks run best tier first: exact, then the
// case-folded substring family (Equal, StartsWith, WordStartsWith,
// Contains), then Acronym, then the fuzzy closeness score. A query with
// more characters than the candidate can never match, and a
// single-character query must match as a substring or not at all.
func GetMatchRanking(candidate, query string, keepDiacritics bool) Ranking {
	r := newRanker(query, keepDiacritics, len(candidate))
	return r.rank(candidate)
}

// preparedQuery caches the per-query work shared across candidates.
type preparedQuery struct {
	prepared  string // diacritics handled, original case
	folded    string // prepared, then case-folded
	charCount int
}

// ranker classifies candidates against one prepared query. The fold
// buffer is reused across candidates, so a ranker serves exactly one
// call chain at a time.
type ranker struct {
	pq             preparedQuery
	keepDiacritics bool
	buf            []byte
}

const minFoldBuffer = 64

func newRanker(query string, keepDiacritics bool, sizeHint int) *ranker {
	prepared := normalize.Prepare(query, keepDiacritics)
	folded := string(normalize.LowerInto(nil, prepared))
	if sizeHint < minFoldBuffer {
		sizeHint = minFoldBuffer
	}
	return &ranker{
		pq: preparedQuery{
			prepared:  prepared,
			folded:    folded,
			charCount: charCount(folded),
		},
		keepDiacritics: keepDiacritics,
		buf:            make([]byte, 0, sizeHint),
	}
}

func (r *ranker) rank(candidate string) Ranking {
	rank := r.classify(candidate)
	if classifyDebugEnabled() {
		classifyLog(candidate, r.pq.prepared, rank)
	}
	return rank
}

func (r *ranker) classify(candidate string) Ranking {
	prepared := normalize.Prepare(candidate, r.keepDiacritics)

	if r.pq.charCount > charCount(prepared) {
		return NoMatch
	}
	if prepared == r.pq.prepared {
		return CaseSensitiveEqual
	}

	r.buf = normalize.LowerInto(r.buf, prepared)
	folded := bytesToString(r.buf) // view into r.buf, valid until the next fold
	query := r.pq.folded

	if first := strings.Index(folded, query); first >= 0 {
		if first == 0 {
			if len(folded) == len(query) {
				return Equal
			}
			return StartsWith
		}
		// Walk the remaining occurrences lazily; any one preceded by a
		// space upgrades Contains to WordStartsWith.
		for idx := first; ; {
			if folded[idx-1] == ' ' {
				return WordStartsWith
			}
			next := strings.Index(folded[idx+1:], query)
			if next < 0 {
				break
			}
			idx += 1 + next
		}
		return Contains
	}

	if r.pq.charCount == 1 {
		return NoMatch
	}
	if strings.Contains(acronym(folded), query) {
		return Acronym
	}
	return closenessRanking(folded, query)
}

// acronym collects the first character and every character that follows
// a space or hyphen. The first character is kept even when it is itself
// a separator.
func acronym(s string) string {
	var b strings.Builder
	first := true
	prevSep := false
	for _, r := range s {
		sep := r == ' ' || r == '-'
		if first {
			b.WriteRune(r)
			first = false
		} else if prevSep && !sep {
			b.WriteRune(r)
		}
		prevSep = sep
	}
	return b.String()
}

func charCount(s string) int {
	if isASCII(s) {
		return len(s)
	}
	return utf8.RuneCountInString(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
