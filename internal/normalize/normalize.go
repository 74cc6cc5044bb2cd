// Package normalize prepares strings for matching: diacritics stripping
// and case folding, both allocation-averse. Prepare returns its input
// unchanged whenever normalization would be a no-op, and LowerInto folds
// into a caller-owned reusable buffer.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Prepare strips combining marks from s unless keepDiacritics is set.
// "café" becomes "cafe", "Ωμέγα" becomes "Ωμεγα". The returned string is
// s itself whenever stripping would not change it, so pure-ASCII and
// already-stripped inputs cost nothing.
func Prepare(s string, keepDiacritics bool) string {
	if keepDiacritics || isASCII(s) {
		return s
	}
	if out, ok := stripLatin1(s); ok {
		return out
	}
	return stripDecomposed(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// latin1Base maps the accented letters of the Latin-1 block to their base
// ASCII letter. Zero means the rune has no canonical decomposition to a
// base letter and is kept as is (Ø, Æ, ß, Þ and friends).
var latin1Base = [0x100]byte{
	0xC0: 'A', 0xC1: 'A', 0xC2: 'A', 0xC3: 'A', 0xC4: 'A', 0xC5: 'A',
	0xC7: 'C',
	0xC8: 'E', 0xC9: 'E', 0xCA: 'E', 0xCB: 'E',
	0xCC: 'I', 0xCD: 'I', 0xCE: 'I', 0xCF: 'I',
	0xD1: 'N',
	0xD2: 'O', 0xD3: 'O', 0xD4: 'O', 0xD5: 'O', 0xD6: 'O',
	0xD9: 'U', 0xDA: 'U', 0xDB: 'U', 0xDC: 'U',
	0xDD: 'Y',
	0xE0: 'a', 0xE1: 'a', 0xE2: 'a', 0xE3: 'a', 0xE4: 'a', 0xE5: 'a',
	0xE7: 'c',
	0xE8: 'e', 0xE9: 'e', 0xEA: 'e', 0xEB: 'e',
	0xEC: 'i', 0xED: 'i', 0xEE: 'i', 0xEF: 'i',
	0xF1: 'n',
	0xF2: 'o', 0xF3: 'o', 0xF4: 'o', 0xF5: 'o', 0xF6: 'o',
	0xF9: 'u', 0xFA: 'u', 0xFB: 'u', 0xFC: 'u',
	0xFD: 'y',
	0xFF: 'y',
}

// stripLatin1 handles strings whose runes all sit below U+0100 with a
// table lookup instead of the transform pipeline. Must agree bit for bit
// with stripDecomposed; normalize_test.go cross-checks the full range.
func stripLatin1(s string) (string, bool) {
	changed := false
	for _, r := range s {
		if r >= 0x100 {
			return "", false
		}
		if latin1Base[r] != 0 {
			changed = true
		}
	}
	if !changed {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if base := latin1Base[r]; base != 0 {
			b.WriteByte(base)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String(), true
}

// stripDecomposed is the general path: NFD decomposition followed by
// removal of combining marks. The prior scan avoids the transform (and
// its allocations) for inputs that are already normal and mark-free.
func stripDecomposed(s string) string {
	if norm.NFD.IsNormalString(s) && !containsMark(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.M)))
	out, _, err := transform.String(t, s)
	if err != nil || out == s {
		return s
	}
	return out
}

func containsMark(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.M, r) {
			return true
		}
	}
	return false
}

// LowerInto case-folds s into dst and returns the grown buffer. dst is
// truncated first, so the usual pattern is buf = LowerInto(buf, s).
// Already-lowercase inputs take a bulk copy, ASCII inputs a byte-wise
// fold, and everything else a per-rune unicode.ToLower pass.
func LowerInto(dst []byte, s string) []byte {
	dst = dst[:0]
	ascii, hasUpper := true, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
		if c >= 'A' && c <= 'Z' {
			hasUpper = true
		}
	}
	if ascii {
		if !hasUpper {
			return append(dst, s...)
		}
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			dst = append(dst, c)
		}
		return dst
	}
	lower := true
	for _, r := range s {
		if unicode.ToLower(r) != r {
			lower = false
			break
		}
	}
	if lower {
		return append(dst, s...)
	}
	for _, r := range s {
		dst = utf8.AppendRune(dst, unicode.ToLower(r))
	}
	return dst
}
