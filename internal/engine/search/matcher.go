package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// fold lowercases s one rune at a time. Unlike strings.ToLower it never
// changes the number of runes, which keeps offsets aligned with s.
func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// prepare returns the haystack and needle compared under caseSensitive.
func prepare(text, pattern string, caseSensitive bool) (string, string) {
	if caseSensitive {
		return text, pattern
	}
	return fold(text), fold(pattern)
}

// runeTable maps character offsets to byte offsets for one string.
type runeTable struct {
	s     string
	bytes []int // bytes[i] is the byte index of rune i; last entry is len(s)
}

func newRuneTable(s string) *runeTable {
	bytes := make([]int, 0, len(s)+1)
	for i := range s {
		bytes = append(bytes, i)
	}
	bytes = append(bytes, len(s))
	return &runeTable{s: s, bytes: bytes}
}

// length returns the rune count.
func (t *runeTable) length() int {
	return len(t.bytes) - 1
}

func (t *runeTable) byteAt(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(t.bytes) {
		return len(t.s)
	}
	return t.bytes[offset]
}

// runeAt converts a byte index on a rune boundary back to a rune offset.
func (t *runeTable) runeAt(byteIdx int) int {
	lo, hi := 0, len(t.bytes)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if t.bytes[mid] < byteIdx {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// first returns the first match of needle lying entirely in [from, to).
func (t *runeTable) first(needle string, from, to int) (Match, bool) {
	if from >= to {
		return Match{}, false
	}
	window := t.s[t.byteAt(from):t.byteAt(to)]
	i := strings.Index(window, needle)
	if i < 0 {
		return Match{}, false
	}
	start := t.runeAt(t.byteAt(from) + i)
	return Match{Start: start, End: start + utf8.RuneCountInString(needle)}, true
}

// last returns the rightmost match of needle lying entirely in [from, to).
func (t *runeTable) last(needle string, from, to int) (Match, bool) {
	if from >= to {
		return Match{}, false
	}
	window := t.s[t.byteAt(from):t.byteAt(to)]
	i := strings.LastIndex(window, needle)
	if i < 0 {
		return Match{}, false
	}
	start := t.runeAt(t.byteAt(from) + i)
	return Match{Start: start, End: start + utf8.RuneCountInString(needle)}, true
}

// FindAll returns every non-overlapping match of pattern in text, left to
// right. It returns nil for an empty pattern.
func FindAll(text, pattern string, caseSensitive bool) []Match {
	if pattern == "" {
		return nil
	}
	hay, needle := prepare(text, pattern, caseSensitive)
	t := newRuneTable(hay)

	var matches []Match
	pos := 0
	for {
		m, ok := t.first(needle, pos, t.length())
		if !ok {
			return matches
		}
		matches = append(matches, m)
		pos = m.End
	}
}
