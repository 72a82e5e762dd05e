// Package scanner finds the longest run of a sequence in which no symbol
// repeats. Every function is a single linear pass over its input and keeps
// no state between calls, so they are safe to use from many goroutines.
package scanner

// Span is the half-open window [Start, End) of a sequence.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of symbols covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// LongestUniqueSpanOf returns the first longest window of seq whose symbols
// are pairwise distinct.
func LongestUniqueSpanOf[T comparable](seq []T) Span {
	lastSeen := make(map[T]int)
	start, bestStart, bestLen := 0, 0, 0

	for end, symbol := range seq {
		// Only an occurrence inside the current window moves start.
		if last, ok := lastSeen[symbol]; ok && last >= start {
			start = last + 1
		}
		lastSeen[symbol] = end

		if end-start+1 > bestLen {
			bestLen = end - start + 1
			bestStart = start
		}
	}

	return Span{Start: bestStart, End: bestStart + bestLen}
}

// LongestUniqueRunOf returns the length of the longest window of seq without
// a repeated symbol.
func LongestUniqueRunOf[T comparable](seq []T) int {
	return LongestUniqueSpanOf(seq).Len()
}

// LongestUniqueSpan works on the code points of s. The returned span is in
// rune offsets, not byte offsets.
func LongestUniqueSpan(s string) Span {
	return LongestUniqueSpanOf([]rune(s))
}

// LongestUniqueRun returns the length, in runes, of the longest substring of
// s without a repeated character.
func LongestUniqueRun(s string) int {
	return LongestUniqueSpan(s).Len()
}

// LongestUniqueBytesSpan is the bounded-alphabet variant. It indexes a fixed
// table by byte value instead of hashing, and reports byte offsets.
func LongestUniqueBytesSpan(b []byte) Span {
	// lastSeen holds index+1 so the zero value means "never seen".
	var lastSeen [256]int
	start, bestStart, bestLen := 0, 0, 0

	for end, c := range b {
		if last := lastSeen[c] - 1; last >= start {
			start = last + 1
		}
		lastSeen[c] = end + 1

		if end-start+1 > bestLen {
			bestLen = end - start + 1
			bestStart = start
		}
	}

	return Span{Start: bestStart, End: bestStart + bestLen}
}

// Substring returns the runes of s covered by span. An End past the last
// rune is treated as the end of s.
func Substring(s string, span Span) string {
	if span.Len() <= 0 {
		return ""
	}

	// Walk once to translate rune offsets to byte offsets.
	from, to := len(s), len(s)
	i := 0
	for pos := range s {
		if i == span.Start {
			from = pos
		}
		if i == span.End {
			to = pos
			break
		}
		i++
	}
	if from > to {
		return ""
	}
	return s[from:to]
}
